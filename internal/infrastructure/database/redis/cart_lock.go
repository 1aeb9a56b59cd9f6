// internal/infrastructure/database/redis/cart_lock.go
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/your-org/stockflow/internal/domain/cart"
)

const (
	cartLockRetryInterval = 20 * time.Millisecond
	cartLockReleaseWait   = 2 * time.Second
)

// Deletes the lock only if it still holds our token
var releaseCartLock = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// CartLocks serialises cart writes for a session across server processes
// with a SET NX lock. The TTL bounds how long a crashed holder blocks others.
type CartLocks struct {
	client *redis.Client
	ttl    time.Duration
	logger logrus.FieldLogger
}

// NewCartLocks creates a Redis-backed cart.Locker
func NewCartLocks(client *redis.Client, ttl time.Duration, logger logrus.FieldLogger) *CartLocks {
	return &CartLocks{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func cartLockKey(sessionID string) string {
	return fmt.Sprintf("session:%s:%s:lock", sessionID, cart.StorageKey)
}

// Lock polls until the session's lock is acquired or ctx is done
func (l *CartLocks) Lock(ctx context.Context, sessionID string) (func(), error) {
	key := cartLockKey(sessionID)
	token := uuid.NewString()

	ticker := time.NewTicker(cartLockRetryInterval)
	defer ticker.Stop()

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire cart lock: %w", err)
		}
		if ok {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}

	return func() {
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cartLockReleaseWait)
		defer cancel()

		if err := releaseCartLock.Run(releaseCtx, l.client, []string{key}, token).Err(); err != nil {
			l.logger.WithError(err).WithField("session_id", sessionID).Warn("Failed to release cart lock")
		}
	}, nil
}

var _ cart.Locker = (*CartLocks)(nil)
