// internal/infrastructure/database/redis/cart_slot.go
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/your-org/stockflow/internal/domain/cart"
)

// CartSlots hands out per-session cart slots stored in Redis
type CartSlots struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCartSlots creates a provider. Every write refreshes the key's TTL.
func NewCartSlots(client *redis.Client, ttl time.Duration) *CartSlots {
	return &CartSlots{
		client: client,
		ttl:    ttl,
	}
}

// ForSession returns the slot namespaced to sessionID
func (p *CartSlots) ForSession(sessionID string) cart.Slot {
	return &CartSlot{
		client:    p.client,
		namespace: fmt.Sprintf("session:%s:", sessionID),
		ttl:       p.ttl,
	}
}

// CartSlot is one session's view of Redis
type CartSlot struct {
	client    *redis.Client
	namespace string
	ttl       time.Duration
}

func (s *CartSlot) redisKey(key string) string {
	return s.namespace + key
}

// Get retrieves a value by key
func (s *CartSlot) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.client.Get(ctx, s.redisKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// Set stores a value, overwriting the previous one
func (s *CartSlot) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, s.redisKey(key), value, s.ttl).Err()
}
