// internal/interfaces/http/handlers/session.go
package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/stockflow/internal/config"
	"github.com/your-org/stockflow/internal/domain/cart"
)

// CartSessions opens the cart that belongs to the caller's session cookie
type CartSessions struct {
	slots  cart.SlotProvider
	local  *cart.SessionLocks
	shared cart.Locker
	config *config.Config
	logger logrus.FieldLogger
}

// NewCartSessions creates a session-scoped cart loader. shared may be nil, in
// which case cart writes are only serialised within this process.
func NewCartSessions(slots cart.SlotProvider, shared cart.Locker, cfg *config.Config, logger logrus.FieldLogger) *CartSessions {
	return &CartSessions{
		slots:  slots,
		local:  cart.NewSessionLocks(),
		shared: shared,
		config: cfg,
		logger: logger,
	}
}

// Open hydrates the caller's cart for reading. A new session id is minted and
// set as a cookie when the request carries none.
func (s *CartSessions) Open(c *gin.Context) *cart.Store {
	return s.hydrate(c.Request.Context(), s.getOrCreateSessionID(c))
}

// Lock hydrates the caller's cart for a read-modify-write. The session stays
// locked until release is called, so defer it past the response.
func (s *CartSessions) Lock(c *gin.Context) (store *cart.Store, release func(), err error) {
	ctx := c.Request.Context()
	sessionID := s.getOrCreateSessionID(c)

	unlockLocal, err := s.local.Lock(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	release = unlockLocal

	if s.shared != nil {
		unlockShared, err := s.shared.Lock(ctx, sessionID)
		switch {
		case err == nil:
			release = func() {
				unlockShared()
				unlockLocal()
			}
		case ctx.Err() != nil:
			unlockLocal()
			return nil, nil, ctx.Err()
		default:
			s.logger.WithError(err).WithField("session_id", sessionID).
				Warn("Shared cart lock unavailable, continuing with process lock")
		}
	}

	return s.hydrate(ctx, sessionID), release, nil
}

func (s *CartSessions) hydrate(ctx context.Context, sessionID string) *cart.Store {
	return cart.NewStore(
		ctx,
		s.slots.ForSession(sessionID),
		s.logger.WithField("session_id", sessionID),
	)
}

func (s *CartSessions) getOrCreateSessionID(c *gin.Context) string {
	name := s.config.Cart.SessionCookie

	sessionID, err := c.Cookie(name)
	if err == nil {
		if _, parseErr := uuid.Parse(sessionID); parseErr == nil {
			return sessionID
		}
	}

	sessionID = uuid.New().String()
	c.SetCookie(name, sessionID, int(s.config.Cart.SessionTTL.Seconds()), "/", "", s.config.IsProduction(), true)
	return sessionID
}
