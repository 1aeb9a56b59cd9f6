// internal/domain/cart/lock.go
package cart

import (
	"context"
	"sync"
)

// Locker serialises cart mutations for one session. A Store must be hydrated
// after Lock returns and the unlock func called once its writes are done.
type Locker interface {
	Lock(ctx context.Context, sessionID string) (unlock func(), err error)
}

// SessionLocks is an in-process Locker keyed by session id. An entry is
// dropped once no request holds or waits on it.
type SessionLocks struct {
	mu    sync.Mutex
	locks map[string]*sessionLock
}

type sessionLock struct {
	sem  chan struct{}
	refs int
}

// NewSessionLocks creates an empty lock table
func NewSessionLocks() *SessionLocks {
	return &SessionLocks{locks: make(map[string]*sessionLock)}
}

// Lock blocks until sessionID is free or ctx is done
func (l *SessionLocks) Lock(ctx context.Context, sessionID string) (func(), error) {
	entry := l.ref(sessionID)

	select {
	case entry.sem <- struct{}{}:
	case <-ctx.Done():
		l.unref(sessionID, entry)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-entry.sem
			l.unref(sessionID, entry)
		})
	}, nil
}

func (l *SessionLocks) ref(sessionID string) *sessionLock {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.locks[sessionID]
	if !ok {
		entry = &sessionLock{sem: make(chan struct{}, 1)}
		l.locks[sessionID] = entry
	}
	entry.refs++
	return entry
}

func (l *SessionLocks) unref(sessionID string, entry *sessionLock) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry.refs--
	if entry.refs == 0 {
		delete(l.locks, sessionID)
	}
}

func (l *SessionLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
