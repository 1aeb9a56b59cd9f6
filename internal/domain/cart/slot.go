// internal/domain/cart/slot.go
package cart

import (
	"context"
	"sync"
)

// Slot is the durable string-keyed storage a Store reads once and writes on
// every mutation.
type Slot interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}

// SlotProvider hands out the slot that belongs to one browsing session
type SlotProvider interface {
	ForSession(sessionID string) Slot
}

// MemorySlot keeps values in process memory
type MemorySlot struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemorySlot creates an empty in-memory slot
func NewMemorySlot() *MemorySlot {
	return &MemorySlot{values: make(map[string]string)}
}

// Get returns the value stored under key
func (m *MemorySlot) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// Set stores value under key, replacing any previous value
func (m *MemorySlot) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// MemorySlots is a SlotProvider backed by process memory, used when Redis is
// not configured.
type MemorySlots struct {
	mu    sync.Mutex
	slots map[string]*MemorySlot
}

// NewMemorySlots creates an empty provider
func NewMemorySlots() *MemorySlots {
	return &MemorySlots{slots: make(map[string]*MemorySlot)}
}

// ForSession returns the slot for sessionID, creating it on first use
func (p *MemorySlots) ForSession(sessionID string) Slot {
	p.mu.Lock()
	defer p.mu.Unlock()
	slot, ok := p.slots[sessionID]
	if !ok {
		slot = NewMemorySlot()
		p.slots[sessionID] = slot
	}
	return slot
}
