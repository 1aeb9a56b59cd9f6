// internal/domain/cart/store.go
package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/your-org/stockflow/internal/domain/product"
	"github.com/your-org/stockflow/internal/pkg/money"
)

// Store owns one session's cart. It is hydrated from its slot when created
// and writes the whole cart back after every mutation. A Store has a single
// writer and takes no locks.
type Store struct {
	slot   Slot
	logger logrus.FieldLogger
	items  []LineItem
}

// NewStore hydrates a cart from slot. Missing or unreadable state yields an
// empty cart; it never fails.
func NewStore(ctx context.Context, slot Slot, logger logrus.FieldLogger) *Store {
	s := &Store{
		slot:   slot,
		logger: logger,
		items:  []LineItem{},
	}
	s.hydrate(ctx)
	return s
}

func (s *Store) hydrate(ctx context.Context) {
	raw, found, err := s.slot.Get(ctx, StorageKey)
	if err != nil {
		s.logger.WithError(err).Warn("cart: failed to read persisted cart, starting empty")
		return
	}
	if !found {
		return
	}

	items, err := decodeItems(raw)
	if err != nil {
		s.logger.WithError(err).Warn("cart: persisted cart is malformed, starting empty")
		return
	}
	s.items = items
}

func decodeItems(raw string) ([]LineItem, error) {
	var items []LineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	// "null" decodes without error but is not a collection
	if items == nil {
		return nil, fmt.Errorf("decode cart: not a list")
	}
	if err := validateItems(items); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return items, nil
}

// persist mirrors the cart into the slot. Failures are logged and dropped.
func (s *Store) persist(ctx context.Context) {
	data, err := json.Marshal(s.items)
	if err != nil {
		s.logger.WithError(err).Warn("cart: failed to encode cart")
		return
	}
	if err := s.slot.Set(ctx, StorageKey, string(data)); err != nil {
		s.logger.WithError(err).Warn("cart: failed to persist cart")
	}
}

func (s *Store) indexOf(productID uint) int {
	for i := range s.items {
		if s.items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// Add puts one unit of p in the cart
func (s *Store) Add(ctx context.Context, p *product.Product) {
	s.AddItem(ctx, p, 1)
}

// AddItem adds quantity units of p. An existing line keeps its original
// snapshot and only accumulates quantity. Stock is not checked here.
func (s *Store) AddItem(ctx context.Context, p *product.Product, quantity int) {
	if p == nil || quantity < 1 {
		return
	}

	if i := s.indexOf(p.ID); i >= 0 {
		s.items[i].Quantity += quantity
	} else {
		s.items = append(s.items, LineItem{
			ProductID:   p.ID,
			Name:        p.Name,
			Price:       p.Price,
			Quantity:    quantity,
			Description: p.Description,
			Category:    p.Category,
		})
	}
	s.persist(ctx)
}

// RemoveItem drops the line for productID if there is one
func (s *Store) RemoveItem(ctx context.Context, productID uint) {
	if i := s.indexOf(productID); i >= 0 {
		s.items = append(s.items[:i], s.items[i+1:]...)
	}
	s.persist(ctx)
}

// UpdateQuantity sets the quantity for productID. Zero or less removes the line.
func (s *Store) UpdateQuantity(ctx context.Context, productID uint, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(ctx, productID)
		return
	}
	if i := s.indexOf(productID); i >= 0 {
		s.items[i].Quantity = quantity
	}
	s.persist(ctx)
}

// ClearCart empties the cart
func (s *Store) ClearCart(ctx context.Context) {
	s.items = []LineItem{}
	s.persist(ctx)
}

// Items returns a copy of the line items in insertion order
func (s *Store) Items() []LineItem {
	out := make([]LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// Total is the sum of price * quantity over all lines
func (s *Store) Total() money.Cents {
	lines := make([]money.Cents, len(s.items))
	for i, item := range s.items {
		lines[i] = item.LineTotal()
	}
	return money.Sum(lines...)
}

// ItemCount is the sum of quantities, not the number of lines
func (s *Store) ItemCount() int {
	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// LineCount is the number of distinct products in the cart
func (s *Store) LineCount() int {
	return len(s.items)
}

// IsEmpty reports whether the cart has no lines
func (s *Store) IsEmpty() bool {
	return len(s.items) == 0
}

// IsInCart reports whether productID has a line
func (s *Store) IsInCart(productID uint) bool {
	return s.indexOf(productID) >= 0
}

// ItemQuantity returns the quantity for productID, or 0
func (s *Store) ItemQuantity(productID uint) int {
	if i := s.indexOf(productID); i >= 0 {
		return s.items[i].Quantity
	}
	return 0
}
