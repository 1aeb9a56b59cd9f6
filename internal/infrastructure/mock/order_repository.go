// internal/infrastructure/mock/order_repository.go
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/your-org/stockflow/internal/domain/order"
)

// OrderRepository keeps orders in memory
type OrderRepository struct {
	mu      sync.RWMutex
	orders  []order.Order
	nextID  uint
	latency Latency
}

// NewOrderRepository creates a repository holding a copy of orders
func NewOrderRepository(orders []order.Order, latency Latency) *OrderRepository {
	r := &OrderRepository{
		orders:  make([]order.Order, 0, len(orders)),
		nextID:  1,
		latency: latency,
	}
	for _, o := range orders {
		r.orders = append(r.orders, cloneOrder(o))
		if o.ID >= r.nextID {
			r.nextID = o.ID + 1
		}
	}
	return r
}

// List returns every order, newest first
func (r *OrderRepository) List(ctx context.Context) ([]order.Order, error) {
	if err := r.latency.Wait(ctx); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]order.Order, 0, len(r.orders))
	for i := len(r.orders) - 1; i >= 0; i-- {
		out = append(out, cloneOrder(r.orders[i]))
	}
	return out, nil
}

// Get returns an order by id
func (r *OrderRepository) Get(ctx context.Context, id uint) (*order.Order, error) {
	if err := r.latency.Wait(ctx); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, order.ErrOrderNotFound
	}
	o := cloneOrder(r.orders[i])
	return &o, nil
}

// Create stores o and assigns its id
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	if err := r.latency.Wait(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	o.ID = r.nextID
	o.CreatedAt = now
	o.UpdatedAt = now
	r.nextID++
	r.orders = append(r.orders, cloneOrder(*o))
	return nil
}

// Update replaces the stored order with the same id
func (r *OrderRepository) Update(ctx context.Context, o *order.Order) error {
	if err := r.latency.Wait(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(o.ID)
	if i < 0 {
		return order.ErrOrderNotFound
	}
	o.CreatedAt = r.orders[i].CreatedAt
	o.UpdatedAt = time.Now().UTC()
	r.orders[i] = cloneOrder(*o)
	return nil
}

// Delete removes an order
func (r *OrderRepository) Delete(ctx context.Context, id uint) error {
	if err := r.latency.Wait(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return order.ErrOrderNotFound
	}
	r.orders = append(r.orders[:i], r.orders[i+1:]...)
	return nil
}

// caller holds mu
func (r *OrderRepository) indexOf(id uint) int {
	for i := range r.orders {
		if r.orders[i].ID == id {
			return i
		}
	}
	return -1
}

// cloneOrder copies the items slice so callers can't mutate stored state
func cloneOrder(o order.Order) order.Order {
	items := make(order.OrderItems, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}
