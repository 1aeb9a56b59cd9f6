// internal/infrastructure/mock/product_repository.go
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/your-org/stockflow/internal/domain/product"
)

// ProductRepository keeps products in memory
type ProductRepository struct {
	mu       sync.RWMutex
	products []product.Product
	nextID   uint
	latency  Latency
}

// NewProductRepository creates a repository holding a copy of products
func NewProductRepository(products []product.Product, latency Latency) *ProductRepository {
	r := &ProductRepository{
		products: make([]product.Product, len(products)),
		nextID:   1,
		latency:  latency,
	}
	copy(r.products, products)
	for _, p := range products {
		if p.ID >= r.nextID {
			r.nextID = p.ID + 1
		}
	}
	return r
}

// List returns every product, newest first
func (r *ProductRepository) List(ctx context.Context) ([]product.Product, error) {
	if err := r.latency.Wait(ctx); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]product.Product, 0, len(r.products))
	for i := len(r.products) - 1; i >= 0; i-- {
		out = append(out, r.products[i])
	}
	return out, nil
}

// Get returns a product by id
func (r *ProductRepository) Get(ctx context.Context, id uint) (*product.Product, error) {
	if err := r.latency.Wait(ctx); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, product.ErrProductNotFound
	}
	p := r.products[i]
	return &p, nil
}

// Create stores p and assigns its id
func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	if err := r.latency.Wait(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	p.ID = r.nextID
	p.CreatedAt = now
	p.UpdatedAt = now
	r.nextID++
	r.products = append(r.products, *p)
	return nil
}

// Update replaces the stored product with the same id
func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	if err := r.latency.Wait(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(p.ID)
	if i < 0 {
		return product.ErrProductNotFound
	}
	p.CreatedAt = r.products[i].CreatedAt
	p.UpdatedAt = time.Now().UTC()
	r.products[i] = *p
	return nil
}

// Delete removes a product
func (r *ProductRepository) Delete(ctx context.Context, id uint) error {
	if err := r.latency.Wait(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return product.ErrProductNotFound
	}
	r.products = append(r.products[:i], r.products[i+1:]...)
	return nil
}

// caller holds mu
func (r *ProductRepository) indexOf(id uint) int {
	for i := range r.products {
		if r.products[i].ID == id {
			return i
		}
	}
	return -1
}
