// internal/infrastructure/mock/backend.go
package mock

import (
	"github.com/your-org/stockflow/internal/infrastructure/seed"
)

// Backend bundles the in-memory repositories
type Backend struct {
	Products *ProductRepository
	Orders   *OrderRepository
}

// NewSeededBackend loads the embedded catalog and sample orders
func NewSeededBackend(latency Latency) (*Backend, error) {
	products, err := seed.Products()
	if err != nil {
		return nil, err
	}
	orders, err := seed.Orders()
	if err != nil {
		return nil, err
	}

	return &Backend{
		Products: NewProductRepository(products, latency),
		Orders:   NewOrderRepository(orders, latency),
	}, nil
}
