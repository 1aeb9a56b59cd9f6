// internal/infrastructure/seed/seed.go
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/your-org/stockflow/internal/domain/order"
	"github.com/your-org/stockflow/internal/domain/product"
)

//go:embed products.json
var productsJSON []byte

//go:embed orders.json
var ordersJSON []byte

// Products returns the starter catalog
func Products() ([]product.Product, error) {
	var products []product.Product
	if err := json.Unmarshal(productsJSON, &products); err != nil {
		return nil, fmt.Errorf("failed to decode product seed: %w", err)
	}
	return products, nil
}

// Orders returns the sample orders, oldest first
func Orders() ([]order.Order, error) {
	var orders []order.Order
	if err := json.Unmarshal(ordersJSON, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode order seed: %w", err)
	}
	return orders, nil
}
