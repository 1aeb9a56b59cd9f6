// internal/domain/cart/entity.go
package cart

import (
	"fmt"

	"github.com/your-org/stockflow/internal/pkg/money"
)

// StorageKey is the fixed slot key the cart is persisted under
const StorageKey = "stockflow-cart"

// LineItem is one product in the cart. Name, price, category and description
// are copied from the product when it is first added and never refreshed.
type LineItem struct {
	ProductID   uint        `json:"productId"`
	Name        string      `json:"name"`
	Price       money.Cents `json:"price"`
	Quantity    int         `json:"quantity"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
}

// LineTotal returns price * quantity
func (i LineItem) LineTotal() money.Cents {
	return i.Price.Mul(i.Quantity)
}

// validateItems checks a hydrated collection against the cart invariants
func validateItems(items []LineItem) error {
	seen := make(map[uint]struct{}, len(items))
	for idx, item := range items {
		if item.ProductID == 0 {
			return fmt.Errorf("item %d: missing productId", idx)
		}
		if item.Quantity < 1 {
			return fmt.Errorf("item %d: quantity %d below 1", idx, item.Quantity)
		}
		if item.Price < 0 {
			return fmt.Errorf("item %d: negative price", idx)
		}
		if _, dup := seen[item.ProductID]; dup {
			return fmt.Errorf("item %d: duplicate productId %d", idx, item.ProductID)
		}
		seen[item.ProductID] = struct{}{}
	}
	return nil
}
