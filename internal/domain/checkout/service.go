// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/your-org/stockflow/internal/domain/cart"
	"github.com/your-org/stockflow/internal/domain/order"
)

var ErrEmptyCart = errors.New("cart is empty")

// OrderSubmitter accepts a finalized cart snapshot
type OrderSubmitter interface {
	Submit(ctx context.Context, req *order.SubmitRequest) (*order.Order, error)
}

// Service turns a session cart into an order
type Service struct {
	orders OrderSubmitter
	logger logrus.FieldLogger
}

// NewService creates a new checkout service
func NewService(orders OrderSubmitter, logger logrus.FieldLogger) *Service {
	return &Service{
		orders: orders,
		logger: logger,
	}
}

// CheckoutRequest is the customer contact form
type CheckoutRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// CustomerInfo converts the form into order contact data
func (r *CheckoutRequest) CustomerInfo() order.CustomerInfo {
	return order.CustomerInfo{
		Name:    strings.TrimSpace(r.Name),
		Email:   strings.TrimSpace(r.Email),
		Phone:   strings.TrimSpace(r.Phone),
		Address: strings.TrimSpace(r.Address),
	}
}

// BuildRequest snapshots the cart into an order submission
func BuildRequest(store *cart.Store, customer order.CustomerInfo) *order.SubmitRequest {
	lines := store.Items()
	items := make([]order.OrderItem, len(lines))
	for i, line := range lines {
		items[i] = order.OrderItem{
			ProductID:   line.ProductID,
			ProductName: line.Name,
			Quantity:    line.Quantity,
			Price:       line.Price,
			Total:       line.LineTotal(),
		}
	}

	return &order.SubmitRequest{
		Items:        items,
		Total:        store.Total(),
		Status:       order.OrderStatusPending,
		CustomerInfo: customer,
	}
}

// Checkout submits the cart as an order and clears it once the order exists.
// On failure the cart is left untouched.
func (s *Service) Checkout(ctx context.Context, store *cart.Store, customer order.CustomerInfo) (*order.Order, error) {
	if store.IsEmpty() {
		return nil, ErrEmptyCart
	}

	created, err := s.orders.Submit(ctx, BuildRequest(store, customer))
	if err != nil {
		s.logger.WithError(err).Warn("checkout: order submission failed, cart kept")
		return nil, err
	}

	store.ClearCart(ctx)
	return created, nil
}
