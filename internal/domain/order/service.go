// internal/domain/order/service.go
package order

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/your-org/stockflow/internal/pkg/money"
)

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrInvalidOrder     = errors.New("invalid order")
	ErrInvalidStatus    = errors.New("invalid order status")
	ErrSubmissionFailed = errors.New("failed to place order")
)

// Repository is where orders are stored. List returns newest first.
type Repository interface {
	List(ctx context.Context) ([]Order, error)
	Get(ctx context.Context, id uint) (*Order, error)
	Create(ctx context.Context, o *Order) error
	Update(ctx context.Context, o *Order) error
	Delete(ctx context.Context, id uint) error
}

// Service handles order business logic
type Service struct {
	repo   Repository
	logger logrus.FieldLogger
}

// NewService creates a new order service
func NewService(repo Repository, logger logrus.FieldLogger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// SubmitRequest is a finalized cart snapshot plus the customer's contact data
type SubmitRequest struct {
	Items        []OrderItem
	Total        money.Cents
	Status       OrderStatus
	CustomerInfo CustomerInfo
	Tags         string
}

// ListFilter represents order list query parameters
type ListFilter struct {
	Status OrderStatus `form:"status"`
	Search string      `form:"search"`
}

// UpdateStatusRequest represents an admin status change
type UpdateStatusRequest struct {
	Status OrderStatus `json:"status" binding:"required"`
}

// Submit persists a new order
func (s *Service) Submit(ctx context.Context, req *SubmitRequest) (*Order, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: order has no items", ErrInvalidOrder)
	}
	if strings.TrimSpace(req.CustomerInfo.Name) == "" || strings.TrimSpace(req.CustomerInfo.Email) == "" {
		return nil, fmt.Errorf("%w: customer name and email are required", ErrInvalidOrder)
	}
	for _, item := range req.Items {
		if item.Quantity < 1 || item.Price < 0 {
			return nil, fmt.Errorf("%w: bad line for product %d", ErrInvalidOrder, item.ProductID)
		}
	}

	status := req.Status
	if status == "" {
		status = OrderStatusPending
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	o := &Order{
		Items:        append(OrderItems{}, req.Items...),
		Total:        req.Total,
		Status:       status,
		CustomerInfo: req.CustomerInfo,
		Tags:         req.Tags,
	}

	if err := s.repo.Create(ctx, o); err != nil {
		s.logger.WithError(err).Error("order: create failed")
		return nil, fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}

	s.logger.WithFields(logrus.Fields{
		"order_id": o.ID,
		"total":    o.Total.String(),
		"items":    len(o.Items),
	}).Info("order placed")

	return o, nil
}

// ListOrders returns orders matching filter, newest first
func (s *Service) ListOrders(ctx context.Context, filter ListFilter) ([]Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve orders: %w", err)
	}
	return ApplyFilter(orders, filter), nil
}

// ApplyFilter keeps orders with the given status whose customer name, email
// or id contains the search term.
func ApplyFilter(orders []Order, filter ListFilter) []Order {
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	filtered := make([]Order, 0, len(orders))
	for _, o := range orders {
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(o.CustomerInfo.Name), search) &&
			!strings.Contains(strings.ToLower(o.CustomerInfo.Email), search) &&
			!strings.Contains(strconv.FormatUint(uint64(o.ID), 10), search) {
			continue
		}
		filtered = append(filtered, o)
	}
	return filtered
}

// GetOrder retrieves a single order by ID
func (s *Service) GetOrder(ctx context.Context, id uint) (*Order, error) {
	return s.repo.Get(ctx, id)
}

// UpdateStatus moves order id to status
func (s *Service) UpdateStatus(ctx context.Context, id uint, status OrderStatus) (*Order, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	o, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	previous := o.Status
	o.Status = status
	if err := s.repo.Update(ctx, o); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"order_id": id,
		"from":     previous,
		"to":       status,
	}).Info("order status changed")

	return o, nil
}

// DeleteOrder removes order id
func (s *Service) DeleteOrder(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.WithField("order_id", id).Info("order deleted")
	return nil
}

// Revenue sums order totals
func Revenue(orders []Order) money.Cents {
	totals := make([]money.Cents, len(orders))
	for i, o := range orders {
		totals[i] = o.Total
	}
	return money.Sum(totals...)
}
