// internal/infrastructure/database/postgres/order_repository.go
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/your-org/stockflow/internal/domain/order"
	"gorm.io/gorm"
)

// OrderRepository stores orders in Postgres
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// List returns every order, newest first
func (r *OrderRepository) List(ctx context.Context) ([]order.Order, error) {
	var orders []order.Order
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve orders: %w", err)
	}
	return orders, nil
}

// Get returns an order by id
func (r *OrderRepository) Get(ctx context.Context, id uint) (*order.Order, error) {
	var o order.Order
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&o)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to retrieve order: %w", result.Error)
	}
	return &o, nil
}

// Create inserts an order and fills in its id
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	if err := r.db.WithContext(ctx).Create(o).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// Update saves every column of an existing order
func (r *OrderRepository) Update(ctx context.Context, o *order.Order) error {
	result := r.db.WithContext(ctx).Model(&order.Order{}).Where("id = ?", o.ID).Select("*").Omit("created_at").Updates(o)
	if result.Error != nil {
		return fmt.Errorf("failed to update order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return order.ErrOrderNotFound
	}
	return nil
}

// Delete removes an order
func (r *OrderRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&order.Order{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete order: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return order.ErrOrderNotFound
	}
	return nil
}
