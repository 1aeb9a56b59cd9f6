// internal/domain/order/entity.go
package order

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/your-org/stockflow/internal/pkg/money"
)

// OrderStatus represents the order status
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// IsValid reports whether s is a known status
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// Order represents the order entity
type Order struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	Items        OrderItems   `gorm:"type:jsonb;not null" json:"items"`
	Total        money.Cents  `gorm:"not null" json:"total"` // In cents
	Status       OrderStatus  `gorm:"not null;default:'pending';index" json:"status"`
	CustomerInfo CustomerInfo `gorm:"type:jsonb;not null" json:"customer_info"`
	Tags         string       `gorm:"size:500" json:"tags"`
	CreatedAt    time.Time    `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// OrderItem is one purchased product, copied from the cart at checkout
type OrderItem struct {
	ProductID   uint        `json:"productId"`
	ProductName string      `json:"productName"`
	Quantity    int         `json:"quantity"`
	Price       money.Cents `json:"price"`
	Total       money.Cents `json:"total"`
}

// CustomerInfo is the contact data collected at checkout
type CustomerInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// OrderItems is stored as a JSON column
type OrderItems []OrderItem

// TableName overrides the table name
func (Order) TableName() string {
	return "orders"
}

// Value implements driver.Valuer
func (items OrderItems) Value() (driver.Value, error) {
	if items == nil {
		items = OrderItems{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner. Unreadable JSON yields an empty list.
func (items *OrderItems) Scan(src interface{}) error {
	data, err := columnBytes(src)
	if err != nil {
		return err
	}
	*items = ParseItems(data)
	return nil
}

// Value implements driver.Valuer
func (c CustomerInfo) Value() (driver.Value, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner. Unreadable JSON yields an empty customer.
func (c *CustomerInfo) Scan(src interface{}) error {
	data, err := columnBytes(src)
	if err != nil {
		return err
	}
	*c = ParseCustomerInfo(data)
	return nil
}

func columnBytes(src interface{}) ([]byte, error) {
	switch v := src.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unsupported column type %T", src)
	}
}

// ParseItems decodes an items column, returning an empty list when it is
// missing or corrupt.
func ParseItems(data []byte) OrderItems {
	if len(data) == 0 {
		return OrderItems{}
	}
	var items OrderItems
	if err := json.Unmarshal(data, &items); err != nil || items == nil {
		return OrderItems{}
	}
	return items
}

// ParseCustomerInfo decodes a customer column, returning an empty value when
// it is missing or corrupt.
func ParseCustomerInfo(data []byte) CustomerInfo {
	var c CustomerInfo
	if len(data) == 0 {
		return c
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return CustomerInfo{}
	}
	return c
}

// Business methods for Order

// GetFormattedTotal returns total amount for display
func (o *Order) GetFormattedTotal() string {
	return o.Total.Format()
}

// ItemCount returns the number of units in the order
func (o *Order) ItemCount() int {
	count := 0
	for _, item := range o.Items {
		count += item.Quantity
	}
	return count
}

// CanBeCancelled checks if order can be cancelled
func (o *Order) CanBeCancelled() bool {
	return o.Status == OrderStatusPending || o.Status == OrderStatusProcessing
}

// IsCompleted checks if order is completed
func (o *Order) IsCompleted() bool {
	return o.Status == OrderStatusCompleted
}
