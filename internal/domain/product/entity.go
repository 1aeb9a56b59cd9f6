// internal/domain/product/entity.go
package product

import (
	"time"

	"github.com/your-org/stockflow/internal/pkg/money"
)

// DefaultLowStockThreshold is applied when a product is created without one
const DefaultLowStockThreshold = 10

// StockStatus classifies a product's stock level
type StockStatus string

const (
	StockStatusInStock    StockStatus = "in_stock"
	StockStatusLowStock   StockStatus = "low_stock"
	StockStatusOutOfStock StockStatus = "out_of_stock"
)

// Product represents the product entity
type Product struct {
	ID                uint        `gorm:"primaryKey" json:"id"`
	Name              string      `gorm:"not null;size:255" json:"name"`
	Price             money.Cents `gorm:"not null" json:"price"` // Price in cents
	Stock             int         `gorm:"not null;default:0" json:"stock"`
	Category          string      `gorm:"size:100;index" json:"category"`
	Description       string      `gorm:"type:text" json:"description"`
	LowStockThreshold int         `gorm:"not null;default:10" json:"low_stock_threshold"`
	Tags              string      `gorm:"size:500" json:"tags"` // Comma-separated tags
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

// TableName overrides the table name
func (Product) TableName() string {
	return "products"
}

// Business methods for Product

func (p *Product) IsInStock() bool {
	return p.Stock > 0
}

func (p *Product) IsLowStock() bool {
	return p.Stock <= p.LowStockThreshold
}

// StockStatus reports out of stock at zero, low stock at or under the threshold
func (p *Product) StockStatus() StockStatus {
	switch {
	case p.Stock <= 0:
		return StockStatusOutOfStock
	case p.Stock <= p.LowStockThreshold:
		return StockStatusLowStock
	default:
		return StockStatusInStock
	}
}

// StockLevelPercent is the fill level shown by stock bars: stock against twice
// the threshold, capped at 100.
func (p *Product) StockLevelPercent() int {
	if p.Stock <= 0 {
		return 0
	}
	if p.LowStockThreshold <= 0 {
		return 100
	}
	pct := p.Stock * 100 / (p.LowStockThreshold * 2)
	if pct > 100 {
		return 100
	}
	if pct < 10 {
		return 10
	}
	return pct
}
