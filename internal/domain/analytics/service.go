// internal/domain/analytics/service.go
package analytics

import (
	"context"
	"fmt"

	"github.com/your-org/stockflow/internal/domain/order"
	"github.com/your-org/stockflow/internal/domain/product"
	"github.com/your-org/stockflow/internal/pkg/money"
	"golang.org/x/sync/errgroup"
)

// previewLimit caps the low-stock and recent-order lists on the dashboard
const previewLimit = 5

// ProductLister lists the catalog
type ProductLister interface {
	List(ctx context.Context) ([]product.Product, error)
}

// OrderLister lists orders, newest first
type OrderLister interface {
	List(ctx context.Context) ([]order.Order, error)
}

// Service computes admin dashboard figures
type Service struct {
	products ProductLister
	orders   OrderLister
}

// NewService creates a new analytics service
func NewService(products ProductLister, orders OrderLister) *Service {
	return &Service{
		products: products,
		orders:   orders,
	}
}

// Dashboard is the admin overview
type Dashboard struct {
	TotalProducts     int               `json:"total_products"`
	LowStockItems     int               `json:"low_stock_items"`
	TotalOrders       int               `json:"total_orders"`
	TotalRevenue      money.Cents       `json:"total_revenue"`
	LowStockProducts  []product.Product `json:"low_stock_products"`
	MoreLowStockCount int               `json:"more_low_stock_count"`
	RecentOrders      []order.Order     `json:"recent_orders"`
}

// Dashboard loads products and orders in parallel and summarises them
func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	var (
		products []product.Product
		orders   []order.Order
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = s.products.List(gctx)
		if err != nil {
			return fmt.Errorf("failed to load products: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		orders, err = s.orders.List(gctx)
		if err != nil {
			return fmt.Errorf("failed to load orders: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return Summarize(products, orders), nil
}

// Summarize builds the dashboard from already loaded data
func Summarize(products []product.Product, orders []order.Order) *Dashboard {
	lowStock := product.FilterLowStock(products)

	d := &Dashboard{
		TotalProducts:    len(products),
		LowStockItems:    len(lowStock),
		TotalOrders:      len(orders),
		TotalRevenue:     order.Revenue(orders),
		LowStockProducts: lowStock,
		RecentOrders:     orders,
	}
	if len(lowStock) > previewLimit {
		d.LowStockProducts = lowStock[:previewLimit]
		d.MoreLowStockCount = len(lowStock) - previewLimit
	}
	if len(orders) > previewLimit {
		d.RecentOrders = orders[:previewLimit]
	}
	if d.RecentOrders == nil {
		d.RecentOrders = []order.Order{}
	}
	return d
}
