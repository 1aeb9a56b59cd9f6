package analytics

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/stockflow/internal/domain/order"
	"github.com/your-org/stockflow/internal/domain/product"
	"github.com/your-org/stockflow/internal/pkg/money"
)

type stubProducts struct {
	products []product.Product
	err      error
}

func (s stubProducts) List(context.Context) ([]product.Product, error) { return s.products, s.err }

type stubOrders struct {
	orders []order.Order
	err    error
}

func (s stubOrders) List(context.Context) ([]order.Order, error) { return s.orders, s.err }

func TestDashboard(t *testing.T) {
	products := []product.Product{
		{ID: 1, Stock: 0, LowStockThreshold: 5},
		{ID: 2, Stock: 50, LowStockThreshold: 5},
		{ID: 3, Stock: 5, LowStockThreshold: 5},
	}
	orders := []order.Order{{ID: 3, Total: 1050}, {ID: 2, Total: 2000}, {ID: 1, Total: 1}}

	svc := NewService(stubProducts{products: products}, stubOrders{orders: orders})
	d, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, d.TotalProducts)
	assert.Equal(t, 2, d.LowStockItems)
	assert.Equal(t, 3, d.TotalOrders)
	assert.Equal(t, money.Cents(3051), d.TotalRevenue)
	assert.Len(t, d.LowStockProducts, 2)
	assert.Zero(t, d.MoreLowStockCount)
	assert.Equal(t, uint(3), d.RecentOrders[0].ID)
}

func TestSummarizeCapsPreviews(t *testing.T) {
	var products []product.Product
	var orders []order.Order
	for i := 1; i <= 8; i++ {
		products = append(products, product.Product{ID: uint(i), Stock: 1, LowStockThreshold: 10})
		orders = append(orders, order.Order{ID: uint(i), Total: 100})
	}

	d := Summarize(products, orders)
	assert.Equal(t, 8, d.LowStockItems)
	assert.Len(t, d.LowStockProducts, 5)
	assert.Equal(t, 3, d.MoreLowStockCount)
	assert.Len(t, d.RecentOrders, 5)
	assert.Equal(t, money.Cents(800), d.TotalRevenue)
}

func TestSummarizeEmpty(t *testing.T) {
	d := Summarize(nil, nil)
	assert.Zero(t, d.TotalProducts)
	assert.Equal(t, money.Zero, d.TotalRevenue)
	assert.NotNil(t, d.LowStockProducts)
	assert.NotNil(t, d.RecentOrders)
}

func TestDashboardPropagatesErrors(t *testing.T) {
	boom := errors.New("backend down")
	svc := NewService(stubProducts{}, stubOrders{err: boom})

	_, err := svc.Dashboard(context.Background())
	assert.ErrorIs(t, err, boom)
}
