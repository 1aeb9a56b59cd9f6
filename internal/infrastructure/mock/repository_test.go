package mock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/stockflow/internal/domain/order"
	"github.com/your-org/stockflow/internal/domain/product"
)

func TestProductRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository([]product.Product{
		{ID: 1, Name: "Mug", Price: 1000, Stock: 3},
		{ID: 5, Name: "Tea", Price: 350, Stock: 0},
	}, NoLatency)

	t.Run("list newest first", func(t *testing.T) {
		products, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, uint(5), products[0].ID)
	})

	t.Run("create assigns next id", func(t *testing.T) {
		p := &product.Product{Name: "Lamp", Price: 2999}
		require.NoError(t, repo.Create(ctx, p))
		assert.Equal(t, uint(6), p.ID)
		assert.False(t, p.CreatedAt.IsZero())
	})

	t.Run("get returns a copy", func(t *testing.T) {
		p, err := repo.Get(ctx, 1)
		require.NoError(t, err)
		p.Stock = 99

		again, err := repo.Get(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 3, again.Stock)
	})

	t.Run("update", func(t *testing.T) {
		p, err := repo.Get(ctx, 1)
		require.NoError(t, err)
		p.Stock = 7
		require.NoError(t, repo.Update(ctx, p))

		again, err := repo.Get(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 7, again.Stock)

		assert.ErrorIs(t, repo.Update(ctx, &product.Product{ID: 42}), product.ErrProductNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, 5))
		_, err := repo.Get(ctx, 5)
		assert.ErrorIs(t, err, product.ErrProductNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, 5), product.ErrProductNotFound)
	})
}

func TestOrderRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository([]order.Order{
		{ID: 1, Items: order.OrderItems{{ProductID: 1, Quantity: 1, Price: 100, Total: 100}}, Total: 100, Status: order.OrderStatusPending},
	}, NoLatency)

	o := &order.Order{Items: order.OrderItems{{ProductID: 2, Quantity: 2, Price: 50, Total: 100}}, Total: 100}
	require.NoError(t, repo.Create(ctx, o))
	assert.Equal(t, uint(2), o.ID)

	orders, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, uint(2), orders[0].ID)

	// Mutating a listed order must not leak into storage
	orders[1].Items[0].Quantity = 50
	got, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Items[0].Quantity)

	got.Status = order.OrderStatusShipped
	require.NoError(t, repo.Update(ctx, got))
	again, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, order.OrderStatusShipped, again.Status)

	require.NoError(t, repo.Delete(ctx, 1))
	_, err = repo.Get(ctx, 1)
	assert.ErrorIs(t, err, order.ErrOrderNotFound)
}

func TestConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(nil, NoLatency)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.Create(ctx, &order.Order{Total: 1})
		}()
	}
	wg.Wait()

	orders, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 50)

	seen := map[uint]bool{}
	for _, o := range orders {
		assert.False(t, seen[o.ID])
		seen[o.ID] = true
	}
}

func TestLatencyHonorsContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	repo := NewProductRepository(nil, Latency{Min: time.Second, Max: time.Second})
	start := time.Now()
	_, err := repo.List(ctx)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestLatencyWithinBounds(t *testing.T) {
	l := Latency{Min: 5 * time.Millisecond, Max: 15 * time.Millisecond}
	start := time.Now()
	require.NoError(t, l.Wait(context.Background()))
	assert.GreaterOrEqual(t, time.Since(start), 5*time.Millisecond)
}

func TestNewSeededBackend(t *testing.T) {
	b, err := NewSeededBackend(NoLatency)
	require.NoError(t, err)

	products, err := b.Products.List(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, products)

	o := &order.Order{Total: 1}
	require.NoError(t, b.Orders.Create(context.Background(), o))
	assert.Equal(t, uint(4), o.ID)
}
