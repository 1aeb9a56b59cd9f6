package order

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/stockflow/internal/pkg/logger"
	"github.com/your-org/stockflow/internal/pkg/money"
)

type fakeRepo struct {
	orders    []Order
	nextID    uint
	createErr error
}

func (f *fakeRepo) List(context.Context) ([]Order, error) {
	out := make([]Order, 0, len(f.orders))
	for i := len(f.orders) - 1; i >= 0; i-- {
		out = append(out, f.orders[i])
	}
	return out, nil
}

func (f *fakeRepo) Get(_ context.Context, id uint) (*Order, error) {
	for i := range f.orders {
		if f.orders[i].ID == id {
			o := f.orders[i]
			return &o, nil
		}
	}
	return nil, ErrOrderNotFound
}

func (f *fakeRepo) Create(_ context.Context, o *Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	o.ID = f.nextID
	f.orders = append(f.orders, *o)
	return nil
}

func (f *fakeRepo) Update(_ context.Context, o *Order) error {
	for i := range f.orders {
		if f.orders[i].ID == o.ID {
			f.orders[i] = *o
			return nil
		}
	}
	return ErrOrderNotFound
}

func (f *fakeRepo) Delete(_ context.Context, id uint) error {
	for i := range f.orders {
		if f.orders[i].ID == id {
			f.orders = append(f.orders[:i], f.orders[i+1:]...)
			return nil
		}
	}
	return ErrOrderNotFound
}

func validRequest() *SubmitRequest {
	return &SubmitRequest{
		Items: []OrderItem{
			{ProductID: 1, ProductName: "Mug", Quantity: 2, Price: 1000, Total: 2000},
			{ProductID: 2, ProductName: "Tea", Quantity: 4, Price: 350, Total: 1400},
		},
		Total:        3400,
		CustomerInfo: CustomerInfo{Name: "Ada Lovelace", Email: "ada@example.com"},
	}
}

func TestSubmit(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, logger.Discard())

	o, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, uint(1), o.ID)
	assert.Equal(t, OrderStatusPending, o.Status)
	assert.Equal(t, money.Cents(3400), o.Total)
	assert.Equal(t, 6, o.ItemCount())
	assert.Equal(t, "$34.00", o.GetFormattedTotal())
	assert.Len(t, repo.orders, 1)
}

func TestSubmitValidation(t *testing.T) {
	svc := NewService(&fakeRepo{}, logger.Discard())
	ctx := context.Background()

	t.Run("no items", func(t *testing.T) {
		req := validRequest()
		req.Items = nil
		_, err := svc.Submit(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidOrder)
	})

	t.Run("missing email", func(t *testing.T) {
		req := validRequest()
		req.CustomerInfo.Email = " "
		_, err := svc.Submit(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidOrder)
	})

	t.Run("zero quantity line", func(t *testing.T) {
		req := validRequest()
		req.Items[0].Quantity = 0
		_, err := svc.Submit(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidOrder)
	})

	t.Run("unknown status", func(t *testing.T) {
		req := validRequest()
		req.Status = "lost"
		_, err := svc.Submit(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestSubmitWrapsStorageFailure(t *testing.T) {
	svc := NewService(&fakeRepo{createErr: errors.New("timeout")}, logger.Discard())

	_, err := svc.Submit(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSubmissionFailed)
}

func TestApplyFilter(t *testing.T) {
	orders := []Order{
		{ID: 12, Status: OrderStatusPending, CustomerInfo: CustomerInfo{Name: "Ada Lovelace", Email: "ada@example.com"}},
		{ID: 7, Status: OrderStatusShipped, CustomerInfo: CustomerInfo{Name: "Alan Turing", Email: "alan@bletchley.uk"}},
		{ID: 3, Status: OrderStatusPending, CustomerInfo: CustomerInfo{Name: "Grace Hopper", Email: "grace@navy.mil"}},
	}

	ids := func(os []Order) []uint {
		out := []uint{}
		for _, o := range os {
			out = append(out, o.ID)
		}
		return out
	}

	assert.Equal(t, []uint{12, 7, 3}, ids(ApplyFilter(orders, ListFilter{})))
	assert.Equal(t, []uint{12, 3}, ids(ApplyFilter(orders, ListFilter{Status: OrderStatusPending})))
	assert.Equal(t, []uint{7}, ids(ApplyFilter(orders, ListFilter{Search: "TURING"})))
	assert.Equal(t, []uint{3}, ids(ApplyFilter(orders, ListFilter{Search: "navy"})))
	assert.Equal(t, []uint{12}, ids(ApplyFilter(orders, ListFilter{Search: "12"})))
	assert.Equal(t, []uint{}, ids(ApplyFilter(orders, ListFilter{Status: OrderStatusShipped, Search: "ada"})))
}

func TestUpdateStatus(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, logger.Discard())
	ctx := context.Background()

	o, err := svc.Submit(ctx, validRequest())
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, o.ID, OrderStatusShipped)
	require.NoError(t, err)
	assert.Equal(t, OrderStatusShipped, updated.Status)
	assert.False(t, updated.CanBeCancelled())

	_, err = svc.UpdateStatus(ctx, o.ID, "teleported")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.UpdateStatus(ctx, 404, OrderStatusCompleted)
	assert.ErrorIs(t, err, ErrOrderNotFound)

	require.NoError(t, svc.DeleteOrder(ctx, o.ID))
	assert.ErrorIs(t, svc.DeleteOrder(ctx, o.ID), ErrOrderNotFound)
}

func TestRevenue(t *testing.T) {
	orders := []Order{{Total: 1050}, {Total: 2999}, {Total: 1}}
	assert.Equal(t, money.Cents(4050), Revenue(orders))
	assert.Equal(t, money.Zero, Revenue(nil))
}

func TestJSONColumnsFailSoft(t *testing.T) {
	var items OrderItems
	require.NoError(t, items.Scan([]byte(`not json`)))
	assert.Equal(t, OrderItems{}, items)

	require.NoError(t, items.Scan(`[{"productId":1,"productName":"Mug","quantity":2,"price":10,"total":20}]`))
	require.Len(t, items, 1)
	assert.Equal(t, money.Cents(2000), items[0].Total)

	var c CustomerInfo
	require.NoError(t, c.Scan([]byte(`{"name":`)))
	assert.Equal(t, CustomerInfo{}, c)

	require.NoError(t, c.Scan(nil))
	assert.Equal(t, CustomerInfo{}, c)

	assert.Error(t, c.Scan(42))

	v, err := OrderItems(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}
