package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/stockflow/internal/domain/cart"
	"github.com/your-org/stockflow/internal/domain/order"
	"github.com/your-org/stockflow/internal/domain/product"
	"github.com/your-org/stockflow/internal/pkg/logger"
	"github.com/your-org/stockflow/internal/pkg/money"
)

type recordingSubmitter struct {
	got *order.SubmitRequest
	err error
}

func (r *recordingSubmitter) Submit(_ context.Context, req *order.SubmitRequest) (*order.Order, error) {
	r.got = req
	if r.err != nil {
		return nil, r.err
	}
	return &order.Order{ID: 1, Items: req.Items, Total: req.Total, Status: req.Status, CustomerInfo: req.CustomerInfo}, nil
}

func filledStore(t *testing.T, ctx context.Context, slot cart.Slot) *cart.Store {
	t.Helper()
	store := cart.NewStore(ctx, slot, logger.Discard())
	store.AddItem(ctx, &product.Product{ID: 1, Name: "Mug", Price: money.FromFloat(10.00)}, 2)
	store.AddItem(ctx, &product.Product{ID: 2, Name: "Tea", Price: money.FromFloat(3.50)}, 4)
	return store
}

var customer = order.CustomerInfo{Name: "Ada", Email: "ada@example.com"}

func TestCheckoutSubmitsSnapshotAndClearsCart(t *testing.T) {
	ctx := context.Background()
	slot := cart.NewMemorySlot()
	store := filledStore(t, ctx, slot)
	sub := &recordingSubmitter{}

	created, err := NewService(sub, logger.Discard()).Checkout(ctx, store, customer)
	require.NoError(t, err)
	require.NotNil(t, created)

	require.Len(t, sub.got.Items, 2)
	assert.Equal(t, order.OrderItem{ProductID: 1, ProductName: "Mug", Quantity: 2, Price: 1000, Total: 2000}, sub.got.Items[0])
	assert.Equal(t, order.OrderItem{ProductID: 2, ProductName: "Tea", Quantity: 4, Price: 350, Total: 1400}, sub.got.Items[1])
	assert.Equal(t, money.Cents(3400), sub.got.Total)
	assert.Equal(t, order.OrderStatusPending, sub.got.Status)
	assert.Equal(t, customer, sub.got.CustomerInfo)

	assert.True(t, store.IsEmpty())
	assert.True(t, cart.NewStore(ctx, slot, logger.Discard()).IsEmpty(), "cleared cart must be persisted")
}

func TestCheckoutKeepsCartOnFailure(t *testing.T) {
	ctx := context.Background()
	store := filledStore(t, ctx, cart.NewMemorySlot())
	sub := &recordingSubmitter{err: order.ErrSubmissionFailed}

	_, err := NewService(sub, logger.Discard()).Checkout(ctx, store, customer)
	assert.True(t, errors.Is(err, order.ErrSubmissionFailed))
	assert.Equal(t, 6, store.ItemCount())
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	ctx := context.Background()
	store := cart.NewStore(ctx, cart.NewMemorySlot(), logger.Discard())
	sub := &recordingSubmitter{}

	_, err := NewService(sub, logger.Discard()).Checkout(ctx, store, customer)
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Nil(t, sub.got)
}

func TestCheckoutRequestTrims(t *testing.T) {
	req := CheckoutRequest{Name: " Ada ", Email: " ada@example.com", Phone: "555 ", Address: " 1 Main St"}
	assert.Equal(t, order.CustomerInfo{Name: "Ada", Email: "ada@example.com", Phone: "555", Address: "1 Main St"}, req.CustomerInfo())
}
