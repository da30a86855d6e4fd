package checkout_test

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kavia-common/cafe-pos/pos-service-go/internal/cart"
	"github.com/kavia-common/cafe-pos/pos-service-go/internal/checkout"
	"github.com/kavia-common/cafe-pos/pos-service-go/internal/money"
	"github.com/kavia-common/cafe-pos/pos-service-go/internal/order"
)

type ordersMock struct {
	createFunc func(ctx context.Context, o *order.Order) error
	created    []*order.Order
}

func (m *ordersMock) Create(ctx context.Context, o *order.Order) error {
	m.created = append(m.created, o)
	if m.createFunc != nil {
		return m.createFunc(ctx, o)
	}
	return nil
}

type publisherMock struct {
	publishFunc func(ctx context.Context, o *order.Order) error
	published   []*order.Order
}

func (m *publisherMock) PublishOrderPlaced(ctx context.Context, o *order.Order) error {
	m.published = append(m.published, o)
	if m.publishFunc != nil {
		return m.publishFunc(ctx, o)
	}
	return nil
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", log.LstdFlags)
}

func loadedStore(t *testing.T) *cart.Store {
	t.Helper()
	store := cart.NewStore(context.Background(), "register-1", money.DefaultTaxRateTenthBps, nil)
	store.AddItem(context.Background(), cart.Candidate{
		ID: "a", Name: "House Blend", UnitPriceCents: 450, Quantity: 1, Notes: "to go",
	})
	return store
}

func TestCheckoutSuccess(t *testing.T) {
	orders := &ordersMock{}
	publisher := &publisherMock{}
	svc := checkout.NewService(orders, publisher, discardLogger())
	store := loadedStore(t)

	o, err := svc.Checkout(context.Background(), store, order.TenderCard)
	require.NoError(t, err)

	require.NotEmpty(t, o.ID)
	require.Equal(t, int64(450), o.SubtotalCents)
	require.Equal(t, int64(40), o.TaxCents)
	require.Equal(t, int64(490), o.TotalCents)
	require.Equal(t, order.TenderCard, o.TenderType)
	require.Len(t, o.Items, 1)
	require.Equal(t, "a", o.Items[0].ItemID)
	require.Equal(t, "to go", o.Items[0].Notes)

	require.Len(t, orders.created, 1)
	require.Len(t, publisher.published, 1)

	// the cart is cleared only after the order row is committed
	require.Empty(t, store.Snapshot().Items)
}

func TestCheckoutEmptyCart(t *testing.T) {
	orders := &ordersMock{}
	svc := checkout.NewService(orders, &publisherMock{}, discardLogger())
	store := cart.NewStore(context.Background(), "register-1", money.DefaultTaxRateTenthBps, nil)

	_, err := svc.Checkout(context.Background(), store, order.TenderCash)
	require.ErrorIs(t, err, checkout.ErrEmptyCart)
	require.Empty(t, orders.created)
}

func TestCheckoutUnknownTender(t *testing.T) {
	orders := &ordersMock{}
	svc := checkout.NewService(orders, &publisherMock{}, discardLogger())
	store := loadedStore(t)

	_, err := svc.Checkout(context.Background(), store, order.Tender("iou"))
	require.ErrorIs(t, err, checkout.ErrUnknownTender)
	require.Empty(t, orders.created)
	require.Len(t, store.Snapshot().Items, 1)
}

func TestCheckoutCreateFailureLeavesCartIntact(t *testing.T) {
	orders := &ordersMock{createFunc: func(ctx context.Context, o *order.Order) error {
		return errors.New("db down")
	}}
	publisher := &publisherMock{}
	svc := checkout.NewService(orders, publisher, discardLogger())
	store := loadedStore(t)

	_, err := svc.Checkout(context.Background(), store, order.TenderCash)
	require.Error(t, err)

	require.Empty(t, publisher.published)
	require.Len(t, store.Snapshot().Items, 1, "cart must survive a failed order write")
}

func TestCheckoutPublishFailureStillCompletes(t *testing.T) {
	publisher := &publisherMock{publishFunc: func(ctx context.Context, o *order.Order) error {
		return errors.New("broker down")
	}}
	svc := checkout.NewService(&ordersMock{}, publisher, discardLogger())
	store := loadedStore(t)

	o, err := svc.Checkout(context.Background(), store, order.TenderCash)
	require.NoError(t, err)
	require.NotNil(t, o)
	require.Empty(t, store.Snapshot().Items, "order is durable, cart still clears")
}
