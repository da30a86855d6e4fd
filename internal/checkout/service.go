// Package checkout turns the current cart into a persisted order. It is the
// only component that clears the cart on the register's behalf, and it does
// so strictly after the order row is committed.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/kavia-common/cafe-pos/pos-service-go/internal/cart"
	"github.com/kavia-common/cafe-pos/pos-service-go/internal/order"
)

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrUnknownTender = errors.New("unknown tender type")
)

type Orders interface {
	Create(ctx context.Context, o *order.Order) error
}

type Publisher interface {
	PublishOrderPlaced(ctx context.Context, o *order.Order) error
}

type Service struct {
	orders    Orders
	publisher Publisher
	logger    *log.Logger
}

func NewService(orders Orders, publisher Publisher, logger *log.Logger) *Service {
	return &Service{orders: orders, publisher: publisher, logger: logger}
}

// Checkout reads the cart's items and derived totals, writes one orders row
// and N order_items rows, then clears the cart. A failed write surfaces to
// the caller and leaves the cart intact so the cashier can retry; the cart
// itself never retries.
func (s *Service) Checkout(ctx context.Context, store *cart.Store, tender order.Tender) (*order.Order, error) {
	if !tender.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTender, tender)
	}

	snap, totals := store.View()
	if len(snap.Items) == 0 {
		return nil, ErrEmptyCart
	}

	o := &order.Order{
		ID:            uuid.NewString(),
		CreatedAt:     time.Now().UTC(),
		SubtotalCents: totals.SubtotalCents,
		TaxCents:      totals.TaxCents,
		TotalCents:    totals.TotalCents,
		TenderType:    tender,
	}
	for _, it := range snap.Items {
		o.Items = append(o.Items, order.Item{
			ItemID:         it.ID,
			Name:           it.Name,
			UnitPriceCents: it.UnitPriceCents,
			Quantity:       it.Quantity,
			Notes:          it.Notes,
		})
	}

	if err := s.orders.Create(ctx, o); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	// The order is already durable at this point; losing the event is
	// survivable, losing the order would not be.
	if err := s.publisher.PublishOrderPlaced(ctx, o); err != nil {
		s.logger.Printf("publish order placed %s: %v", o.ID, err)
	}

	store.Clear(ctx)

	return o, nil
}
