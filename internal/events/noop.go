package events

import (
	"context"

	"github.com/kavia-common/cafe-pos/pos-service-go/internal/order"
)

// NoopPublisher stands in when messaging is disabled.
type NoopPublisher struct{}

func (NoopPublisher) PublishOrderPlaced(ctx context.Context, o *order.Order) error { return nil }

func (NoopPublisher) Close() error { return nil }
