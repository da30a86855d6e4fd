package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/kavia-common/cafe-pos/pos-service-go/internal/order"
)

// RabbitPublisher emits order events to the shared topic exchange so
// downstream consumers (kitchen display, accounting export) can react.
type RabbitPublisher struct {
	ch *amqp.Channel
}

func NewRabbitPublisher(conn *amqp.Connection) (*RabbitPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}

	// Declare the exchange so publish never fails due to missing infra
	if err := declareEventsExchange(ch); err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &RabbitPublisher{ch: ch}, nil
}

func (p *RabbitPublisher) Close() error {
	return p.ch.Close()
}

func (p *RabbitPublisher) PublishOrderPlaced(ctx context.Context, o *order.Order) error {
	ev := OrderPlaced{
		EventType:     EventTypeOrderPlaced,
		OrderID:       o.ID,
		SubtotalCents: o.SubtotalCents,
		TaxCents:      o.TaxCents,
		TotalCents:    o.TotalCents,
		TenderType:    string(o.TenderType),
		Timestamp:     time.Now().UTC(),
	}
	for _, it := range o.Items {
		ev.Items = append(ev.Items, OrderItemEvent{
			ItemID:         it.ItemID,
			Name:           it.Name,
			UnitPriceCents: it.UnitPriceCents,
			Quantity:       it.Quantity,
		})
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal OrderPlaced: %w", err)
	}

	pubCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	return p.ch.PublishWithContext(
		pubCtx,
		EventsExchange,
		OrderPlacedRoutingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}
