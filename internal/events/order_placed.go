package events

import "time"

const EventTypeOrderPlaced = "OrderPlaced"

type OrderPlaced struct {
	EventType     string           `json:"eventType"`
	OrderID       string           `json:"orderId"`
	SubtotalCents int64            `json:"subtotalCents"`
	TaxCents      int64            `json:"taxCents"`
	TotalCents    int64            `json:"totalCents"`
	TenderType    string           `json:"tenderType"`
	Items         []OrderItemEvent `json:"items"`
	Timestamp     time.Time        `json:"timestamp"`
}

type OrderItemEvent struct {
	ItemID         string `json:"itemId"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Quantity       int64  `json:"quantity"`
}
