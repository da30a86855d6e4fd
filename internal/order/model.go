package order

import "time"

type Item struct {
	ItemID         string `json:"itemId"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Quantity       int64  `json:"quantity"`
	Notes          string `json:"notes,omitempty"`
}

type Order struct {
	ID            string    `json:"orderId"`
	CreatedAt     time.Time `json:"createdAt"`
	SubtotalCents int64     `json:"subtotalCents"`
	TaxCents      int64     `json:"taxCents"`
	TotalCents    int64     `json:"totalCents"`
	TenderType    Tender    `json:"tenderType"`
	Items         []Item    `json:"items"`
}

// Summary aggregates the sales dashboard's headline numbers.
type Summary struct {
	Since        time.Time        `json:"since"`
	OrderCount   int64            `json:"orderCount"`
	GrossCents   int64            `json:"grossCents"`
	TaxCents     int64            `json:"taxCents"`
	TenderCounts map[string]int64 `json:"tenderCounts"`
}
