package cart

// LineItem is one distinct orderable product in the cart. An item that is
// present always has Quantity >= 1; quantity never sits at zero.
type LineItem struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Quantity       int64  `json:"quantity"`
	Notes          string `json:"notes,omitempty"`
}

// Snapshot is the ordered line item collection, the only state the cart
// persists. Subtotal, tax and total are always derived from it, never
// stored, so they can never drift from the items.
type Snapshot struct {
	Items []LineItem `json:"items"`
}

// Totals carries the derived money amounts for a snapshot.
type Totals struct {
	SubtotalCents int64 `json:"subtotalCents"`
	TaxCents      int64 `json:"taxCents"`
	TotalCents    int64 `json:"totalCents"`
}

// Candidate is an add request. Candidates that fail validation make the
// add a no-op rather than an error.
type Candidate struct {
	ID             string
	Name           string
	UnitPriceCents int64
	Quantity       int64
	Notes          string
}

func (c Candidate) valid() bool {
	return c.ID != "" && c.Name != "" && c.UnitPriceCents >= 0 && c.Quantity >= 1
}
