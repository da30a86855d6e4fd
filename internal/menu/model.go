package menu

type Item struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
	Category   string `json:"category"`
	Active     bool   `json:"active"`
}
