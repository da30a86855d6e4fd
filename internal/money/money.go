package money

import (
	"fmt"
	"strconv"
	"strings"
)

// Line is one priced cart position: a unit price in cents and a unit count.
type Line struct {
	UnitPriceCents int64
	Quantity       int64
}

// DefaultTaxRateTenthBps is 887.5 basis points (8.875%). Rates are carried
// in tenths of a basis point so the half basis point survives integer
// arithmetic.
const DefaultTaxRateTenthBps int64 = 8875

// SubtotalCents sums unit price times quantity over all lines. Integer
// arithmetic only; repeated additions never drift.
func SubtotalCents(lines []Line) int64 {
	var sum int64
	for _, l := range lines {
		sum += l.UnitPriceCents * l.Quantity
	}
	return sum
}

// TaxCents computes the tax on a subtotal for a rate given in tenths of a
// basis point (8875 = 887.5 bps). Rounding is half-up in two stages: first
// to a tenth of a cent, then to a whole cent. Collapsing the two stages
// into one division changes the posted totals, so keep them separate.
func TaxCents(subtotalCents, rateTenthBps int64) int64 {
	if subtotalCents <= 0 || rateTenthBps <= 0 {
		return 0
	}
	// subtotal*10 * bps / 10000, with the rate already carrying the *10.
	taxTenths := roundHalfUpDiv(subtotalCents*rateTenthBps, 10000)
	return roundHalfUpDiv(taxTenths, 10)
}

// TotalCents is the receipt total.
func TotalCents(subtotalCents, taxCents int64) int64 {
	return subtotalCents + taxCents
}

// ParseRateBps parses a basis-point rate with at most one decimal digit
// ("887.5") into tenths of a basis point, without going through floats.
func ParseRateBps(s string) (int64, error) {
	whole, frac, hasFrac := strings.Cut(strings.TrimSpace(s), ".")
	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid rate %q", s)
	}
	if w < 0 {
		return 0, fmt.Errorf("invalid rate %q: must be non-negative", s)
	}
	var f int64
	if hasFrac {
		if len(frac) != 1 || frac[0] < '0' || frac[0] > '9' {
			return 0, fmt.Errorf("invalid rate %q: at most one decimal digit", s)
		}
		f = int64(frac[0] - '0')
	}
	return w*10 + f, nil
}

// FormatRateBps renders a tenth-bps rate back to its decimal form
// (8875 -> "887.5", 10000 -> "1000").
func FormatRateBps(rateTenthBps int64) string {
	if rateTenthBps%10 == 0 {
		return strconv.FormatInt(rateTenthBps/10, 10)
	}
	return fmt.Sprintf("%d.%d", rateTenthBps/10, rateTenthBps%10)
}

func roundHalfUpDiv(a, b int64) int64 {
	return (a + b/2) / b
}
