package basket

import "strconv"

// Totals carries the derived bill figures at stored precision. Values are
// computed from exact cent sums and rounded only when formatted for display.
type Totals struct {
	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discount_amount"`
	TaxAmount      float64 `json:"tax_amount"`
	Total          float64 `json:"total"`
}

// Totals derives the bill for the current items. discountPercent is trusted
// to already be clamped to [0,100] by the caller.
func (b *Basket) Totals(discountPercent, taxRate float64) Totals {
	var cents int64
	for _, it := range b.items {
		cents += int64(it.Price)
	}
	subtotal := float64(cents) / 100
	discount := subtotal * discountPercent / 100
	tax := (subtotal - discount) * taxRate
	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		TaxAmount:      tax,
		Total:          subtotal - discount + tax,
	}
}

// DisplayTotals is the two-decimal rendering used on receipts and in API
// responses.
type DisplayTotals struct {
	Subtotal       string `json:"subtotal"`
	DiscountAmount string `json:"discount_amount"`
	TaxAmount      string `json:"tax_amount"`
	Total          string `json:"total"`
}

func (t Totals) Display() DisplayTotals {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }
	return DisplayTotals{
		Subtotal:       f(t.Subtotal),
		DiscountAmount: f(t.DiscountAmount),
		TaxAmount:      f(t.TaxAmount),
		Total:          f(t.Total),
	}
}
