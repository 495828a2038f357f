package invoices

import "strconv"

// Totals - derived once per render, read-only thereafter. Always recomputed
// from the line items, never accepted as trusted input, even when the caller
// also sent precomputed totals
type Totals struct {
	Subtotal       float64
	TaxAmount      float64
	DiscountAmount float64
	GrandTotal     float64

	// the clamped percentages actually applied
	TaxPercent      float64
	DiscountPercent float64
}

// ClampPercent clamps a percentage into [0, 100]. Negative tax/discount must
// not invert the grand total's sign
func ClampPercent(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// ComputeTotals derives the money summary from the items and percentages
func ComputeTotals(items []LineItem, taxPercent float64, discountPercent float64) Totals {
	t := Totals{
		TaxPercent:      ClampPercent(taxPercent),
		DiscountPercent: ClampPercent(discountPercent),
	}
	for _, it := range items {
		t.Subtotal += it.Total()
	}
	t.TaxAmount = t.Subtotal * t.TaxPercent / 100
	t.DiscountAmount = t.Subtotal * t.DiscountPercent / 100
	t.GrandTotal = t.Subtotal + t.TaxAmount - t.DiscountAmount
	return t
}

// FormatAmount renders a money amount with the record's currency symbol
// prefixed. No locale conversion is performed
func FormatAmount(symbol string, v float64) string {
	return symbol + strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatQuantity renders a quantity without trailing zeros ("2", "1.5")
func FormatQuantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatPercent renders a percentage without trailing zeros ("10", "7.5")
func FormatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
