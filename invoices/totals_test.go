package invoices

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestComputeTotals(t *testing.T) {
	items := []LineItem{
		{Description: "Design", Quantity: 2, UnitPrice: 100},
		{Description: "Hosting", Quantity: 1.5, UnitPrice: 40},
	}
	// subtotal 260

	tests := []struct {
		name     string
		items    []LineItem
		tax      float64
		discount float64
		want     Totals
	}{
		{
			name:  "no optional percentages",
			items: items,
			want:  Totals{Subtotal: 260, GrandTotal: 260},
		},
		{
			name:  "tax only",
			items: items,
			tax:   10,
			want:  Totals{Subtotal: 260, TaxAmount: 26, GrandTotal: 286, TaxPercent: 10},
		},
		{
			name:     "discount only",
			items:    items,
			discount: 50,
			want:     Totals{Subtotal: 260, DiscountAmount: 130, GrandTotal: 130, DiscountPercent: 50},
		},
		{
			name:     "tax and discount cancel",
			items:    items,
			tax:      10,
			discount: 10,
			want: Totals{
				Subtotal: 260, TaxAmount: 26, DiscountAmount: 26, GrandTotal: 260,
				TaxPercent: 10, DiscountPercent: 10,
			},
		},
		{
			name:     "negative percentages clamp to zero",
			items:    items,
			tax:      -5,
			discount: -20,
			want:     Totals{Subtotal: 260, GrandTotal: 260},
		},
		{
			name:     "overlarge discount clamps to full amount, never negative",
			items:    items,
			discount: 250,
			want:     Totals{Subtotal: 260, DiscountAmount: 260, GrandTotal: 0, DiscountPercent: 100},
		},
		{
			name: "no items",
			want: Totals{},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeTotals(tc.items, tc.tax, tc.discount)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("ComputeTotals mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLineItemTotalRecomputed(t *testing.T) {
	it := LineItem{Description: "Support", Quantity: 3, UnitPrice: 20}
	if got := it.Total(); got != 60 {
		t.Errorf("Total() = %v, want 60", got)
	}
}

func TestFormatters(t *testing.T) {
	if got := FormatAmount("$", 1234.5); got != "$1234.50" {
		t.Errorf("FormatAmount = %q", got)
	}
	if got := FormatAmount("€", 0); got != "€0.00" {
		t.Errorf("FormatAmount zero = %q", got)
	}
	if got := FormatQuantity(2); got != "2" {
		t.Errorf("FormatQuantity(2) = %q", got)
	}
	if got := FormatQuantity(1.5); got != "1.5" {
		t.Errorf("FormatQuantity(1.5) = %q", got)
	}
	if got := FormatPercent(7.5); got != "7.5" {
		t.Errorf("FormatPercent(7.5) = %q", got)
	}
	if got := FormatPercent(10); got != "10" {
		t.Errorf("FormatPercent(10) = %q", got)
	}
}
