package invoices

import "testing"

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"Invoice", KindInvoice},
		{"Quote", KindQuote},
		{"Receipt", KindReceipt},
		{"", KindInvoice},
		{"invoice", KindInvoice}, // case-sensitive, unknown falls back
		{"Estimate", KindInvoice},
	}
	for _, tc := range tests {
		if got := ParseKind(tc.in); got != tc.want {
			t.Errorf("ParseKind(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseBillingMode(t *testing.T) {
	tests := []struct {
		in   string
		want BillingMode
	}{
		{"unit", BillingUnit},
		{"hourly", BillingHourly},
		{"", BillingUnit},
		{"Hourly", BillingUnit},
	}
	for _, tc := range tests {
		if got := ParseBillingMode(tc.in); got != tc.want {
			t.Errorf("ParseBillingMode(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
