package invoices

import "testing"

func TestSuggestedFilename(t *testing.T) {
	tests := []struct {
		name      string
		recipient string
		date      string
		want      string
	}{
		{"plain name", "Jane Doe", "3/14/2026", "Jane Doe_3-14-2026.pdf"},
		{"separators replaced", `ACME/EU\North`, "3/14/2026", "ACME-EU-North_3-14-2026.pdf"},
		{"reserved characters replaced", `A:B*C?D"E<F>G|H`, "1/1/2026", "A-B-C-D-E-F-G-H_1-1-2026.pdf"},
		{"empty recipient falls back", "", "3/14/2026", "Invoice_3-14-2026.pdf"},
		{"whitespace recipient falls back", "   ", "3/14/2026", "Invoice_3-14-2026.pdf"},
		{"non-slash date kept as-is", "X", "2026-03-14", "X_2026-03-14.pdf"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SuggestedFilename(tc.recipient, tc.date); got != tc.want {
				t.Errorf("SuggestedFilename(%q, %q) = %q, want %q", tc.recipient, tc.date, got, tc.want)
			}
		})
	}
}
