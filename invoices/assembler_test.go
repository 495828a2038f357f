package invoices

import (
	"bytes"
	"testing"
)

func TestRender(t *testing.T) {
	res, err := Render(sampleRecord())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(res.PDF, []byte("%PDF-")) {
		t.Error("output does not start with the %PDF- header")
	}
	if res.Skipped != 0 {
		t.Errorf("skipped = %d, want 0", res.Skipped)
	}
}

func TestRenderAllKinds(t *testing.T) {
	for _, kind := range []Kind{KindInvoice, KindQuote, KindReceipt} {
		t.Run(string(kind), func(t *testing.T) {
			rec := sampleRecord()
			rec.Kind = kind
			rec.ConditionsLines = []string{"Valid for 30 days."}
			res, err := Render(rec)
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			if len(res.PDF) < 1000 {
				t.Errorf("suspiciously small output: %d bytes", len(res.PDF))
			}
		})
	}
}

func TestRenderMessySampleInput(t *testing.T) {
	rec := sampleRecord()
	rec.Issuer.Name = "Müller & Söhne GmbH"
	rec.MessageLines = []string{"“Danke” – bis bald…", "前払い済み"}
	rec.LineItems = append(rec.LineItems, LineItem{Description: "Extra • Paket", Quantity: 1, UnitPrice: 9.99})
	res, err := Render(rec)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if res.Skipped != 0 {
		t.Errorf("sanitized input should render without drops, skipped = %d", res.Skipped)
	}
}
