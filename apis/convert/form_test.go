package convert

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/zeptools/docgen/invoices"
)

func postForm(t *testing.T, values url.Values) *http.Request {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, "/convert", strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func TestRecordFromFormDefaults(t *testing.T) {
	rec := RecordFromForm(postForm(t, url.Values{}))
	if rec.Kind != invoices.KindInvoice {
		t.Errorf("Kind = %q, want Invoice", rec.Kind)
	}
	if rec.CurrencySymbol != "$" {
		t.Errorf("CurrencySymbol = %q, want $", rec.CurrencySymbol)
	}
	if rec.BillingMode != invoices.BillingUnit {
		t.Errorf("BillingMode = %q, want unit", rec.BillingMode)
	}
	if rec.Date != time.Now().Format("1/2/2006") {
		t.Errorf("Date = %q, want today", rec.Date)
	}
	if len(rec.LineItems) != 0 {
		t.Errorf("LineItems = %v, want none", rec.LineItems)
	}
}

func TestRecordFromForm(t *testing.T) {
	form := url.Values{
		"type":        {"Quote"},
		"companyName": {"Acme Ltd"},
		"address":     {"1 Main St"},
		"postcode":    {"AB1 2CD"},
		"telephone":   {"01234 567890"},
		"email":       {"billing@acme.test"},
		"toName":      {"Jane Doe"},
		"toAddress":   {"2 Side St"},
		"toCity":      {"Leeds"},
		"toPostcode":  {"LS1 4AB"},
		"date":        {"3/14/2026"},
		"currency":    {"€"},
		"billingMode": {"hourly"},
		"tax":         {"10"},
		"discount":    {"5"},
		"items":       {`[{"description":"Design","quantity":2,"unitPrice":100},{"description":"Support","quantity":"1.5","unitPrice":"40"}]`},
		"message":     {`["Thank you.","See you soon."]`},
		"payInfo":     {`["IBAN DE00 0000"]`},
		"terms":       {`["Valid for 30 days."]`},
	}
	rec := RecordFromForm(postForm(t, form))

	want := &invoices.Record{
		Kind: invoices.KindQuote,
		Issuer: invoices.Party{
			Name: "Acme Ltd", Address: "1 Main St", Postcode: "AB1 2CD",
			Telephone: "01234 567890", Email: "billing@acme.test",
		},
		Recipient: invoices.Party{
			Name: "Jane Doe", Address: "2 Side St", City: "Leeds", Postcode: "LS1 4AB",
		},
		Date:           "3/14/2026",
		CurrencySymbol: "€",
		BillingMode:    invoices.BillingHourly,
		LineItems: []invoices.LineItem{
			{Description: "Design", Quantity: 2, UnitPrice: 100},
			{Description: "Support", Quantity: 1.5, UnitPrice: 40},
		},
		TaxPercent:        10,
		DiscountPercent:   5,
		MessageLines:      []string{"Thank you.", "See you soon."},
		PaymentTermsLines: []string{"IBAN DE00 0000"},
		ConditionsLines:   []string{"Valid for 30 days."},
	}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Errorf("RecordFromForm mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordFromFormBestEffort(t *testing.T) {
	form := url.Values{
		"items":    {`not json at all`},
		"message":  {`{`},
		"tax":      {"abc"},
		"discount": {"-"},
		"type":     {"Estimate"},
	}
	rec := RecordFromForm(postForm(t, form))
	if rec.LineItems != nil {
		t.Errorf("malformed items must be ignored, got %v", rec.LineItems)
	}
	if rec.MessageLines != nil {
		t.Errorf("malformed message must be ignored, got %v", rec.MessageLines)
	}
	if rec.TaxPercent != 0 || rec.DiscountPercent != 0 {
		t.Errorf("unparsable percentages must become 0, got %v / %v", rec.TaxPercent, rec.DiscountPercent)
	}
	if rec.Kind != invoices.KindInvoice {
		t.Errorf("unknown type must fall back to Invoice, got %q", rec.Kind)
	}
}

func TestRecordFromFormItemCoercion(t *testing.T) {
	form := url.Values{
		"items": {`[
			{"description":"bad qty","quantity":"x","unitPrice":10},
			{"description":"negative","quantity":-2,"unitPrice":-5},
			{"description":"missing fields"}
		]`},
	}
	rec := RecordFromForm(postForm(t, form))
	want := []invoices.LineItem{
		{Description: "bad qty", Quantity: 0, UnitPrice: 10},
		{Description: "negative", Quantity: 0, UnitPrice: 0},
		{Description: "missing fields", Quantity: 0, UnitPrice: 0},
	}
	if diff := cmp.Diff(want, rec.LineItems); diff != "" {
		t.Errorf("item coercion mismatch (-want +got):\n%s", diff)
	}
}
