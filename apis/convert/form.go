package convert

import (
	"encoding/json/v2"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/zeptools/docgen/invoices"
)

// RecordFromForm builds the render input from the posted form fields.
// Malformed values never fail the request: JSON-array fields fall back to
// empty, numeric fields to zero (best-effort input policy)
func RecordFromForm(r *http.Request) *invoices.Record {
	return &invoices.Record{
		Kind: invoices.ParseKind(formValue(r, "type", "Invoice")),
		Issuer: invoices.Party{
			Name:      r.FormValue("companyName"),
			Address:   r.FormValue("address"),
			Postcode:  r.FormValue("postcode"),
			Telephone: r.FormValue("telephone"),
			Email:     r.FormValue("email"),
		},
		Recipient: invoices.Party{
			Name:     r.FormValue("toName"),
			Address:  r.FormValue("toAddress"),
			City:     r.FormValue("toCity"),
			Postcode: r.FormValue("toPostcode"),
		},
		Date:              formValue(r, "date", time.Now().Format("1/2/2006")),
		CurrencySymbol:    formValue(r, "currency", "$"),
		BillingMode:       invoices.ParseBillingMode(formValue(r, "billingMode", "unit")),
		LineItems:         formItems(r, "items"),
		TaxPercent:        formFloat(r, "tax"),
		DiscountPercent:   formFloat(r, "discount"),
		MessageLines:      formLines(r, "message"),
		PaymentTermsLines: formLines(r, "payInfo"),
		ConditionsLines:   formLines(r, "terms"),
	}
}

func formValue(r *http.Request, key string, fallback string) string {
	v := r.FormValue(key)
	if v == "" {
		return fallback
	}
	return v
}

func formFloat(r *http.Request, key string) float64 {
	f, err := strconv.ParseFloat(r.FormValue(key), 64)
	if err != nil {
		return 0
	}
	return f
}

// formLines decodes a JSON string-array field
func formLines(r *http.Request, key string) []string {
	raw := r.FormValue(key)
	if raw == "" {
		return nil
	}
	var lines []string
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		log.Printf("[WARN][Convert] malformed %q field, ignored: %v", key, err)
		return nil
	}
	return lines
}

// rawItem tolerates quantity/unitPrice posted as either number or string
type rawItem struct {
	Description string `json:"description"`
	Quantity    any    `json:"quantity"`
	UnitPrice   any    `json:"unitPrice"`
}

func formItems(r *http.Request, key string) []invoices.LineItem {
	raw := r.FormValue(key)
	if raw == "" {
		return nil
	}
	var rawItems []rawItem
	if err := json.Unmarshal([]byte(raw), &rawItems); err != nil {
		log.Printf("[WARN][Convert] malformed %q field, ignored: %v", key, err)
		return nil
	}
	items := make([]invoices.LineItem, 0, len(rawItems))
	for _, it := range rawItems {
		items = append(items, invoices.LineItem{
			Description: it.Description,
			Quantity:    coerceNumber(it.Quantity),
			UnitPrice:   coerceNumber(it.UnitPrice),
		})
	}
	return items
}

// coerceNumber - non-numeric and negative values become 0
func coerceNumber(v any) float64 {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case string:
		parsed, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if f < 0 {
		return 0
	}
	return f
}
