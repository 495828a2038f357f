package invoices

// Kind selects which optional notes block is shown and its label
type Kind string

const (
	KindInvoice Kind = "Invoice"
	KindQuote   Kind = "Quote"
	KindReceipt Kind = "Receipt"
)

// ParseKind - unknown values fall back to Invoice (best-effort input policy)
func ParseKind(s string) Kind {
	switch Kind(s) {
	case KindQuote:
		return KindQuote
	case KindReceipt:
		return KindReceipt
	default:
		return KindInvoice
	}
}

// BillingMode - purely a label switch for two item-table column headers.
// Does not change any math
type BillingMode string

const (
	BillingUnit   BillingMode = "unit"
	BillingHourly BillingMode = "hourly"
)

func ParseBillingMode(s string) BillingMode {
	if BillingMode(s) == BillingHourly {
		return BillingHourly
	}
	return BillingUnit
}

// Party - one side of the document. Telephone and Email are optional and
// omitted from the page entirely when empty
type Party struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Postcode  string `json:"postcode"`
	Telephone string `json:"telephone"`
	Email     string `json:"email"`
}

// LineItem - one billable row
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// Total is always recomputed from its inputs, never trusted from the caller
func (it LineItem) Total() float64 {
	return it.Quantity * it.UnitPrice
}

// Record - the full input of one render. Immutable for the duration of the
// render, discarded afterwards. The free-text line slices arrive pre-wrapped
// by the caller but are re-wrapped defensively against the page's own width
// budget when drawn
type Record struct {
	Kind            Kind        `json:"kind"`
	Issuer          Party       `json:"issuer"`
	Recipient       Party       `json:"recipient"`
	Date            string      `json:"date"` // display string, caller-formatted
	CurrencySymbol  string      `json:"currency_symbol"`
	BillingMode     BillingMode `json:"billing_mode"`
	LineItems       []LineItem  `json:"line_items"`
	TaxPercent      float64     `json:"tax_percent"`
	DiscountPercent float64     `json:"discount_percent"`

	MessageLines      []string `json:"message_lines"`
	PaymentTermsLines []string `json:"payment_terms_lines"`
	ConditionsLines   []string `json:"conditions_lines"`
}
