package convert

import (
	"errors"
	"log"
	"net/http"

	"github.com/zeptools/docgen/dbg"
	"github.com/zeptools/docgen/invoices"
	"github.com/zeptools/docgen/responses"
)

// Handler turns a posted document form into a PDF download.
// POST /convert with the multipart fields of the caller's form
type Handler struct {
	MaxMemoryMB int64
	AllowDebug  bool // ?debug=1 returns a JSON render summary instead of the PDF
}

// Summary - the debug payload returned instead of the binary when requested
type Summary struct {
	Kind           invoices.Kind `json:"kind"`
	Subtotal       float64       `json:"subtotal"`
	TaxAmount      float64       `json:"tax_amount"`
	DiscountAmount float64       `json:"discount_amount"`
	GrandTotal     float64       `json:"grand_total"`
	Filename       string        `json:"filename"`
	PDFBytes       int           `json:"pdf_bytes"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.MaxMemoryMB << 20); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		responses.WriteSimpleErrorJSON(w, http.StatusBadRequest, "failed to parse form")
		return
	}

	rec := RecordFromForm(r)
	result, err := invoices.Render(rec)
	if err != nil {
		log.Printf("[ERROR][Convert] render failed: %v", err)
		responses.WriteSimpleErrorJSON(w, http.StatusInternalServerError, "failed to generate document")
		return
	}
	filename := invoices.SuggestedFilename(rec.Recipient.Name, rec.Date)

	if h.AllowDebug && r.FormValue("debug") == "1" {
		totals := invoices.ComputeTotals(rec.LineItems, rec.TaxPercent, rec.DiscountPercent)
		payload := dbg.Pack(Summary{
			Kind:           rec.Kind,
			Subtotal:       totals.Subtotal,
			TaxAmount:      totals.TaxAmount,
			DiscountAmount: totals.DiscountAmount,
			GrandTotal:     totals.GrandTotal,
			Filename:       filename,
			PDFBytes:       len(result.PDF),
		})
		payload.DebugData = map[string]int{"skipped_runs": result.Skipped}
		responses.EncodeWriteJSON(w, http.StatusOK, payload)
		return
	}

	responses.WritePDFBytesWithFilename(w, filename, result.PDF)
}
