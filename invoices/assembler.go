package invoices

import (
	"fmt"
	"log"

	"github.com/zeptools/docgen/pdfs"
)

// Result of one render
type Result struct {
	PDF     []byte
	Skipped int // text runs dropped during layout
}

// Render creates a single A4 page with the two core faces, runs the layout
// engine once and serializes the finished page. Page or font setup failure
// is fatal for the whole render - there is no partial-document recovery
func Render(rec *Record) (*Result, error) {
	page, err := pdfs.NewPage(pdfs.A4Size)
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}
	skipped := Draw(page, rec)
	if skipped > 0 {
		log.Printf("[WARN][Invoices] %d text runs dropped while rendering %s document", skipped, rec.Kind)
	}
	data, err := page.ProduceBytes()
	if err != nil {
		return nil, fmt.Errorf("serialize page: %w", err)
	}
	log.Printf("[INFO][Invoices] rendered %s document, %d bytes", rec.Kind, len(data))
	return &Result{PDF: data, Skipped: skipped}, nil
}
