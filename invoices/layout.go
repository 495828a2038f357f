package invoices

import (
	"log"
	"strings"

	"github.com/zeptools/docgen/pdfs"
)

// engine runs the five region stages exactly once each, in fixed order,
// sharing one cursor that only moves down. No stage reads a future cursor
// value and there is no backward transition
type engine struct {
	canvas  pdfs.Canvas
	rec     *Record
	totals  Totals
	pageW   float64
	cursor  float64 // current vertical write position
	skipped int     // text runs dropped after both sanitizer tiers
}

// Draw lays the record out on the canvas top to bottom. Per-run draw failures
// are retried once with the aggressive sanitizer tier, then logged and
// skipped; the count of dropped runs is returned for callers to assert on.
// Content extending past the page bottom is an accepted known limitation
func Draw(c pdfs.Canvas, rec *Record) int {
	w, _ := c.Size()
	e := &engine{
		canvas: c,
		rec:    rec,
		totals: ComputeTotals(rec.LineItems, rec.TaxPercent, rec.DiscountPercent),
		pageW:  w,
	}
	e.drawHeaderBand()
	e.drawPartiesBand()
	e.drawItemTable()
	e.drawTotalsBox()
	e.drawNotesBand()
	return e.skipped
}

// text - best-effort text run. Never propagates a draw failure
func (e *engine) text(x float64, y float64, s string, opts pdfs.TextOpts) {
	clean := pdfs.Sanitize(s)
	err := e.canvas.Text(x, y, clean, opts)
	if err == nil {
		return
	}
	log.Printf("[WARN][Layout] text run failed, retrying with strict sanitizer: %v", err)
	if err = e.canvas.Text(x, y, pdfs.SanitizeStrict(clean), opts); err != nil {
		log.Printf("[WARN][Layout] text run skipped: %v", err)
		e.skipped++
	}
}

// stage 1: full-width filled band, upper-cased kind label, right-aligned date
func (e *engine) drawHeaderBand() {
	e.canvas.Rect(0, e.cursor, e.pageW, headerBandHeight, pdfs.RectOpts{Fill: &colorPrimary})
	e.text(pageMarginX, e.cursor+headerTitleBaseline, strings.ToUpper(string(e.rec.Kind)), pdfs.TextOpts{
		Face:  pdfs.FontBold,
		Size:  headerTitleSize,
		Color: colorWhite,
	})
	e.text(e.pageW-headerDateInset-headerDateSlotWidth, e.cursor+headerTitleBaseline, "Date: "+e.rec.Date, pdfs.TextOpts{
		Size:      headerDateSize,
		Color:     colorWhite,
		Align:     pdfs.AlignRight,
		SlotWidth: headerDateSlotWidth,
	})
	e.cursor += headerBandHeight
}

// stage 2: two fixed-size boxes side by side. Optional fields are omitted
// entirely when empty, not drawn blank; the boxes never grow
func (e *engine) drawPartiesBand() {
	top := e.cursor + partiesGap

	from := e.rec.Issuer
	leftX := float64(partyBoxLeftX)
	e.drawPartyBox(leftX, top, "FROM")
	textX := leftX + partyTextInset
	e.text(textX, top+partyNameOffset, from.Name, pdfs.TextOpts{Size: partyNameSize, Color: colorText})
	e.text(textX, top+partyLine1Offset, from.Address, pdfs.TextOpts{Color: colorText})
	e.text(textX, top+partyLine2Offset, from.Postcode, pdfs.TextOpts{Color: colorText})
	if from.Telephone != "" {
		e.text(textX, top+partyLine3Offset, "Tel: "+from.Telephone, pdfs.TextOpts{Color: colorText})
	}
	if from.Email != "" {
		e.text(textX, top+partyLine4Offset, from.Email, pdfs.TextOpts{Color: colorText})
	}

	to := e.rec.Recipient
	rightX := e.pageW - partyBoxRightInset
	e.drawPartyBox(rightX, top, "BILL TO")
	textX = rightX + partyTextInset
	e.text(textX, top+partyNameOffset, to.Name, pdfs.TextOpts{Size: partyNameSize, Color: colorText})
	e.text(textX, top+partyLine1Offset, to.Address, pdfs.TextOpts{Color: colorText})
	e.text(textX, top+partyLine2Offset, to.City, pdfs.TextOpts{Color: colorText})
	e.text(textX, top+partyLine3Offset, to.Postcode, pdfs.TextOpts{Color: colorText})

	e.cursor = top + partyBoxHeight
}

func (e *engine) drawPartyBox(x float64, top float64, label string) {
	e.canvas.Rect(x, top, partyBoxWidth, partyBoxHeight, pdfs.RectOpts{
		Fill:        &colorTint,
		Stroke:      &colorRule,
		StrokeWidth: 1,
	})
	e.text(x+partyTextInset, top+partyLabelOffset, label, pdfs.TextOpts{
		Face:  pdfs.FontBold,
		Size:  partyLabelSize,
		Color: colorPrimary,
	})
}

// stage 3: colored header row, then one fixed-height row per item with
// alternating background fill by row parity (even index tinted)
func (e *engine) drawItemTable() {
	top := e.cursor + tableGap
	rectX := float64(tableBaseX - tableRectInset)
	rectW := e.pageW - tableRectRightInset

	e.canvas.Rect(rectX, top, rectW, tableHeaderHeight, pdfs.RectOpts{Fill: &colorPrimary})

	quantityLabel, priceLabel := "Quantity", "Unit Price"
	if e.rec.BillingMode == BillingHourly {
		quantityLabel, priceLabel = "Hours", "Hourly Rate"
	}
	headerOpts := pdfs.TextOpts{Face: pdfs.FontBold, Size: tableHeaderSize, Color: colorWhite}
	headerBaseline := top + tableHeaderBaselineOffset
	e.text(colX(0), headerBaseline, "Description", headerOpts)
	e.text(colX(1), headerBaseline, quantityLabel, headerOpts)
	e.text(colX(2), headerBaseline, priceLabel, headerOpts)
	e.text(colX(3), headerBaseline, "Total", headerOpts)

	rowTop := top + tableHeaderHeight
	for i, item := range e.rec.LineItems {
		if i%2 == 0 {
			e.canvas.Rect(rectX, rowTop, rectW, tableRowHeight, pdfs.RectOpts{Fill: &colorTint})
		}
		baseline := rowTop + tableRowBaselineOffset
		desc := pdfs.TruncateToWidth(e.canvas, item.Description, tableColWidths[0]-tableCellPad, pdfs.FontRegular, pdfs.DefaultTextSize)
		e.text(colX(0), baseline, desc, pdfs.TextOpts{Color: colorText})
		e.text(colX(1), baseline, FormatQuantity(item.Quantity), pdfs.TextOpts{Color: colorText})
		e.text(colX(2), baseline, FormatAmount(e.rec.CurrencySymbol, item.UnitPrice), pdfs.TextOpts{Color: colorText})
		e.text(colX(3), baseline, FormatAmount(e.rec.CurrencySymbol, item.Total()), pdfs.TextOpts{Color: colorText})
		rowTop += tableRowHeight
	}

	e.cursor = rowTop
}

// colX - fixed absolute column offset for column i
func colX(i int) float64 {
	x := float64(tableBaseX)
	for c := 0; c < i; c++ {
		x += tableColWidths[c]
	}
	return x
}

// stage 4: fixed-width box whose height equals exactly the base height plus
// one row step per optional line present. The grand-total line is rendered
// inverted (light on dark)
func (e *engine) drawTotalsBox() {
	top := e.cursor + totalsBoxTopGap
	boxX := e.pageW - totalsBoxRightInset

	optional := 0
	if e.totals.TaxPercent > 0 {
		optional++
	}
	if e.totals.DiscountPercent > 0 {
		optional++
	}
	height := float64(totalsBoxBaseHeight + optional*totalsRowStep)

	e.canvas.Rect(boxX, top, totalsBoxWidth, height, pdfs.RectOpts{
		Fill:        &colorTint,
		Stroke:      &colorPrimary,
		StrokeWidth: 1,
	})

	baseline := top + totalsFirstBaselineOffset
	e.drawTotalsRow(boxX, baseline, "Subtotal:", e.totals.Subtotal)
	if e.totals.TaxPercent > 0 {
		baseline += totalsRowStep
		e.drawTotalsRow(boxX, baseline, "Tax ("+FormatPercent(e.totals.TaxPercent)+"%):", e.totals.TaxAmount)
	}
	if e.totals.DiscountPercent > 0 {
		baseline += totalsRowStep
		e.drawTotalsRow(boxX, baseline, "Discount ("+FormatPercent(e.totals.DiscountPercent)+"%):", e.totals.DiscountAmount)
	}

	bandTop := baseline + totalsBandGap
	e.canvas.Rect(boxX, bandTop, totalsBoxWidth, totalsBandHeight, pdfs.RectOpts{Fill: &colorPrimary})
	bandBaseline := bandTop + totalsBandBaselineOffset
	bandOpts := pdfs.TextOpts{Face: pdfs.FontBold, Size: totalsBandSize, Color: colorWhite}
	e.text(boxX+totalsTextInset, bandBaseline, "TOTAL:", bandOpts)
	bandOpts.Align = pdfs.AlignRight
	bandOpts.SlotWidth = totalsAmountSlotWidth
	e.text(boxX+totalsAmountSlotX, bandBaseline, FormatAmount(e.rec.CurrencySymbol, e.totals.GrandTotal), bandOpts)

	e.cursor = top + height
}

func (e *engine) drawTotalsRow(boxX float64, baseline float64, label string, amount float64) {
	e.text(boxX+totalsTextInset, baseline, label, pdfs.TextOpts{
		Face:  pdfs.FontBold,
		Size:  totalsRowSize,
		Color: colorText,
	})
	e.text(boxX+totalsAmountSlotX, baseline, FormatAmount(e.rec.CurrencySymbol, amount), pdfs.TextOpts{
		Color:     colorText,
		Align:     pdfs.AlignRight,
		SlotWidth: totalsAmountSlotWidth,
	})
}

// stage 5: conditional notes band. Invoice shows message and payment terms,
// Quote shows conditions, Receipt never renders the band
func (e *engine) drawNotesBand() {
	top := e.cursor + notesGap
	switch e.rec.Kind {
	case KindInvoice:
		top = e.drawNoteBlock(top, "Message", notesRuleShort, e.rec.MessageLines)
		top = e.drawNoteBlock(top, "Payment Terms", notesRuleLong, e.rec.PaymentTermsLines)
	case KindQuote:
		top = e.drawNoteBlock(top, "Terms & Conditions", notesRuleLong, e.rec.ConditionsLines)
	}
	e.cursor = top
}

// drawNoteBlock renders one labeled sub-block starting at top and returns the
// top for the next sub-block. The box height computed from the wrapped line
// count both sizes the background box and advances the cursor - the two must
// never disagree
func (e *engine) drawNoteBlock(top float64, label string, ruleWidth float64, input []string) float64 {
	lines := e.rewrap(input)
	if len(lines) == 0 {
		return top
	}

	height := float64(len(lines)*notesLineStep + notesBoxPadding)
	rectX := float64(pageMarginX - notesBoxInset)
	rectW := e.pageW - 2*(pageMarginX-notesBoxInset)
	e.canvas.Rect(rectX, top, rectW, height, pdfs.RectOpts{Fill: &colorTint})

	labelBaseline := top + notesLabelOffset
	e.text(pageMarginX, labelBaseline, label, pdfs.TextOpts{
		Face:  pdfs.FontBold,
		Size:  notesLabelSize,
		Color: colorPrimary,
	})
	// underline rule sized by a fixed constant, not measured from the label
	e.canvas.Line(pageMarginX, labelBaseline+notesRuleDrop, pageMarginX+ruleWidth, labelBaseline+notesRuleDrop, pdfs.LineOpts{
		Width: 1,
		Color: colorPrimary,
	})

	baseline := top + notesFirstLineOffset
	for _, line := range lines {
		e.text(pageMarginX, baseline, line, pdfs.TextOpts{Color: colorText})
		baseline += notesLineStep
	}

	return top + height + notesBlockGap
}

// rewrap drops blank caller lines and re-wraps the rest against the page's
// own width budget - the caller wrapped against a different one
func (e *engine) rewrap(input []string) []string {
	budget := e.pageW - 2*pageMarginX
	var lines []string
	for _, raw := range input {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		lines = append(lines, pdfs.WrapText(e.canvas, pdfs.Sanitize(raw), budget, pdfs.FontRegular, pdfs.DefaultTextSize)...)
	}
	return lines
}
