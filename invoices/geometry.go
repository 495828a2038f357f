package invoices

// Page geometry, in pt from the top-left corner. This table is the only
// "global state" of the engine and is read-only. Text y values are baselines
const (
	pageMarginX = 50 // printable left/right inset for full-width content

	// stage 1: header band
	headerBandHeight    = 120
	headerTitleBaseline = 70
	headerTitleSize     = 36
	headerDateSlotWidth = 150
	headerDateInset     = 50 // slot right edge sits this far from the page edge
	headerDateSize      = 12

	// stage 2: parties band. Box heights are layout constants, not
	// data-dependent: an overlong single field may overrun the box edge
	partiesGap         = 40 // below the header band
	partyBoxWidth      = 200
	partyBoxHeight     = 120
	partyBoxLeftX      = 40
	partyBoxRightInset = 240 // right box x = page width - this
	partyTextInset     = 10
	partyLabelOffset   = 20 // label baseline below box top
	partyNameOffset    = 45
	partyNameSize      = 14
	partyLine1Offset   = 65
	partyLine2Offset   = 80
	partyLine3Offset   = 95
	partyLine4Offset   = 110
	partyLabelSize     = 12

	// stage 3: item table. Column x offsets are fixed absolute constants
	// derived from tableColWidths, never computed from content width
	tableGap                  = 45 // below the parties band
	tableBaseX                = 50
	tableRectInset            = 10 // row/header rects start this far left of tableBaseX
	tableRectRightInset       = 80 // row/header rect width = page width - this
	tableHeaderHeight         = 40
	tableHeaderBaselineOffset = 25
	tableHeaderSize           = 12
	tableRowHeight            = 30
	tableRowBaselineOffset    = 15
	tableCellPad              = 10 // width headroom when truncating a description

	// stage 4: totals box. Box height always equals the drawn content:
	// base height plus one row step per optional line present
	totalsBoxTopGap          = 15 // below the last table row
	totalsBoxWidth           = 200
	totalsBoxRightInset      = 240 // box x = page width - this
	totalsTextInset          = 10
	totalsFirstBaselineOffset = 20 // subtotal baseline below box top
	totalsRowStep            = 25
	totalsRowSize            = 12
	totalsAmountSlotX        = 130 // amount slot x = box x + this
	totalsAmountSlotWidth    = 50
	totalsBandGap            = 15 // grand-total band top below the last row baseline
	totalsBandHeight         = 35
	totalsBandBaselineOffset = 25
	totalsBandSize           = 14
	totalsBoxBaseHeight      = totalsFirstBaselineOffset + totalsBandGap + totalsBandHeight // 70

	// stage 5: notes band. Sub-block box height is computed from the wrapped
	// line count and the same value advances the cursor
	notesGap             = 40 // below the totals box
	notesLabelSize       = 12
	notesLabelOffset     = 15 // label baseline below block top
	notesRuleDrop        = 5  // underline rule below the label baseline
	notesRuleShort       = 100 // message
	notesRuleLong        = 150 // payment terms / conditions
	notesFirstLineOffset = 40 // first text baseline below block top
	notesLineStep        = 14
	notesBoxBottomPad    = 10
	notesBoxPadding      = notesFirstLineOffset - notesLineStep + notesBoxBottomPad // 36
	notesBoxInset        = 10 // background box starts this far left of the text
	notesBlockGap        = 14 // between sub-blocks
)

// tableColWidths - description, quantity, unit price, line total
var tableColWidths = [4]float64{300, 75, 85, 85}
