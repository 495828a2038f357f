package invoices

import "github.com/zeptools/docgen/pdfs"

// Palette - the only colors the layout uses. Read-only after initialization
var (
	colorPrimary = pdfs.RGB{R: 31, G: 92, B: 184}  // royal blue
	colorTint    = pdfs.RGB{R: 247, G: 247, B: 247} // light box/row fill
	colorRule    = pdfs.RGB{R: 230, G: 230, B: 230} // light gray strokes
	colorText    = pdfs.RGB{R: 51, G: 51, B: 51}    // body text, dark gray
	colorWhite   = pdfs.RGB{R: 255, G: 255, B: 255}
)
