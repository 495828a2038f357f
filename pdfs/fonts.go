package pdfs

// Font - one of the two embedded core faces. No italic, no dynamic font loading
type Font int

const (
	FontRegular Font = iota
	FontBold
)

// fontFamily - the single core family both faces belong to
const fontFamily = "Helvetica"

// DefaultTextSize in pt, applied when a draw call passes size 0
const DefaultTextSize = 10

// Style returns the style selector string for the face
func (f Font) Style() string {
	if f == FontBold {
		return "B"
	}
	return ""
}
