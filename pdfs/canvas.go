package pdfs

// RGB color with 0~255 channels
type RGB struct {
	R int
	G int
	B int
}

// Align - horizontal placement of a text run inside its slot
type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// TextOpts - explicit per-call text configuration.
// Zero value = left-aligned, FontRegular, DefaultTextSize, black.
// AlignRight/AlignCenter position the run inside [x, x+SlotWidth]
type TextOpts struct {
	Face      Font
	Size      float64 // pt. 0 = DefaultTextSize
	Color     RGB
	Align     Align
	SlotWidth float64 // width of the alignment slot starting at x
}

// LineOpts for stroked lines. Zero Width = 1pt
type LineOpts struct {
	Width float64
	Color RGB
}

// RectOpts for rectangles. nil Fill/Stroke = not painted/not stroked
type RectOpts struct {
	Fill        *RGB
	Stroke      *RGB
	StrokeWidth float64 // 0 = 1pt when Stroke is set
}

// Canvas - a single fixed-size page accepting absolutely positioned primitives.
// Coordinates are in pt from the top-left corner. Text y is the baseline.
// Text is best-effort: a failed run reports an error and must not corrupt the page
type Canvas interface {
	Size() (width float64, height float64)
	Text(x float64, y float64, s string, opts TextOpts) error
	Line(x1 float64, y1 float64, x2 float64, y2 float64, opts LineOpts)
	Rect(x float64, y float64, w float64, h float64, opts RectOpts)
	TextWidth(s string, face Font, size float64) float64
}
