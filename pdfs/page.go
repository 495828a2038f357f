package pdfs

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/go-pdf/fpdf"

	"github.com/zeptools/docgen/rw"
)

// Page - minimal, single-page, append-only PDF drawing surface wrapping the
// binary-format writer. Each render owns its own Page. Not safe for sharing
type Page struct {
	pdf       *fpdf.Fpdf
	paperSize PaperSize
	translate func(string) string // UTF-8 -> cp1252 for the embedded core fonts
}

// Ensure *Page implements Canvas
var _ Canvas = (*Page)(nil)

// NewPage creates a single page of the given paper size with both core faces
// registered. Any setup failure here is fatal for the whole render
func NewPage(size PaperSize) (*Page, error) {
	pdf := fpdf.New("P", "pt", size.Name, "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0) // single-page contract. no pagination
	pdf.AddPage()
	// Register both faces up front so a missing core font fails the render here
	pdf.SetFont(fontFamily, FontBold.Style(), DefaultTextSize)
	pdf.SetFont(fontFamily, FontRegular.Style(), DefaultTextSize)
	if pdf.Err() {
		return nil, fmt.Errorf("page setup: %w", pdf.Error())
	}
	return &Page{
		pdf:       pdf,
		paperSize: size,
		translate: pdf.UnicodeTranslatorFromDescriptor(""), // "" = cp1252
	}, nil
}

func (p *Page) PaperSize() PaperSize { return p.paperSize }

func (p *Page) Orientation() string { return "P" }

func (p *Page) Size() (float64, float64) {
	return p.pdf.GetPageSize()
}

// Text places a single-line text run with its baseline at y.
// A failure is returned to the caller and cleared from the writer so the
// rest of the page still renders
func (p *Page) Text(x float64, y float64, s string, opts TextOpts) error {
	size := opts.Size
	if size == 0 {
		size = DefaultTextSize
	}
	p.pdf.SetFont(fontFamily, opts.Face.Style(), size)
	p.pdf.SetTextColor(opts.Color.R, opts.Color.G, opts.Color.B)
	enc := p.translate(s)
	switch opts.Align {
	case AlignRight:
		x = x + opts.SlotWidth - p.pdf.GetStringWidth(enc)
	case AlignCenter:
		x = x + (opts.SlotWidth-p.pdf.GetStringWidth(enc))/2
	}
	p.pdf.Text(x, y, enc)
	if p.pdf.Err() {
		err := p.pdf.Error()
		p.pdf.ClearError() // keep the writer usable for the remaining runs
		return err
	}
	return nil
}

func (p *Page) Line(x1 float64, y1 float64, x2 float64, y2 float64, opts LineOpts) {
	width := opts.Width
	if width == 0 {
		width = 1
	}
	p.pdf.SetLineWidth(width)
	p.pdf.SetDrawColor(opts.Color.R, opts.Color.G, opts.Color.B)
	p.pdf.Line(x1, y1, x2, y2)
}

func (p *Page) Rect(x float64, y float64, w float64, h float64, opts RectOpts) {
	style := ""
	if opts.Fill != nil {
		p.pdf.SetFillColor(opts.Fill.R, opts.Fill.G, opts.Fill.B)
		style += "F"
	}
	if opts.Stroke != nil {
		strokeWidth := opts.StrokeWidth
		if strokeWidth == 0 {
			strokeWidth = 1
		}
		p.pdf.SetLineWidth(strokeWidth)
		p.pdf.SetDrawColor(opts.Stroke.R, opts.Stroke.G, opts.Stroke.B)
		style += "D"
	}
	if style == "" {
		return // nothing to paint
	}
	p.pdf.Rect(x, y, w, h, style)
}

// TextWidth measures the rendered width of s in pt. Deterministic: depends
// only on the embedded core font width tables
func (p *Page) TextWidth(s string, face Font, size float64) float64 {
	if size == 0 {
		size = DefaultTextSize
	}
	p.pdf.SetFont(fontFamily, face.Style(), size)
	return p.pdf.GetStringWidth(p.translate(s))
}

// WriteTo serializes the finished page into w
func (p *Page) WriteTo(w io.Writer) (int64, error) {
	cw := rw.NewCountWriter(w)
	if err := p.pdf.Output(cw); err != nil {
		return cw.BytesWritten(), err
	}
	return cw.BytesWritten(), nil
}

func (p *Page) WriteToFile(filepath string) error {
	f, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	_, err = p.WriteTo(f)
	return err
}

func (p *Page) ProduceBytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := p.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
