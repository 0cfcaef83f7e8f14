package thumbnail

// ContentType is the encoding of every generated thumbnail.
const ContentType = "image/png"

// Spec is the immutable, global thumbnail configuration.
type Spec struct {
	// Width and Height are the exact output dimensions in pixels.
	Width  int
	Height int
	// PDFRenderDPI is the rasterization resolution for PDF pages. A quality
	// knob, not a correctness invariant.
	PDFRenderDPI float64
	// TextMaxLines caps how many leading lines of a text document are drawn.
	TextMaxLines int
	// FontSize is the point size used when rendering text onto a canvas.
	FontSize float64
}

// DefaultSpec returns the default thumbnail configuration.
func DefaultSpec() Spec {
	return Spec{
		Width:        200,
		Height:       200,
		PDFRenderDPI: 300,
		TextMaxLines: 30,
		FontSize:     10,
	}
}

func (s Spec) withDefaults() Spec {
	def := DefaultSpec()
	if s.Width <= 0 {
		s.Width = def.Width
	}
	if s.Height <= 0 {
		s.Height = def.Height
	}
	if s.PDFRenderDPI <= 0 {
		s.PDFRenderDPI = def.PDFRenderDPI
	}
	if s.TextMaxLines <= 0 {
		s.TextMaxLines = def.TextMaxLines
	}
	if s.FontSize <= 0 {
		s.FontSize = def.FontSize
	}
	return s
}
