// Package thumbnail turns heterogeneous uploaded documents (spreadsheet,
// word document, PDF, plain text, raster image) into fixed-size PNG
// thumbnails. The dispatcher selects one rasterizer adapter per format tag
// and normalizes the adapter's output to the configured dimensions.
package thumbnail

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
)

// rasterizer converts one decoded document into a single raster image.
// Implementations construct and release their own decoder per call and hold
// no state, so a Generator is safe for concurrent use.
type rasterizer interface {
	rasterize(data []byte) (image.Image, error)
}

// Generator dispatches source documents to format adapters and normalizes
// the results. It holds no state across calls.
type Generator struct {
	spec     Spec
	adapters map[Format]rasterizer
}

// New constructs a Generator. Zero Spec fields fall back to defaults.
func New(spec Spec) *Generator {
	spec = spec.withDefaults()
	return &Generator{
		spec: spec,
		adapters: map[Format]rasterizer{
			FormatSpreadsheet: spreadsheetRasterizer{fontSize: spec.FontSize},
			FormatWord:        wordRasterizer{spec: spec},
			FormatPDF:         pdfRasterizer{dpi: spec.PDFRenderDPI},
			FormatText:        textRasterizer{spec: spec},
			FormatImage:       imageRasterizer{},
		},
	}
}

// Spec returns the generator's configuration.
func (g *Generator) Spec() Spec {
	return g.spec
}

// Generate produces a thumbnail for the named document. The format is
// derived from the file name's extension before any of the stream is read;
// an unsupported extension fails with ErrUnsupportedFormat and no I/O.
// The stream is consumed exactly once and never retained past return.
func (g *Generator) Generate(name string, r io.Reader) (image.Image, error) {
	format, err := FormatForName(name)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: read source: %v", ErrIO, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrDecode)
	}

	img, err := g.adapters[format].rasterize(data)
	if err != nil {
		return nil, err
	}

	return Normalize(img, g.spec.Width, g.spec.Height), nil
}

// GeneratePNG generates a thumbnail and encodes it as PNG.
func (g *Generator) GeneratePNG(name string, r io.Reader) ([]byte, error) {
	img, err := g.Generate(name, r)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("%w: encode png: %v", ErrRender, err)
	}
	return buf.Bytes(), nil
}
