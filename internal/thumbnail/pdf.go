package thumbnail

import (
	"fmt"
	"image"

	"github.com/gen2brain/go-fitz"
)

// pdfPage is the page rasterized for the thumbnail, one-based. Fixed policy:
// always the first page.
const pdfPage = 1

// pdfRasterizer renders one PDF page at the configured DPI via MuPDF.
// Library: github.com/gen2brain/go-fitz. A fresh document handle is opened
// per call and closed on every exit path.
type pdfRasterizer struct {
	dpi float64
}

func (r pdfRasterizer) rasterize(data []byte) (image.Image, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("%w: open pdf: %v", ErrDecode, err)
	}
	defer doc.Close()

	if doc.NumPage() < pdfPage {
		return nil, fmt.Errorf("%w: pdf has %d pages, want page %d", ErrDecode, doc.NumPage(), pdfPage)
	}

	img, err := doc.ImageDPI(pdfPage-1, r.dpi)
	if err != nil {
		return nil, fmt.Errorf("%w: rasterize pdf page %d: %v", ErrRender, pdfPage, err)
	}
	return img, nil
}
