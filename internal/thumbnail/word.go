package thumbnail

import (
	"fmt"
	"image"
	"strings"

	"docnest-backend/internal/extract"
)

// wordRasterizer renders the leading content of a DOCX document onto a
// canvas of the target size. There is no pure-Go OOXML layout engine, so
// the first-view text block stands in for the first rendered page; the
// decode path is shared with the extract package.
type wordRasterizer struct {
	spec Spec
}

func (r wordRasterizer) rasterize(data []byte) (image.Image, error) {
	text, err := extract.DOCXText(data)
	if err != nil {
		return nil, fmt.Errorf("%w: open document: %v", ErrDecode, err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: document has no content", ErrDecode)
	}

	lines := strings.Split(text, "\n")
	if len(lines) > r.spec.TextMaxLines {
		lines = lines[:r.spec.TextMaxLines]
	}

	return drawTextBlock(r.spec.Width, r.spec.Height, r.spec.FontSize, strings.Join(lines, "\n"))
}
