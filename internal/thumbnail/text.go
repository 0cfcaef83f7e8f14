package thumbnail

import (
	"bufio"
	"bytes"
	"fmt"
	"image"
	"strings"
)

// Long lines are clipped by the canvas, but the scanner still has to
// tokenize them.
const maxLineBytes = 1 << 20

// textRasterizer draws the first lines of a plain-text document onto a
// canvas of the target size. A preview snippet, not a faithful text
// rendering: no wrapping, no overflow handling beyond canvas clipping.
type textRasterizer struct {
	spec Spec
}

func (r textRasterizer) rasterize(data []byte) (image.Image, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	// At most TextMaxLines lines; ending sooner is not an error.
	var lines []string
	for len(lines) < r.spec.TextMaxLines && scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: scan text: %v", ErrDecode, err)
	}

	return drawTextBlock(r.spec.Width, r.spec.Height, r.spec.FontSize, strings.Join(lines, "\n"))
}
