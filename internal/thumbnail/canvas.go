package thumbnail

import (
	"fmt"
	"image"
	"strings"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	canvasMargin    = 10.0
	lineSpacing     = 1.4
	gridCellWidth   = 96
	gridCellHeight  = 28
	gridCellPadding = 4.0
)

var (
	fontOnce   sync.Once
	fontParsed *truetype.Font
	fontErr    error
)

func textFace(size float64) (font.Face, error) {
	fontOnce.Do(func() {
		fontParsed, fontErr = truetype.Parse(goregular.TTF)
	})
	if fontErr != nil {
		return nil, fontErr
	}
	return truetype.NewFace(fontParsed, &truetype.Options{Size: size}), nil
}

// drawTextBlock renders text line by line onto a white canvas of the given
// size. Lines past the bottom edge are clipped, not wrapped.
func drawTextBlock(width, height int, fontSize float64, text string) (image.Image, error) {
	face, err := textFace(fontSize)
	if err != nil {
		return nil, fmt.Errorf("%w: load font: %v", ErrRender, err)
	}

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetFontFace(face)
	dc.SetRGB(0, 0, 0)

	lineHeight := fontSize * lineSpacing
	y := canvasMargin + fontSize
	for _, line := range strings.Split(text, "\n") {
		if y > float64(height)+lineHeight {
			break
		}
		dc.DrawString(line, canvasMargin, y)
		y += lineHeight
	}
	return dc.Image(), nil
}

// drawCellGrid renders a rectangular grid of cell values with light borders,
// one canvas cell per spreadsheet cell. The canvas grows with the grid; the
// normalizer scales it down to the thumbnail box afterwards.
func drawCellGrid(grid [][]string, fontSize float64) (image.Image, error) {
	rows := len(grid)
	cols := 0
	for _, row := range grid {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("%w: empty cell grid", ErrDecode)
	}

	face, err := textFace(fontSize)
	if err != nil {
		return nil, fmt.Errorf("%w: load font: %v", ErrRender, err)
	}

	width := cols * gridCellWidth
	height := rows * gridCellHeight
	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetFontFace(face)

	dc.SetRGB(0.8, 0.8, 0.8)
	for i := 0; i <= rows; i++ {
		y := float64(i * gridCellHeight)
		dc.DrawLine(0, y, float64(width), y)
	}
	for j := 0; j <= cols; j++ {
		x := float64(j * gridCellWidth)
		dc.DrawLine(x, 0, x, float64(height))
	}
	dc.Stroke()

	dc.SetRGB(0, 0, 0)
	for i, row := range grid {
		for j, val := range row {
			if val == "" {
				continue
			}
			x := float64(j*gridCellWidth) + gridCellPadding
			y := float64(i*gridCellHeight) + float64(gridCellHeight)/2
			dc.DrawStringAnchored(val, x, y, 0, 0.35)
		}
	}
	return dc.Image(), nil
}
