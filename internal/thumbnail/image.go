package thumbnail

import (
	"bytes"
	"fmt"
	"image"

	// Decoders for the supported raster inputs.
	_ "image/jpeg"
	_ "image/png"
)

// imageRasterizer decodes an already-raster image (png/jpeg). Content passes
// through unchanged; only the normalizer resizes it.
type imageRasterizer struct{}

func (imageRasterizer) rasterize(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: decode image: %v", ErrDecode, err)
	}
	return img, nil
}
