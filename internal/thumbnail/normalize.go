package thumbnail

import (
	"image"

	"github.com/disintegration/imaging"
)

// Normalize resizes img to exactly width x height by direct scaling.
// Aspect ratio is deliberately not preserved: thumbnails always fill the
// same box so grid layouts stay uniform. An image already at the target
// size is returned unchanged, which makes Normalize idempotent.
func Normalize(img image.Image, width, height int) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() == width && bounds.Dy() == height {
		return img
	}
	return imaging.Resize(img, width, height, imaging.Lanczos)
}
