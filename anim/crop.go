package anim

import (
	"fmt"
	"image"
)

// Bitmap is an already-decoded image addressable by pixel rectangle.
// *ebiten.Image satisfies it, as do the sub-image-capable stdlib image
// types such as *image.RGBA and *image.NRGBA.
type Bitmap interface {
	Bounds() image.Rectangle
	SubImage(r image.Rectangle) image.Image
}

// Crop extracts the frame-sized sub-region of src at the given grid
// coordinate. The rectangle is offset by src's bounds minimum so that
// sub-images crop correctly. Returns ErrCropOutOfBounds when the
// rectangle is not fully contained in src.
func Crop(src Bitmap, origin Frame, frameW, frameH int) (image.Image, error) {
	if src == nil {
		return nil, fmt.Errorf("anim: crop from nil bitmap")
	}
	if frameW <= 0 || frameH <= 0 {
		return nil, ErrInvalidFrameSize
	}
	b := src.Bounds()
	min := b.Min.Add(image.Pt(origin.Col*frameW, origin.Row*frameH))
	r := image.Rectangle{Min: min, Max: min.Add(image.Pt(frameW, frameH))}
	if !r.In(b) {
		return nil, fmt.Errorf("%w: frame %v needs %v, sheet is %v", ErrCropOutOfBounds, origin, r, b)
	}
	return src.SubImage(r), nil
}
