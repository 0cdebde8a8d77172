package renderer

import (
	"image"

	"github.com/softsphere/raytracer/pkg/core"
)

// PixelSink receives finished pixels in raster coordinates (origin at the
// top-left corner, y down). Implementations own bounds checking and channel
// clamping; writes outside the raster are silently dropped, never an error.
type PixelSink interface {
	PutPixel(x, y int, c core.Color)
}

// ImageSink is a PixelSink backed by an in-memory RGBA image.
type ImageSink struct {
	Img *image.RGBA
}

// NewImageSink creates an image sink with the given raster dimensions
func NewImageSink(width, height int) *ImageSink {
	return &ImageSink{Img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// PutPixel writes one pixel, clamping channels to byte range and forcing
// opaque alpha. Out-of-bounds coordinates are ignored.
func (s *ImageSink) PutPixel(x, y int, c core.Color) {
	if !(image.Point{X: x, Y: y}.In(s.Img.Bounds())) {
		return
	}
	s.Img.SetRGBA(x, y, c.RGBA())
}
