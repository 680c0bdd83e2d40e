// Package sampler reads pixel colors one at a time through the generic
// image.Image interface, the way a host application's color sampler tool
// does. It is the slow baseline the raw buffer path is measured against.
package sampler

import (
	"fmt"
	"image"

	"github.com/ironsheep/raw-pixels-mcp/internal/rawpixels"
)

// Sampler is a single movable probe over an image.
type Sampler struct {
	img image.Image
	pos image.Point
}

// New places a sampler at the top-left pixel of img.
func New(img image.Image) *Sampler {
	return &Sampler{img: img, pos: img.Bounds().Min}
}

// Move repositions the sampler. The position is unchanged on error.
func (s *Sampler) Move(x, y int) error {
	p := image.Pt(x, y)
	if !p.In(s.img.Bounds()) {
		return fmt.Errorf("%w: sampler position (%d,%d) outside image bounds %v",
			rawpixels.ErrOutOfRange, x, y, s.img.Bounds())
	}
	s.pos = p
	return nil
}

// Position returns where the sampler currently sits.
func (s *Sampler) Position() image.Point { return s.pos }

// Color reads the pixel under the sampler.
func (s *Sampler) Color() rawpixels.Pixel {
	return rawpixels.RGBModel.Convert(s.img.At(s.pos.X, s.pos.Y)).(rawpixels.Pixel)
}

// Get moves the sampler to (x, y) and reads the pixel there.
func (s *Sampler) Get(x, y int) (rawpixels.Pixel, error) {
	if err := s.Move(x, y); err != nil {
		return rawpixels.Pixel{}, err
	}
	return s.Color(), nil
}
