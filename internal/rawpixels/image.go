package rawpixels

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/anthonynsimon/bild/clone"
)

var (
	_ image.Image = (*Buffer)(nil)
	_ draw.Image  = (*Buffer)(nil)
)

// ColorModel implements image.Image.
func (b *Buffer) ColorModel() color.Model { return RGBModel }

// Bounds implements image.Image. The origin is always (0, 0).
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// At implements image.Image. Points outside the buffer yield transparent black.
func (b *Buffer) At(x, y int) color.Color {
	if !b.InBounds(x, y) {
		return color.RGBA{}
	}
	return b.Get(x, y)
}

// Set implements draw.Image. Points outside the buffer are ignored.
func (b *Buffer) Set(x, y int, c color.Color) {
	if !b.InBounds(x, y) {
		return
	}
	b.SetPixel(x, y, RGBModel.Convert(c).(Pixel))
}

// FromImage snapshots img into a new buffer. The result always starts at
// (0, 0) regardless of img.Bounds().Min. Alpha is flattened over black.
func FromImage(img image.Image) (*Buffer, error) {
	rgba := clone.AsRGBA(img)
	r := rgba.Bounds()
	b, err := New(r.Dx(), r.Dy())
	if err != nil {
		return nil, err
	}

	rowBytes := b.width * Channels
	for y := 0; y < b.height; y++ {
		src := rgba.Pix[rgba.PixOffset(r.Min.X, r.Min.Y+y):]
		dst := b.pix[y*rowBytes : (y+1)*rowBytes]
		for x, d := 0, 0; x < b.width; x, d = x+1, d+Channels {
			s := x * 4
			// RGBA.Pix is premultiplied, so these bytes are already composited over black.
			dst[d], dst[d+1], dst[d+2] = src[s], src[s+1], src[s+2]
		}
	}
	return b, nil
}

// ToNRGBA converts the buffer to a fully opaque NRGBA image.
func (b *Buffer) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(b.Bounds())
	for i, d := 0, 0; i < len(b.pix); i, d = i+Channels, d+4 {
		img.Pix[d] = b.pix[i]
		img.Pix[d+1] = b.pix[i+1]
		img.Pix[d+2] = b.pix[i+2]
		img.Pix[d+3] = 0xff
	}
	return img
}
