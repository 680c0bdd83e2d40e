package rawpixels

import (
	"fmt"
	"image/color"
)

// Pixel is a single 8-bit RGB sample. There is no alpha channel.
type Pixel struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// RGBA implements color.Color. Pixels are always fully opaque.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	r = uint32(p.R)
	r |= r << 8
	g = uint32(p.G)
	g |= g << 8
	b = uint32(p.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Slice returns the pixel as a three element slice in R, G, B order.
func (p Pixel) Slice() []uint8 {
	return []uint8{p.R, p.G, p.B}
}

func (p Pixel) String() string {
	return fmt.Sprintf("%d,%d,%d", p.R, p.G, p.B)
}

// RGBModel converts any color to a Pixel. Translucent colors are composited
// over black, which is what taking the high byte of a premultiplied channel
// amounts to.
var RGBModel = color.ModelFunc(rgbModel)

func rgbModel(c color.Color) color.Color {
	if p, ok := c.(Pixel); ok {
		return p
	}
	r, g, b, _ := c.RGBA()
	return Pixel{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}
