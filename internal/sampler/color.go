package sampler

import (
	"fmt"
	"image"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/raw-pixels-mcp/internal/rawpixels"
)

// HSLColor is a color in HSL space with integer components.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees
	S int `json:"s"` // Saturation: 0-100 percent
	L int `json:"l"` // Lightness: 0-100 percent
}

// ColorResult contains one sampled color in several representations.
type ColorResult struct {
	Hex string          `json:"hex"` // "#RRGGBB"
	RGB rawpixels.Pixel `json:"rgb"`
	HSL HSLColor        `json:"hsl"`
}

// NewColorResult describes p in hex, RGB and HSL form.
func NewColorResult(p rawpixels.Pixel) ColorResult {
	c := colorful.Color{
		R: float64(p.R) / 255.0,
		G: float64(p.G) / 255.0,
		B: float64(p.B) / 255.0,
	}
	h, s, l := c.Hsl()

	return ColorResult{
		Hex: strings.ToUpper(c.Hex()),
		RGB: p,
		HSL: HSLColor{
			H: int(math.Round(h)) % 360,
			S: int(math.Round(s * 100)),
			L: int(math.Round(l * 100)),
		},
	}
}

// SampleColor returns the color at (x, y) of img.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	p, err := New(img).Get(x, y)
	if err != nil {
		return nil, err
	}
	res := NewColorResult(p)
	return &res, nil
}

// LabeledPoint is a coordinate with an optional caller-supplied label.
type LabeledPoint struct {
	X     int
	Y     int
	Label string
}

// LabeledColorResult pairs a sampled color with where it was sampled.
type LabeledColorResult struct {
	Label string      `json:"label,omitempty"`
	X     int         `json:"x"`
	Y     int         `json:"y"`
	Color ColorResult `json:"color"`
}

// MultiColorResult holds samples in input order.
type MultiColorResult struct {
	Samples []LabeledColorResult `json:"samples"`
}

// SampleColorsMulti samples every point with one sampler. If any point is out
// of bounds no partial result is returned.
func SampleColorsMulti(img image.Image, points []LabeledPoint) (*MultiColorResult, error) {
	s := New(img)
	results := make([]LabeledColorResult, 0, len(points))

	for _, p := range points {
		px, err := s.Get(p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point (%d,%d): %w", p.X, p.Y, err)
		}
		results = append(results, LabeledColorResult{
			Label: p.Label,
			X:     p.X,
			Y:     p.Y,
			Color: NewColorResult(px),
		})
	}

	return &MultiColorResult{Samples: results}, nil
}
