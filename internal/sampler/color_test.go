package sampler

import (
	"image"
	"image/color"
	"testing"

	"github.com/ironsheep/raw-pixels-mcp/internal/rawpixels"
)

func TestNewColorResult(t *testing.T) {
	tests := []struct {
		name string
		p    rawpixels.Pixel
		hex  string
		hsl  HSLColor
	}{
		{"red", rawpixels.Pixel{R: 255}, "#FF0000", HSLColor{0, 100, 50}},
		{"green", rawpixels.Pixel{G: 255}, "#00FF00", HSLColor{120, 100, 50}},
		{"blue", rawpixels.Pixel{B: 255}, "#0000FF", HSLColor{240, 100, 50}},
		{"white", rawpixels.Pixel{R: 255, G: 255, B: 255}, "#FFFFFF", HSLColor{0, 0, 100}},
		{"black", rawpixels.Pixel{}, "#000000", HSLColor{0, 0, 0}},
		{"script pixel", rawpixels.Pixel{R: 255, G: 40, B: 20}, "#FF2814", HSLColor{5, 100, 54}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewColorResult(tt.p)
			if got.Hex != tt.hex {
				t.Errorf("Hex: got %s, want %s", got.Hex, tt.hex)
			}
			if got.RGB != tt.p {
				t.Errorf("RGB: got %v, want %v", got.RGB, tt.p)
			}
			if got.HSL != tt.hsl {
				t.Errorf("HSL: got %+v, want %+v", got.HSL, tt.hsl)
			}
		})
	}
}

func TestSampleColor(t *testing.T) {
	img := createQuadrantImage(100, 100)

	res, err := SampleColor(img, 75, 75)
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}
	if res.Hex != "#FFFFFF" {
		t.Errorf("Hex: got %s, want #FFFFFF", res.Hex)
	}

	if _, err := SampleColor(img, 100, 0); err == nil {
		t.Error("SampleColor should fail outside the image")
	}
}

func TestSampleColor_Translucent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 100, B: 0, A: 0})

	res, err := SampleColor(img, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if res.Hex != "#000000" {
		t.Errorf("fully transparent pixel should flatten to black, got %s", res.Hex)
	}
}

func TestSampleColorsMulti(t *testing.T) {
	img := createQuadrantImage(100, 100)
	points := []LabeledPoint{
		{X: 10, Y: 10, Label: "red"},
		{X: 90, Y: 10, Label: "green"},
		{X: 10, Y: 90},
	}

	res, err := SampleColorsMulti(img, points)
	if err != nil {
		t.Fatalf("SampleColorsMulti failed: %v", err)
	}
	if len(res.Samples) != 3 {
		t.Fatalf("samples: got %d, want 3", len(res.Samples))
	}

	want := []string{"#FF0000", "#00FF00", "#0000FF"}
	for i, s := range res.Samples {
		if s.Color.Hex != want[i] {
			t.Errorf("sample %d: got %s, want %s", i, s.Color.Hex, want[i])
		}
		if s.Label != points[i].Label || s.X != points[i].X || s.Y != points[i].Y {
			t.Errorf("sample %d does not echo its point: %+v", i, s)
		}
	}
}

func TestSampleColorsMulti_OutOfBounds(t *testing.T) {
	img := createQuadrantImage(10, 10)
	_, err := SampleColorsMulti(img, []LabeledPoint{{X: 1, Y: 1}, {X: 50, Y: 1}})
	if err == nil {
		t.Error("SampleColorsMulti should fail when any point is out of bounds")
	}
}
