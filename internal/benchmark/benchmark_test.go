package benchmark

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/ironsheep/raw-pixels-mcp/internal/document"
	"github.com/ironsheep/raw-pixels-mcp/internal/rawpixels"
)

func blackDocument(w, h int) *document.Document {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
	return document.FromImage("mem.png", img)
}

func TestRun(t *testing.T) {
	doc := blackDocument(10, 10)
	host := document.NewRawFileHost(t.TempDir(), "")

	rep, err := Run(context.Background(), doc, host, DefaultOptions())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if rep.Width != 10 || rep.Height != 10 {
		t.Errorf("dimensions: got %dx%d", rep.Width, rep.Height)
	}
	if len(rep.Preview) != 100 {
		t.Errorf("preview length: got %d, want 100", len(rep.Preview))
	}
	if rep.EditedPixel != (rawpixels.Pixel{R: 1, G: 200, B: 3}) {
		t.Errorf("edited pixel: got %v", rep.EditedPixel)
	}
	if rep.Read.Pixels != 100 {
		t.Errorf("read pixels: got %d, want 100", rep.Read.Pixels)
	}
	// Only pixel 0 is non-black when the full read runs.
	if rep.Read.Checksum != 1+200+3 {
		t.Errorf("read checksum: got %d", rep.Read.Checksum)
	}
	if rep.Write.Pixels != 10 {
		t.Errorf("write pixels: got %d", rep.Write.Pixels)
	}
	if rep.Layer != document.DefaultLayerName {
		t.Errorf("layer: got %q", rep.Layer)
	}

	flat := doc.Flatten()
	checks := []struct {
		i    int
		want color.NRGBA
	}{
		{0, color.NRGBA{1, 200, 3, 255}},
		{1, color.NRGBA{255, 0, 0, 255}},
		{2, color.NRGBA{0, 0, 0, 255}},
		{3, color.NRGBA{255, 20, 10, 255}},
		{19, color.NRGBA{255, 180, 90, 255}},
		{20, color.NRGBA{0, 0, 0, 255}},
	}
	for _, c := range checks {
		if got := flat.NRGBAAt(c.i%10, c.i/10); got != c.want {
			t.Errorf("pixel %d: got %v, want %v", c.i, got, c.want)
		}
	}
}

func TestRun_SkipImport(t *testing.T) {
	doc := blackDocument(8, 8)
	opts := DefaultOptions()
	opts.SkipImport = true

	rep, err := Run(context.Background(), doc, document.NewRawFileHost(t.TempDir(), ""), opts)
	if err != nil {
		t.Fatal(err)
	}
	if rep.Layer != "" || len(doc.Layers) != 1 {
		t.Errorf("SkipImport still imported a layer: %v", doc.LayerNames())
	}
	if len(rep.Preview) != 64 {
		t.Errorf("preview should be capped at the pixel count, got %d", len(rep.Preview))
	}
}

func TestRun_TooSmallForMarks(t *testing.T) {
	_, err := Run(context.Background(), blackDocument(3, 3), document.NewRawFileHost(t.TempDir(), ""), DefaultOptions())
	if !errors.Is(err, rawpixels.ErrOutOfRange) {
		t.Errorf("got %v, want ErrOutOfRange", err)
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, blackDocument(10, 10), document.NewRawFileHost(t.TempDir(), ""), DefaultOptions())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}

func TestRunSampler(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.SetRGBA(3, 0, color.RGBA{1, 1, 1, 255})
	img.SetRGBA(0, 1, color.RGBA{2, 2, 2, 255})

	tm, err := RunSampler(context.Background(), img, 5)
	if err != nil {
		t.Fatalf("RunSampler failed: %v", err)
	}
	if tm.Pixels != 5 {
		t.Errorf("pixels: got %d, want 5", tm.Pixels)
	}
	// Pixel 3 of row 0 and pixel 0 of row 1 are visited.
	if tm.Checksum != 3+6 {
		t.Errorf("checksum: got %d, want 9", tm.Checksum)
	}

	tm, err = RunSampler(context.Background(), img, 1000)
	if err != nil {
		t.Fatal(err)
	}
	if tm.Pixels != 12 {
		t.Errorf("n should be capped at 12, got %d", tm.Pixels)
	}
}

func TestRunSampler_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := RunSampler(ctx, image.NewRGBA(image.Rect(0, 0, 2, 2)), 4)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}
