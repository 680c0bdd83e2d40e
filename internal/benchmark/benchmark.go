// Package benchmark times pixel access through the color sampler against the
// raw buffer round trip.
package benchmark

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/ironsheep/raw-pixels-mcp/internal/document"
	"github.com/ironsheep/raw-pixels-mcp/internal/rawpixels"
	"github.com/ironsheep/raw-pixels-mcp/internal/sampler"
)

// chunk is how many pixels are processed between context checks.
const chunk = 1 << 16

// Timing is the outcome of one timed loop.
type Timing struct {
	Pixels          int     `json:"pixels"`
	Seconds         float64 `json:"seconds"`
	PixelsPerSecond float64 `json:"pixels_per_second"`
	Checksum        uint64  `json:"checksum"` // sum of all channel values read
}

func newTiming(pixels int, elapsed time.Duration, sum uint64) Timing {
	t := Timing{Pixels: pixels, Seconds: elapsed.Seconds(), Checksum: sum}
	if elapsed > 0 {
		t.PixelsPerSecond = float64(pixels) / elapsed.Seconds()
	}
	return t
}

// Options tunes Run.
type Options struct {
	// PreviewCount is how many leading pixels are read back before editing.
	PreviewCount int

	// MarkCount is how many pixels are painted at odd linear indices.
	MarkCount int

	// SkipImport leaves the document untouched.
	SkipImport bool
}

// DefaultOptions matches the stock raw pixel scenario.
func DefaultOptions() Options {
	return Options{PreviewCount: 100, MarkCount: 10}
}

// Report is the result of Run.
type Report struct {
	Width           int               `json:"width"`
	Height          int               `json:"height"`
	SnapshotSeconds float64           `json:"snapshot_seconds"`
	Preview         []rawpixels.Pixel `json:"preview"`
	EditedPixel     rawpixels.Pixel   `json:"edited_pixel_0"`
	Read            Timing            `json:"read"`
	Write           Timing            `json:"write"`
	ImportSeconds   float64           `json:"import_seconds,omitempty"`
	Layer           string            `json:"layer,omitempty"`
}

// Run snapshots doc through host, reads a preview, edits pixel 0, times a
// full read of every pixel, paints MarkCount pixels and finally imports the
// buffer back as a new layer.
func Run(ctx context.Context, doc *document.Document, host document.Host, opts Options) (*Report, error) {
	start := time.Now()
	buf, err := host.Snapshot(doc)
	if err != nil {
		return nil, err
	}
	rep := &Report{
		Width:           buf.Width(),
		Height:          buf.Height(),
		SnapshotSeconds: time.Since(start).Seconds(),
	}

	n := max(0, min(opts.PreviewCount, buf.Len()))
	rep.Preview = make([]rawpixels.Pixel, n)
	for i := range rep.Preview {
		rep.Preview[i] = buf.GetIndex(i)
	}

	buf.SetIndex(0, rawpixels.Pixel{R: 1, G: 200, B: 3})
	rep.EditedPixel = buf.GetIndex(0)

	if rep.Read, err = readAll(ctx, buf); err != nil {
		return nil, err
	}

	if rep.Write, err = paintMarks(buf, opts.MarkCount); err != nil {
		return nil, err
	}

	if opts.SkipImport {
		return rep, nil
	}
	start = time.Now()
	layer, err := host.ImportLayer(doc, buf)
	if err != nil {
		return nil, err
	}
	rep.ImportSeconds = time.Since(start).Seconds()
	rep.Layer = layer.Name
	return rep, nil
}

func readAll(ctx context.Context, buf *rawpixels.Buffer) (Timing, error) {
	var sum uint64
	total := buf.Len()
	start := time.Now()
	for lo := 0; lo < total; lo += chunk {
		if err := ctx.Err(); err != nil {
			return Timing{}, err
		}
		hi := min(lo+chunk, total)
		for i := lo; i < hi; i++ {
			p := buf.GetIndex(i)
			sum += uint64(p.R) + uint64(p.G) + uint64(p.B)
		}
	}
	return newTiming(total, time.Since(start), sum), nil
}

// paintMarks sets pixel 1+2i to (255, 20i, 10i) for i < count.
func paintMarks(buf *rawpixels.Buffer, count int) (Timing, error) {
	var sum uint64
	start := time.Now()
	for i := 0; i < count; i++ {
		p := rawpixels.Pixel{R: 255, G: uint8(i * 20), B: uint8(i * 10)}
		if err := buf.SetIndexChecked(1+i*2, p); err != nil {
			return Timing{}, fmt.Errorf("failed to paint mark %d: %w", i, err)
		}
		sum += uint64(p.R) + uint64(p.G) + uint64(p.B)
	}
	return newTiming(count, time.Since(start), sum), nil
}

// RunSampler reads n pixels through a color sampler, walking row-major from
// the top-left corner. n is capped at the pixel count of img.
func RunSampler(ctx context.Context, img image.Image, n int) (Timing, error) {
	b := img.Bounds()
	w := b.Dx()
	n = min(n, w*b.Dy())

	s := sampler.New(img)
	var sum uint64
	start := time.Now()
	for i := 0; i < n; i++ {
		if i%chunk == 0 {
			if err := ctx.Err(); err != nil {
				return Timing{}, err
			}
		}
		p, err := s.Get(b.Min.X+i%w, b.Min.Y+i/w)
		if err != nil {
			return Timing{}, err
		}
		sum += uint64(p.R) + uint64(p.G) + uint64(p.B)
	}
	return newTiming(n, time.Since(start), sum), nil
}
