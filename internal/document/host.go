package document

import (
	"errors"
	"fmt"
	"os"

	"github.com/ironsheep/raw-pixels-mcp/internal/rawpixels"
)

// ErrGeometryMismatch is returned when a buffer or layer does not match the
// document it is imported into.
var ErrGeometryMismatch = errors.New("geometry does not match document")

// DefaultLayerName is the name given to imported pixel layers.
const DefaultLayerName = "Pixels"

// Host moves pixels between documents and raw buffers.
type Host interface {
	// Snapshot returns the visible (flattened) pixels of doc.
	Snapshot(doc *Document) (*rawpixels.Buffer, error)

	// ImportLayer adds buf to doc as a new top layer.
	ImportLayer(doc *Document, buf *rawpixels.Buffer) (*Layer, error)
}

// RawFileHost implements Host by round-tripping pixels through raw bitmap
// files in TempDir. Every temporary file is removed before a call returns.
type RawFileHost struct {
	// TempDir holds the intermediate .raw files. Empty means os.TempDir().
	TempDir string

	// LayerName names imported layers. Empty means DefaultLayerName.
	LayerName string
}

var _ Host = (*RawFileHost)(nil)

// NewRawFileHost returns a host writing temporary files to tempDir.
func NewRawFileHost(tempDir, layerName string) *RawFileHost {
	return &RawFileHost{TempDir: tempDir, LayerName: layerName}
}

// Snapshot flattens doc, saves it as a raw bitmap and reads the bytes back.
func (h *RawFileHost) Snapshot(doc *Document) (*rawpixels.Buffer, error) {
	flat, err := rawpixels.FromImage(doc.Flatten())
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot %s: %w", doc.Path, err)
	}
	return h.roundTrip(flat)
}

// ImportLayer saves buf as a raw bitmap, re-opens it with the buffer's
// geometry and inserts the result above every existing layer.
func (h *RawFileHost) ImportLayer(doc *Document, buf *rawpixels.Buffer) (*Layer, error) {
	if buf.Width() != doc.Width || buf.Height() != doc.Height {
		return nil, fmt.Errorf("%w: buffer is %dx%d, document is %dx%d",
			ErrGeometryMismatch, buf.Width(), buf.Height(), doc.Width, doc.Height)
	}

	opened, err := h.roundTrip(buf)
	if err != nil {
		return nil, err
	}

	name := h.LayerName
	if name == "" {
		name = DefaultLayerName
	}
	return doc.AddLayer(name, opened.ToNRGBA())
}

func (h *RawFileHost) roundTrip(buf *rawpixels.Buffer) (*rawpixels.Buffer, error) {
	path, err := rawpixels.SaveRawTemp(h.TempDir, buf)
	if err != nil {
		return nil, err
	}
	defer os.Remove(path)

	return rawpixels.LoadRawFile(path, buf.Format())
}
