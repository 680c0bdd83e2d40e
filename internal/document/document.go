package document

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"github.com/disintegration/imaging"
)

// BackgroundLayer is the name given to the single layer of an opened file.
const BackgroundLayer = "Background"

// Layer is one full-size raster layer of a document.
type Layer struct {
	Name  string
	Image *image.NRGBA
}

// Document is a layered image backed by a file on disk.
type Document struct {
	Path   string
	Width  int
	Height int
	Layers []Layer
}

// Open decodes the image at path into a single-layer document. Any format
// supported by github.com/disintegration/imaging can be opened.
func Open(path string) (*Document, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	return FromImage(path, img), nil
}

// FromImage wraps img as a single-layer document. The image is copied.
func FromImage(path string, img image.Image) *Document {
	bg := imaging.Clone(img)
	b := bg.Bounds()
	return &Document{
		Path:   path,
		Width:  b.Dx(),
		Height: b.Dy(),
		Layers: []Layer{{Name: BackgroundLayer, Image: bg}},
	}
}

// Flatten composites all layers into a new image.
func (d *Document) Flatten() *image.NRGBA {
	out := imaging.New(d.Width, d.Height, color.Transparent)
	for i := len(d.Layers) - 1; i >= 0; i-- {
		out = imaging.Overlay(out, d.Layers[i].Image, image.Pt(0, 0), 1.0)
	}
	return out
}

// Save flattens the document and writes it to path. The output format is
// chosen from the file extension.
func (d *Document) Save(path string) error {
	if err := imaging.Save(d.Flatten(), path); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}

// AddLayer inserts img above all existing layers and returns the new layer.
//
// The layer is always new. If name is already taken a numeric suffix is
// appended ("Pixels 2", "Pixels 3", ...).
func (d *Document) AddLayer(name string, img *image.NRGBA) (*Layer, error) {
	if b := img.Bounds(); b.Dx() != d.Width || b.Dy() != d.Height {
		return nil, fmt.Errorf("%w: layer is %dx%d, document is %dx%d",
			ErrGeometryMismatch, b.Dx(), b.Dy(), d.Width, d.Height)
	}

	d.Layers = append([]Layer{{Name: d.uniqueName(name), Image: img}}, d.Layers...)
	return &d.Layers[0], nil
}

// Layer returns the topmost layer called name.
func (d *Document) Layer(name string) (*Layer, bool) {
	for i := range d.Layers {
		if d.Layers[i].Name == name {
			return &d.Layers[i], true
		}
	}
	return nil, false
}

// LayerNames lists layer names from top to bottom.
func (d *Document) LayerNames() []string {
	names := make([]string, len(d.Layers))
	for i, l := range d.Layers {
		names[i] = l.Name
	}
	return names
}

func (d *Document) uniqueName(name string) string {
	if _, taken := d.Layer(name); !taken {
		return name
	}
	for n := 2; ; n++ {
		candidate := name + " " + strconv.Itoa(n)
		if _, taken := d.Layer(candidate); !taken {
			return candidate
		}
	}
}
