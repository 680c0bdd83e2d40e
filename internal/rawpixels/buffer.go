package rawpixels

import "fmt"

// Channels is the number of bytes per pixel in a Buffer.
const Channels = 3

// Buffer is an owned, fixed-size RGB pixel buffer.
//
// The width and height never change after construction. The backing slice is
// always exactly width*height*Channels bytes long.
type Buffer struct {
	width  int
	height int
	pix    []byte
}

// New allocates a zero-filled (black) buffer of the given size.
func New(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrGeometry, width, height)
	}
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]byte, width*height*Channels),
	}, nil
}

// FromBytes wraps data as a buffer without copying it. The caller hands over
// ownership of data; later writes through the Buffer are visible in data.
func FromBytes(width, height int, data []byte) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrGeometry, width, height)
	}
	if want := width * height * Channels; len(data) != want {
		return nil, fmt.Errorf("%w: %dx%d needs %d bytes, got %d", ErrGeometry, width, height, want, len(data))
	}
	return &Buffer{width: width, height: height, pix: data}, nil
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int { return b.height }

// Len returns the number of pixels, width*height.
func (b *Buffer) Len() int { return b.width * b.height }

// Pix returns the backing byte slice. Mutating it mutates the buffer.
func (b *Buffer) Pix() []byte { return b.pix }

// Offset returns the byte offset of pixel (x, y). It does not check bounds.
func (b *Buffer) Offset(x, y int) int {
	return (y*b.width + x) * Channels
}

// IndexOffset returns the byte offset of the pixel at linear index i.
// It does not check bounds.
func (b *Buffer) IndexOffset(i int) int {
	return i * Channels
}

// LinearIndex converts (x, y) to a row-major linear index.
func (b *Buffer) LinearIndex(x, y int) int {
	return y*b.width + x
}

// Coord converts a linear index back to (x, y).
func (b *Buffer) Coord(i int) (x, y int) {
	y = i / b.width
	x = i - y*b.width
	return x, y
}

// Get returns the pixel at (x, y) without validating the coordinate.
func (b *Buffer) Get(x, y int) Pixel {
	return b.GetIndex(y*b.width + x)
}

// GetIndex returns the pixel at linear index i without validating it.
func (b *Buffer) GetIndex(i int) Pixel {
	o := i * Channels
	s := b.pix[o : o+Channels : o+Channels]
	return Pixel{R: s[0], G: s[1], B: s[2]}
}

// SetPixel overwrites the pixel at (x, y) in place without validating the coordinate.
func (b *Buffer) SetPixel(x, y int, p Pixel) {
	b.SetIndex(y*b.width+x, p)
}

// SetIndex overwrites the pixel at linear index i in place without validating it.
func (b *Buffer) SetIndex(i int, p Pixel) {
	o := i * Channels
	s := b.pix[o : o+Channels : o+Channels]
	s[0], s[1], s[2] = p.R, p.G, p.B
}

// InBounds reports whether (x, y) addresses a pixel of the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// PixelAt is the checked counterpart of Get.
func (b *Buffer) PixelAt(x, y int) (Pixel, error) {
	if !b.InBounds(x, y) {
		return Pixel{}, b.coordError(x, y)
	}
	return b.Get(x, y), nil
}

// PixelAtIndex is the checked counterpart of GetIndex.
func (b *Buffer) PixelAtIndex(i int) (Pixel, error) {
	if i < 0 || i >= b.Len() {
		return Pixel{}, b.indexError(i)
	}
	return b.GetIndex(i), nil
}

// SetChecked is the checked counterpart of SetPixel. The buffer is left untouched
// on error.
func (b *Buffer) SetChecked(x, y int, p Pixel) error {
	if !b.InBounds(x, y) {
		return b.coordError(x, y)
	}
	b.SetPixel(x, y, p)
	return nil
}

// SetIndexChecked is the checked counterpart of SetIndex.
func (b *Buffer) SetIndexChecked(i int, p Pixel) error {
	if i < 0 || i >= b.Len() {
		return b.indexError(i)
	}
	b.SetIndex(i, p)
	return nil
}

// SetSlice sets the pixel at linear index i from an [R, G, B] slice. Slices
// of any other length are rejected with ErrArity rather than spilling into
// neighbouring pixels.
func (b *Buffer) SetSlice(i int, rgb []uint8) error {
	if len(rgb) != Channels {
		return fmt.Errorf("%w: got %d", ErrArity, len(rgb))
	}
	return b.SetIndexChecked(i, Pixel{R: rgb[0], G: rgb[1], B: rgb[2]})
}

// Fill sets every pixel to p.
func (b *Buffer) Fill(p Pixel) {
	if len(b.pix) == 0 {
		return
	}
	b.pix[0], b.pix[1], b.pix[2] = p.R, p.G, p.B
	// Double the filled prefix until the whole slice is covered.
	for n := Channels; n < len(b.pix); n *= 2 {
		copy(b.pix[n:], b.pix[:n])
	}
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	pix := make([]byte, len(b.pix))
	copy(pix, b.pix)
	return &Buffer{width: b.width, height: b.height, pix: pix}
}

func (b *Buffer) coordError(x, y int) error {
	return &RangeError{X: x, Y: y, Index: y*b.width + x, Width: b.width, Height: b.height}
}

func (b *Buffer) indexError(i int) error {
	x, y := b.Coord(i)
	return &RangeError{X: x, Y: y, Index: i, Linear: true, Width: b.width, Height: b.height}
}
