package rawpixels

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// RawFormat describes the out-of-band geometry of a header-less raw bitmap.
// Only 3-channel, 8-bit, interleaved data is supported.
type RawFormat struct {
	Width       int  `json:"width"`
	Height      int  `json:"height"`
	Channels    int  `json:"channels"`
	Depth       int  `json:"depth"`
	Interleaved bool `json:"channels_interleaved"`
}

// NewRawFormat returns the format of an interleaved 8bpp RGB bitmap.
func NewRawFormat(width, height int) RawFormat {
	return RawFormat{
		Width:       width,
		Height:      height,
		Channels:    Channels,
		Depth:       8,
		Interleaved: true,
	}
}

// Validate reports whether f can be decoded by this package.
func (f RawFormat) Validate() error {
	switch {
	case f.Width <= 0 || f.Height <= 0:
		return fmt.Errorf("%w: %dx%d", ErrGeometry, f.Width, f.Height)
	case f.Channels != Channels:
		return fmt.Errorf("unsupported channel count %d (want %d)", f.Channels, Channels)
	case f.Depth != 8:
		return fmt.Errorf("unsupported bit depth %d (want 8)", f.Depth)
	case !f.Interleaved:
		return errors.New("planar raw data is not supported")
	}
	return nil
}

// Size returns the number of bytes a bitmap in this format occupies.
func (f RawFormat) Size() int {
	return f.Width * f.Height * f.Channels * f.Depth / 8
}

// Format returns the raw format describing b.
func (b *Buffer) Format() RawFormat {
	return NewRawFormat(b.width, b.height)
}

// ReadRaw reads exactly width*height*3 bytes from r into a new buffer.
// Trailing data in r is left unread.
func ReadRaw(r io.Reader, width, height int) (*Buffer, error) {
	b, err := New(width, height)
	if err != nil {
		return nil, err
	}
	if _, err := io.ReadFull(r, b.pix); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("failed to read raw pixels: %w", err)
	}
	return b, nil
}

// WriteRaw writes the buffer's bytes to w.
func WriteRaw(w io.Writer, b *Buffer) error {
	if _, err := w.Write(b.pix); err != nil {
		return fmt.Errorf("failed to write raw pixels: %w", err)
	}
	return nil
}

// SaveRawTemp writes b to a new, randomly named .raw file in dir and returns
// its path. An empty dir means os.TempDir(). The caller removes the file.
func SaveRawTemp(dir string, b *Buffer) (string, error) {
	f, err := os.CreateTemp(dir, "pixels-*.raw")
	if err != nil {
		return "", fmt.Errorf("failed to create raw file: %w", err)
	}
	path := f.Name()

	werr := WriteRaw(f, b)
	cerr := f.Close()
	if err := errors.Join(werr, cerr); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}

// LoadRawFile reads a raw bitmap of the given geometry from path.
func LoadRawFile(path string, format RawFormat) (*Buffer, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open raw file: %w", err)
	}
	defer f.Close()

	return ReadRaw(f, format.Width, format.Height)
}
