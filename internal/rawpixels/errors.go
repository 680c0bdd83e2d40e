package rawpixels

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is matched by every *RangeError.
	ErrOutOfRange = errors.New("pixel coordinate out of range")

	// ErrArity is returned when a color slice does not hold exactly three channels.
	ErrArity = errors.New("pixel value must have exactly 3 channels")

	// ErrGeometry is returned for non-positive dimensions or a data length
	// that does not match width*height*3.
	ErrGeometry = errors.New("invalid buffer geometry")
)

// RangeError reports a coordinate or linear index outside the buffer.
type RangeError struct {
	X, Y   int
	Index  int
	Linear bool // true when the caller addressed the pixel by linear index
	Width  int
	Height int
}

func (e *RangeError) Error() string {
	if e.Linear {
		return fmt.Sprintf("pixel index %d outside [0,%d) for %dx%d buffer",
			e.Index, e.Width*e.Height, e.Width, e.Height)
	}
	return fmt.Sprintf("coordinates (%d,%d) outside %dx%d buffer", e.X, e.Y, e.Width, e.Height)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}
