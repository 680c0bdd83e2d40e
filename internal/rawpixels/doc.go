// Package rawpixels implements a raw pixel buffer codec for 8-bit RGB images.
//
// A Buffer holds channel-interleaved RGB samples (RGBRGBRGB...) in row-major
// order, exactly width*height*3 bytes long. Pixels are addressed either by an
// (x, y) pair or by a linear index i = y*width + x; both forms resolve to the
// same byte offset (y*width + x) * 3.
//
// # Access Tiers
//
// Two tiers of pixel access are provided:
//   - Fast: Get, GetIndex, SetPixel, SetIndex. No bounds checks beyond what the Go
//     runtime performs on slices. Intended for bulk loops where the caller
//     already guarantees valid coordinates. A coordinate with x outside
//     [0, width) silently addresses a neighbouring row; a coordinate outside the
//     buffer panics with a runtime index error.
//   - Checked: PixelAt, PixelAtIndex, SetChecked, SetIndexChecked, SetSlice.
//     These validate coordinates and return a *RangeError (matching
//     ErrOutOfRange) instead of touching the buffer. The extra comparisons cost
//     a few nanoseconds per call; see the package benchmarks.
//
// All writes happen in place. No operation copies or reallocates the buffer.
//
// # Raw Bitmap Files
//
// ReadRaw and WriteRaw move a Buffer to and from a header-less raw bitmap
// stream. The geometry is not stored in the file and must be supplied out of
// band, typically through a RawFormat.
//
// # Thread Safety
//
// A Buffer is owned by one caller at a time and has no internal locking.
package rawpixels
