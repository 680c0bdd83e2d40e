// Package document models the host side of a raw pixel round trip.
//
// A Document is a stack of full-size layers loaded from an image file on disk.
// The Host interface is the boundary between documents and raw pixel buffers:
// Snapshot turns the visible document into a rawpixels.Buffer, and ImportLayer
// brings an edited buffer back as a new top layer.
//
// RawFileHost implements Host by writing raw bitmaps to a temporary directory
// and reading them back, the same way a scripting host saves and re-opens a
// document in raw format.
//
// # Layer Order
//
// Layers[0] is the topmost layer. Flatten composites from the last layer up.
//
// # Thread Safety
//
// Store is safe for concurrent use. A Document is not; callers sharing one
// must synchronize themselves.
package document
