// Package server implements the MCP (Model Context Protocol) server for raw
// pixel access.
//
// The server speaks JSON-RPC 2.0 over stdio, one request per line:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Raw Buffer Session:
//   - pixels_load: Open a document and snapshot it into a raw RGB buffer
//   - pixels_get: Read one pixel by x/y or linear index
//   - pixels_set: Write one pixel in place
//   - pixels_get_range: Read consecutive pixels by linear index
//
// Document Operations:
//   - pixels_create_layer: Import the buffer as a new top layer
//   - pixels_save: Flatten and save the document
//
// Sampler Operations:
//   - pixels_sample_color: Read one pixel through the color sampler
//   - pixels_benchmark: Compare sampler and raw buffer throughput
//
// # Sessions
//
// Each document path owns one raw buffer. The buffer is created by
// pixels_load, or on first use by any pixel tool, and lives until the next
// pixels_load of the same path. Edits stay in the buffer until
// pixels_create_layer brings them into the document.
//
// # Error Handling
//
// Tool failures are returned as JSON-RPC errors with code -32000 and the Go
// error string in data. Pixel addresses are always bounds checked, so an
// out-of-range coordinate is reported rather than corrupting the buffer.
package server
