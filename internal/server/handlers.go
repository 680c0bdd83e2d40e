package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/ironsheep/raw-pixels-mcp/internal/benchmark"
	"github.com/ironsheep/raw-pixels-mcp/internal/document"
	"github.com/ironsheep/raw-pixels-mcp/internal/rawpixels"
	"github.com/ironsheep/raw-pixels-mcp/internal/sampler"
)

const (
	defaultRangeCount = 100
	maxRangeCount     = 10000
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "pixels_load", "pixels_get").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(ctx, params.Name, params.Arguments)
	if err != nil {
		if s.cfg.Debug() {
			log.Printf("tool %s failed: %v", params.Name, err)
		}
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Raw Buffer Session
	case "pixels_load":
		return s.handlePixelsLoad(args)
	case "pixels_get":
		return s.handlePixelsGet(args)
	case "pixels_set":
		return s.handlePixelsSet(args)
	case "pixels_get_range":
		return s.handlePixelsGetRange(args)

	// Document Operations
	case "pixels_create_layer":
		return s.handlePixelsCreateLayer(args)
	case "pixels_save":
		return s.handlePixelsSave(args)

	// Sampler Operations
	case "pixels_sample_color":
		return s.handlePixelsSampleColor(args)
	case "pixels_benchmark":
		return s.handlePixelsBenchmark(ctx, args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// session returns the raw buffer for path, snapshotting the document the
// first time it is touched.
func (s *Server) session(path string) (*document.Document, *rawpixels.Buffer, error) {
	doc, err := s.store.Load(path)
	if err != nil {
		return nil, nil, err
	}
	if buf, ok := s.buffers[path]; ok {
		return doc, buf, nil
	}

	buf, err := s.host.Snapshot(doc)
	if err != nil {
		return nil, nil, err
	}
	s.buffers[path] = buf
	return doc, buf, nil
}

// === Raw Buffer Session Handlers ===

type pathArgs struct {
	Path string `json:"path"`
}

type loadResult struct {
	*document.Info
	Pixels int                 `json:"pixels"`
	Raw    rawpixels.RawFormat `json:"raw_format"`
}

func (s *Server) handlePixelsLoad(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	info, err := document.LoadInfo(s.store, a.Path)
	if err != nil {
		return nil, err
	}
	// Loading again always takes a fresh snapshot of the visible document.
	delete(s.buffers, a.Path)
	_, buf, err := s.session(a.Path)
	if err != nil {
		return nil, err
	}

	return &loadResult{Info: info, Pixels: buf.Len(), Raw: buf.Format()}, nil
}

// coordArgs addresses a pixel either by x/y or by linear index.
type coordArgs struct {
	Path  string `json:"path"`
	X     *int   `json:"x,omitempty"`
	Y     *int   `json:"y,omitempty"`
	Index *int   `json:"index,omitempty"`
}

// resolve returns the linear index named by a, validated against buf.
func (a *coordArgs) resolve(buf *rawpixels.Buffer) (int, error) {
	switch {
	case a.Index != nil:
		if a.X != nil || a.Y != nil {
			return 0, errors.New("give either index or x/y, not both")
		}
		if _, err := buf.PixelAtIndex(*a.Index); err != nil {
			return 0, err
		}
		return *a.Index, nil
	case a.X != nil && a.Y != nil:
		if _, err := buf.PixelAt(*a.X, *a.Y); err != nil {
			return 0, err
		}
		return buf.LinearIndex(*a.X, *a.Y), nil
	default:
		return 0, errors.New("pixel address requires index or both x and y")
	}
}

type pixelResult struct {
	Index int             `json:"index"`
	X     int             `json:"x"`
	Y     int             `json:"y"`
	RGB   rawpixels.Pixel `json:"rgb"`
}

func newPixelResult(buf *rawpixels.Buffer, i int) *pixelResult {
	x, y := buf.Coord(i)
	return &pixelResult{Index: i, X: x, Y: y, RGB: buf.GetIndex(i)}
}

func (s *Server) handlePixelsGet(args json.RawMessage) (interface{}, error) {
	var a coordArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	_, buf, err := s.session(a.Path)
	if err != nil {
		return nil, err
	}

	i, err := a.resolve(buf)
	if err != nil {
		return nil, err
	}
	return newPixelResult(buf, i), nil
}

type pixelsSetArgs struct {
	coordArgs
	RGB []int `json:"rgb"`
}

func (s *Server) handlePixelsSet(args json.RawMessage) (interface{}, error) {
	var a pixelsSetArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	if len(a.RGB) != rawpixels.Channels {
		return nil, fmt.Errorf("%w: got %d", rawpixels.ErrArity, len(a.RGB))
	}
	rgb := make([]uint8, rawpixels.Channels)
	for c, v := range a.RGB {
		if v < 0 || v > 255 {
			return nil, fmt.Errorf("channel %d value %d outside 0-255", c, v)
		}
		rgb[c] = uint8(v)
	}

	_, buf, err := s.session(a.Path)
	if err != nil {
		return nil, err
	}
	i, err := a.resolve(buf)
	if err != nil {
		return nil, err
	}
	if err := buf.SetSlice(i, rgb); err != nil {
		return nil, err
	}
	return newPixelResult(buf, i), nil
}

type pixelsGetRangeArgs struct {
	Path  string `json:"path"`
	Start int    `json:"start"`
	Count int    `json:"count"`
}

type rangeResult struct {
	Start  int               `json:"start"`
	Count  int               `json:"count"`
	Pixels []rawpixels.Pixel `json:"pixels"`
}

func (s *Server) handlePixelsGetRange(args json.RawMessage) (interface{}, error) {
	var a pixelsGetRangeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = defaultRangeCount
	}
	if a.Count < 0 || a.Count > maxRangeCount {
		return nil, fmt.Errorf("count %d outside 1-%d", a.Count, maxRangeCount)
	}

	_, buf, err := s.session(a.Path)
	if err != nil {
		return nil, err
	}
	if _, err := buf.PixelAtIndex(a.Start); err != nil {
		return nil, err
	}

	n := min(a.Count, buf.Len()-a.Start)
	pixels := make([]rawpixels.Pixel, n)
	for i := range pixels {
		pixels[i] = buf.GetIndex(a.Start + i)
	}
	return &rangeResult{Start: a.Start, Count: n, Pixels: pixels}, nil
}

// === Document Operation Handlers ===

type layerResult struct {
	Layer  string   `json:"layer"`
	Layers []string `json:"layers"`
}

func (s *Server) handlePixelsCreateLayer(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	doc, buf, err := s.session(a.Path)
	if err != nil {
		return nil, err
	}

	layer, err := s.host.ImportLayer(doc, buf)
	if err != nil {
		return nil, err
	}
	if s.cfg.Debug() {
		log.Printf("created layer %q in %s", layer.Name, doc.Path)
	}
	return &layerResult{Layer: layer.Name, Layers: doc.LayerNames()}, nil
}

type pixelsSaveArgs struct {
	Path   string `json:"path"`
	Output string `json:"output"`
}

type saveResult struct {
	Output string   `json:"output"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Layers []string `json:"layers"`
}

func (s *Server) handlePixelsSave(args json.RawMessage) (interface{}, error) {
	var a pixelsSaveArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Output == "" {
		return nil, errors.New("output path is required")
	}

	doc, err := s.store.Load(a.Path)
	if err != nil {
		return nil, err
	}
	if err := doc.Save(a.Output); err != nil {
		return nil, err
	}
	return &saveResult{Output: a.Output, Width: doc.Width, Height: doc.Height, Layers: doc.LayerNames()}, nil
}

// === Sampler Operation Handlers ===

type pixelsSampleColorArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handlePixelsSampleColor(args json.RawMessage) (interface{}, error) {
	var a pixelsSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	doc, err := s.store.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return sampler.SampleColor(doc.Flatten(), a.X, a.Y)
}

type pixelsBenchmarkArgs struct {
	Path        string `json:"path"`
	SampleCount int    `json:"sample_count"`
	Import      bool   `json:"import"`
}

type benchmarkResult struct {
	Sampler benchmark.Timing  `json:"sampler"`
	Raw     *benchmark.Report `json:"raw"`
	// Speedup is raw pixels/second divided by sampler pixels/second.
	Speedup float64 `json:"speedup,omitempty"`
}

func (s *Server) handlePixelsBenchmark(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a pixelsBenchmarkArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.SampleCount <= 0 {
		a.SampleCount = s.cfg.SampleCount
	}

	doc, err := s.store.Load(a.Path)
	if err != nil {
		return nil, err
	}

	samp, err := benchmark.RunSampler(ctx, doc.Flatten(), a.SampleCount)
	if err != nil {
		return nil, err
	}

	opts := benchmark.DefaultOptions()
	opts.SkipImport = !a.Import
	rep, err := benchmark.Run(ctx, doc, s.host, opts)
	if err != nil {
		return nil, err
	}

	res := &benchmarkResult{Sampler: samp, Raw: rep}
	if samp.PixelsPerSecond > 0 {
		res.Speedup = rep.Read.PixelsPerSecond / samp.PixelsPerSecond
	}
	return res, nil
}
