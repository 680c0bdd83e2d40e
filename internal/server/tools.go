package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file (the document)",
	}
}

// coordinateProperties describes the two ways of addressing a pixel.
func coordinateProperties() map[string]interface{} {
	return map[string]interface{}{
		"path": pathProperty(),
		"x": map[string]interface{}{
			"type":        "integer",
			"description": "X coordinate (0-based, from left). Use together with y.",
		},
		"y": map[string]interface{}{
			"type":        "integer",
			"description": "Y coordinate (0-based, from top). Use together with x.",
		},
		"index": map[string]interface{}{
			"type":        "integer",
			"description": "Row-major linear pixel index (y*width + x). Alternative to x/y.",
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	setProps := coordinateProperties()
	setProps["rgb"] = map[string]interface{}{
		"type":        "array",
		"items":       map[string]interface{}{"type": "integer", "minimum": 0, "maximum": 255},
		"minItems":    3,
		"maxItems":    3,
		"description": "New pixel value as [R, G, B], each 0-255",
	}

	return []Tool{
		// Raw Buffer Session
		{
			Name:        "pixels_load",
			Description: "Open an image as a document and snapshot it into a raw 8-bit RGB pixel buffer. Subsequent pixel tools operate on this buffer.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "pixels_get",
			Description: "Read one pixel from the raw buffer, addressed by x/y or by linear index.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": coordinateProperties(),
				"required":   []string{"path"},
			},
		},
		{
			Name:        "pixels_set",
			Description: "Overwrite one pixel of the raw buffer in place, addressed by x/y or by linear index.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": setProps,
				"required":   []string{"path", "rgb"},
			},
		},
		{
			Name:        "pixels_get_range",
			Description: "Read a run of consecutive pixels from the raw buffer by linear index.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"start": map[string]interface{}{
						"type":        "integer",
						"description": "First linear index (default 0)",
						"default":     0,
					},
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of pixels to read (default 100, max 10000). Clipped at the end of the buffer.",
						"default":     defaultRangeCount,
					},
				},
				"required": []string{"path"},
			},
		},

		// Document Operations
		{
			Name:        "pixels_create_layer",
			Description: "Import the edited raw buffer back into the document as a new top layer. Every call creates a new layer.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "pixels_save",
			Description: "Flatten all document layers and save the result. The format follows the output extension (png, jpg, gif, bmp, tif).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"output": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path of the file to write",
					},
				},
				"required": []string{"path", "output"},
			},
		},

		// Sampler Operations
		{
			Name:        "pixels_sample_color",
			Description: "Read one pixel of the flattened document through the color sampler and return it as hex, RGB and HSL.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, from top)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "pixels_benchmark",
			Description: "Time pixel reads through the color sampler against the raw buffer round trip.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"sample_count": map[string]interface{}{
						"type":        "integer",
						"description": "Pixels to read through the sampler (default from PIXELS_MCP_SAMPLE_COUNT)",
					},
					"import": map[string]interface{}{
						"type":        "boolean",
						"description": "Import the benchmark's edited buffer as a new layer (default false)",
						"default":     false,
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
