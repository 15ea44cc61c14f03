package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// assignProperties are the hue allocation options shared by color_assign and color_legend.
func assignProperties() map[string]interface{} {
	return map[string]interface{}{
		"labels": map[string]interface{}{
			"type":        "array",
			"items":       map[string]interface{}{"type": "string"},
			"description": "Unique labels to color, in order",
		},
		"saturation": map[string]interface{}{
			"type":        "number",
			"description": "HSV saturation 0-100 (default 50)",
			"default":     50.0,
		},
		"value": map[string]interface{}{
			"type":        "number",
			"description": "HSV value 0-100 (default 100)",
			"default":     100.0,
		},
		"symbol": map[string]interface{}{
			"type":        "string",
			"description": "Prefix for each hex color (default '#')",
			"default":     "#",
		},
		"start": map[string]interface{}{
			"type":        "number",
			"description": "First hue in degrees (default 0)",
			"default":     0.0,
		},
		"end": map[string]interface{}{
			"type":        "number",
			"description": "End of the hue range in degrees (default 360)",
			"default":     360.0,
		},
		"clockwise": map[string]interface{}{
			"type":        "boolean",
			"description": "Step hues clockwise instead of counterclockwise",
			"default":     false,
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	legendProps := assignProperties()
	legendProps["path"] = map[string]interface{}{
		"type":        "string",
		"description": "Output file. Relative paths resolve against COLOR_MCP_OUTPUT_DIR. Use .png/.jpg/.bmp for images or any name for gnuplot scripts",
	}
	legendProps["format"] = map[string]interface{}{
		"type":        "string",
		"enum":        []string{"image", "gnuplot"},
		"description": "Render a legend image or write a gnuplot script (default image)",
		"default":     "image",
	}
	legendProps["eps_output"] = map[string]interface{}{
		"type":        "string",
		"description": "EPS file the gnuplot script plots into (default color_table.eps)",
		"default":     "color_table.eps",
	}
	legendProps["width"] = map[string]interface{}{
		"type":        "integer",
		"description": "Legend image width in pixels (default 320)",
		"default":     320,
	}

	return []Tool{
		// Conversions
		{
			Name:        "color_rgb_to_hex",
			Description: "Convert 8-bit RGB channels (0-255) to a 6-digit uppercase hex color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"r": map[string]interface{}{"type": "integer", "description": "Red 0-255"},
					"g": map[string]interface{}{"type": "integer", "description": "Green 0-255"},
					"b": map[string]interface{}{"type": "integer", "description": "Blue 0-255"},
				},
				"required": []string{"r", "g", "b"},
			},
		},
		{
			Name:        "color_hsv_to_hex",
			Description: "Convert an HSV color (hue 0-360, saturation 0-100, value 0-100) to a 6-digit uppercase hex color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"h": map[string]interface{}{"type": "number", "description": "Hue 0-360"},
					"s": map[string]interface{}{"type": "number", "description": "Saturation 0-100"},
					"v": map[string]interface{}{"type": "number", "description": "Value 0-100"},
				},
				"required": []string{"h", "s", "v"},
			},
		},
		{
			Name:        "color_hex_to_rgb",
			Description: "Decode a 6-digit hex color into RGB channels.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"hex": map[string]interface{}{
						"type":        "string",
						"description": "Hex color, e.g. 'FF8040' or '#FF8040'",
					},
					"symbol": map[string]interface{}{
						"type":        "string",
						"description": "Optional prefix to strip before decoding (default '#')",
						"default":     "#",
					},
				},
				"required": []string{"hex"},
			},
		},

		// Palette Operations
		{
			Name:        "color_assign",
			Description: "Assign each label a distinct color by spacing hues evenly across a range of the color wheel. Labels must be unique.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": assignProperties(),
				"required":   []string{"labels"},
			},
		},
		{
			Name:        "color_gradient",
			Description: "Produce N colors linearly interpolated in RGB space between two hex colors.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"start": map[string]interface{}{
						"type":        "string",
						"description": "Start hex color",
					},
					"finish": map[string]interface{}{
						"type":        "string",
						"description": "Finish hex color (default FFFFFF)",
						"default":     "FFFFFF",
					},
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of colors to produce (default 10)",
						"default":     10,
					},
				},
				"required": []string{"start"},
			},
		},

		// Rendering
		{
			Name:        "color_legend",
			Description: "Assign colors to labels and render them as a legend, either as an image file or as a gnuplot script.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": legendProps,
				"required":   []string{"labels", "path"},
			},
		},
		{
			Name:        "color_gradient_strip",
			Description: "Render a linear gradient as a strip of equal-width swatches and save it as an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"start": map[string]interface{}{
						"type":        "string",
						"description": "Start hex color",
					},
					"finish": map[string]interface{}{
						"type":        "string",
						"description": "Finish hex color (default FFFFFF)",
						"default":     "FFFFFF",
					},
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of swatches (default 10)",
						"default":     10,
					},
					"swatch_width": map[string]interface{}{
						"type":        "integer",
						"description": "Width of each swatch in pixels (default 32)",
						"default":     32,
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Strip height in pixels (default 32)",
						"default":     32,
					},
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Output image file (.png, .jpg, .bmp)",
					},
				},
				"required": []string{"start", "path"},
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
