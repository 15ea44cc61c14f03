package server

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ironsheep/color-tools-mcp/internal/palette"
	"github.com/ironsheep/color-tools-mcp/internal/render"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "color_assign", "color_gradient").
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
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	if s.cfg.Debug {
		log.Printf("tools/call %s %s", params.Name, string(params.Arguments))
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		if s.cfg.Debug {
			log.Printf("tools/call %s failed: %v", params.Name, err)
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
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Calls the appropriate palette/render function
//  4. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Conversions
	case "color_rgb_to_hex":
		return s.handleRGBToHex(args)
	case "color_hsv_to_hex":
		return s.handleHSVToHex(args)
	case "color_hex_to_rgb":
		return s.handleHexToRGB(args)

	// Palette Operations
	case "color_assign":
		return s.handleAssign(args)
	case "color_gradient":
		return s.handleGradient(args)

	// Rendering
	case "color_legend":
		return s.handleLegend(args)
	case "color_gradient_strip":
		return s.handleGradientStrip(args)

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
// A marshal failure yields an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// resolvePath anchors relative output paths at the configured output directory.
func (s *Server) resolvePath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("path is required")
	}
	if filepath.IsAbs(path) || s.cfg.OutputDir == "" {
		return path, nil
	}
	return filepath.Join(s.cfg.OutputDir, path), nil
}

// === Conversion Handlers ===

// HexResult is returned by the conversion tools that produce a hex color.
type HexResult struct {
	Hex string `json:"hex"`
}

// RGBResult is returned by color_hex_to_rgb.
type RGBResult struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

type rgbToHexArgs struct {
	R *int `json:"r"`
	G *int `json:"g"`
	B *int `json:"b"`
}

func (s *Server) handleRGBToHex(args json.RawMessage) (interface{}, error) {
	var a rgbToHexArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.R == nil || a.G == nil || a.B == nil {
		return nil, fmt.Errorf("r, g and b are required")
	}
	hex, err := palette.RGBToHex(*a.R, *a.G, *a.B)
	if err != nil {
		return nil, err
	}
	return &HexResult{Hex: hex}, nil
}

type hsvToHexArgs struct {
	H *float64 `json:"h"`
	S *float64 `json:"s"`
	V *float64 `json:"v"`
}

func (s *Server) handleHSVToHex(args json.RawMessage) (interface{}, error) {
	var a hsvToHexArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.H == nil || a.S == nil || a.V == nil {
		return nil, fmt.Errorf("h, s and v are required")
	}
	hex, err := palette.HSVToHex(*a.H, *a.S, *a.V)
	if err != nil {
		return nil, err
	}
	return &HexResult{Hex: hex}, nil
}

type hexToRGBArgs struct {
	Hex    string  `json:"hex"`
	Symbol *string `json:"symbol"`
}

func (s *Server) handleHexToRGB(args json.RawMessage) (interface{}, error) {
	var a hexToRGBArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	symbol := "#"
	if a.Symbol != nil {
		symbol = *a.Symbol
	}
	r, g, b, err := palette.ParseHex(a.Hex, symbol)
	if err != nil {
		return nil, err
	}
	return &RGBResult{R: r, G: g, B: b}, nil
}

// === Palette Operation Handlers ===

// AssignResult lists label colors in assignment order.
type AssignResult struct {
	Colors []palette.LabelColor[string] `json:"colors"`
}

type assignArgs struct {
	Labels     []string `json:"labels"`
	Saturation *float64 `json:"saturation"`
	Value      *float64 `json:"value"`
	Symbol     *string  `json:"symbol"`
	Start      *float64 `json:"start"`
	End        *float64 `json:"end"`
	Clockwise  bool     `json:"clockwise"`
}

// options overlays the provided arguments on palette.DefaultOptions.
func (a *assignArgs) options() palette.Options {
	opts := palette.DefaultOptions()
	if a.Saturation != nil {
		opts.Saturation = *a.Saturation
	}
	if a.Value != nil {
		opts.Value = *a.Value
	}
	if a.Symbol != nil {
		opts.Symbol = *a.Symbol
	}
	if a.Start != nil {
		opts.StartAngle = *a.Start
	}
	if a.End != nil {
		opts.EndAngle = *a.End
	}
	opts.Clockwise = a.Clockwise
	return opts
}

func (s *Server) handleAssign(args json.RawMessage) (interface{}, error) {
	var a assignArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	assignment, err := palette.AssignColors(a.Labels, a.options())
	if err != nil {
		return nil, err
	}
	return &AssignResult{Colors: assignment.Entries()}, nil
}

// GradientResult lists the interpolated colors from start to finish.
type GradientResult struct {
	Colors []string `json:"colors"`
}

type gradientArgs struct {
	Start  string `json:"start"`
	Finish string `json:"finish"`
	Count  *int   `json:"count"`
}

// gradient applies defaults and computes the color sequence.
func (a *gradientArgs) gradient() ([]string, error) {
	finish := a.Finish
	if finish == "" {
		finish = "FFFFFF"
	}
	count := 10
	if a.Count != nil {
		count = *a.Count
	}
	return palette.LinearGradient(strings.TrimPrefix(a.Start, "#"), strings.TrimPrefix(finish, "#"), count)
}

func (s *Server) handleGradient(args json.RawMessage) (interface{}, error) {
	var a gradientArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	colors, err := a.gradient()
	if err != nil {
		return nil, err
	}
	return &GradientResult{Colors: colors}, nil
}

// === Rendering Handlers ===

// RenderResult describes a file written by a rendering tool.
type RenderResult struct {
	Path    string             `json:"path"`
	Format  string             `json:"format"`
	Entries []render.PlotEntry `json:"entries,omitempty"`
	Colors  []string           `json:"colors,omitempty"`
}

type legendArgs struct {
	assignArgs
	Path      string `json:"path"`
	Format    string `json:"format"`
	EPSOutput string `json:"eps_output"`
	Width     int    `json:"width"`
}

func (s *Server) handleLegend(args json.RawMessage) (interface{}, error) {
	var a legendArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Format == "" {
		a.Format = "image"
	}
	path, err := s.resolvePath(a.Path)
	if err != nil {
		return nil, err
	}

	opts := a.options()
	assignment, err := palette.AssignColors(a.Labels, opts)
	if err != nil {
		return nil, err
	}
	entries := render.EntriesFrom(assignment)

	switch a.Format {
	case "image":
		r := &render.ImageRenderer{Path: path, Width: a.Width, Symbol: opts.Symbol}
		if err := r.Render(entries); err != nil {
			return nil, err
		}
	case "gnuplot":
		if err := writeScript(path, a.EPSOutput, entries); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown format: %s", a.Format)
	}

	return &RenderResult{Path: path, Format: a.Format, Entries: entries}, nil
}

// writeScript renders entries as a gnuplot script into the file at path.
func writeScript(path, epsOutput string, entries []render.PlotEntry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create script: %w", err)
	}

	r := &render.ScriptRenderer{W: f, Output: epsOutput}
	if err := r.Render(entries); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

type gradientStripArgs struct {
	gradientArgs
	SwatchWidth int    `json:"swatch_width"`
	Height      int    `json:"height"`
	Path        string `json:"path"`
}

func (s *Server) handleGradientStrip(args json.RawMessage) (interface{}, error) {
	var a gradientStripArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.SwatchWidth == 0 {
		a.SwatchWidth = 32
	}
	if a.Height == 0 {
		a.Height = 32
	}
	path, err := s.resolvePath(a.Path)
	if err != nil {
		return nil, err
	}

	colors, err := a.gradient()
	if err != nil {
		return nil, err
	}
	strip, err := render.GradientStrip(colors, "", a.SwatchWidth, a.Height)
	if err != nil {
		return nil, err
	}
	if err := render.SaveImage(path, strip); err != nil {
		return nil, err
	}

	return &RenderResult{Path: path, Format: "image", Colors: colors}, nil
}
