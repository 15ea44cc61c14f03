// Package server implements the MCP (Model Context Protocol) server for the color tools.
//
// This package provides a JSON-RPC 2.0 server that exposes color conversion,
// hue allocation, gradient and legend rendering through the MCP protocol.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Conversions:
//   - color_rgb_to_hex: RGB channels to hex
//   - color_hsv_to_hex: HSV to hex
//   - color_hex_to_rgb: Hex to RGB channels
//
// Palette Operations:
//   - color_assign: Evenly spaced hue per label
//   - color_gradient: Linear RGB gradient between two colors
//
// Rendering:
//   - color_legend: Legend image or gnuplot script for assigned colors
//   - color_gradient_strip: Gradient swatch strip image
//
// # Output Files
//
// Rendering tools write to the path given in their arguments. Relative paths
// are resolved against Config.OutputDir when it is set.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	srv := server.New(server.Config{OutputDir: dir})
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
