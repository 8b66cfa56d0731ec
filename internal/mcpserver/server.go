// Package mcpserver exposes the formatter as MCP tools over stdio, so
// editors and agents can format recordings without shelling out.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/kamilmatejuk/ascfmt/internal/edit"
	"github.com/kamilmatejuk/ascfmt/internal/formatter"
	"github.com/kamilmatejuk/ascfmt/internal/version"
)

// TextInput is the input of every tool
type TextInput struct {
	Text string `json:"text"`
}

// FormatOutput is the response of the format_asciicast tool
type FormatOutput struct {
	Version   int              `json:"version"`
	Formatted string           `json:"formatted"`
	Edits     []edit.Operation `json:"edits"`
	Notice    string           `json:"notice,omitempty"`
}

// NewServer builds the MCP server with its tools registered.
func NewServer(f *formatter.Formatter, serverVersion string) *server.MCPServer {
	s := server.NewMCPServer(
		"ascfmt",
		serverVersion,
		server.WithToolCapabilities(false),
	)

	formatTool := mcp.NewTool("format_asciicast",
		mcp.WithDescription("Format an asciicast recording: complete and normalize the header and align the event columns"),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Full text of the .cast file"),
		),
	)
	s.AddTool(formatTool, formatHandler(f))

	detectTool := mcp.NewTool("detect_version",
		mcp.WithDescription("Report the asciicast format version of a recording"),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Full text of the .cast file"),
		),
	)
	s.AddTool(detectTool, handleDetectVersion)

	return s
}

// Run starts the MCP server in stdio mode
func Run(f *formatter.Formatter, serverVersion string) error {
	return server.ServeStdio(NewServer(f, serverVersion))
}

func parseInput(req mcp.CallToolRequest) (TextInput, error) {
	var input TextInput
	inputBytes, err := json.Marshal(req.Params.Arguments)
	if err != nil {
		return input, fmt.Errorf("failed to marshal arguments: %w", err)
	}
	if err := json.Unmarshal(inputBytes, &input); err != nil {
		return input, fmt.Errorf("failed to parse tool input: %w", err)
	}
	return input, nil
}

func formatHandler(f *formatter.Formatter) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		input, err := parseInput(req)
		if err != nil {
			return nil, err
		}

		res, formatted, err := f.Apply(input.Text)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		output := FormatOutput{
			Version:   res.Version,
			Formatted: formatted,
			Edits:     res.Edits,
		}
		if output.Edits == nil {
			output.Edits = []edit.Operation{}
		}
		if res.Notice != nil {
			output.Notice = res.Notice.Error()
		}

		outputBytes, err := json.Marshal(output)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal output: %w", err)
		}
		return mcp.NewToolResultText(string(outputBytes)), nil
	}
}

func handleDetectVersion(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := parseInput(req)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(strconv.Itoa(version.Detect(input.Text))), nil
}
