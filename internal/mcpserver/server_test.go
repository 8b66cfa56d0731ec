package mcpserver

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/kamilmatejuk/ascfmt/internal/formatter"
	"github.com/kamilmatejuk/ascfmt/internal/header"
)

func testFormatter() *formatter.Formatter {
	return formatter.New(formatter.WithDefaults(header.Defaults{
		Width:  80,
		Height: 24,
		Shell:  "/bin/sh",
		Term:   "xterm",
		Now:    func() time.Time { return time.Unix(1, 0) },
	}))
}

func request(text string) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = map[string]any{"text": text}
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if res == nil || len(res.Content) != 1 {
		t.Fatalf("expected one content item, got %+v", res)
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}
	return text.Text
}

func TestFormatHandler(t *testing.T) {
	res, err := formatHandler(testFormatter())(context.Background(), request("{\"version\":2}\n[1,\"o\",\"x\"]"))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}

	var out FormatOutput
	if err := json.Unmarshal([]byte(resultText(t, res)), &out); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if out.Version != 2 {
		t.Errorf("Version = %d, want 2", out.Version)
	}
	want := `{"version": 2, "width": 80, "height": 24, "timestamp": 1, "env": {"SHELL": "/bin/sh", "TERM": "xterm"}}` + "\n" + `[1.000000, "o", "x"]`
	if out.Formatted != want {
		t.Errorf("Formatted = %q, want %q", out.Formatted, want)
	}
	if len(out.Edits) == 0 {
		t.Error("expected edits")
	}
	if out.Notice != "" {
		t.Errorf("unexpected notice %q", out.Notice)
	}
}

func TestFormatHandler_Notice(t *testing.T) {
	res, err := formatHandler(testFormatter())(context.Background(), request(`{"version": 9}`))
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	text := resultText(t, res)
	if !strings.Contains(text, `"notice":"unknown version: 9"`) {
		t.Errorf("expected notice in %s", text)
	}
	if !strings.Contains(text, `"edits":[]`) {
		t.Errorf("expected empty edit list in %s", text)
	}
}

func TestHandleDetectVersion(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{text: `{"version": 1}`, want: "1"},
		{text: `{"version":3}`, want: "3"},
		{text: `[0, "o", "x"]`, want: "2"},
	}
	for _, tt := range tests {
		res, err := handleDetectVersion(context.Background(), request(tt.text))
		if err != nil {
			t.Fatalf("handler error = %v", err)
		}
		if got := resultText(t, res); got != tt.want {
			t.Errorf("detect_version(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestNewServer(t *testing.T) {
	if NewServer(testFormatter(), "test") == nil {
		t.Fatal("NewServer() returned nil")
	}
}
