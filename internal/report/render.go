package report

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"

	"github.com/kamilmatejuk/ascfmt/internal/color"
)

// createMarkdownRenderer initializes a glamour markdown renderer
func createMarkdownRenderer(mode color.Mode) *glamour.TermRenderer {
	var opts []glamour.TermRendererOption

	switch mode {
	case color.Never:
		// plain text
		return nil
	case color.Always:
		// Force TrueColor so piped output keeps its colors
		opts = append(opts,
			glamour.WithAutoStyle(),
			glamour.WithColorProfile(termenv.TrueColor),
			glamour.WithWordWrap(0),
		)
	default:
		opts = append(opts,
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(0),
		)
	}

	mdRenderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil
	}
	return mdRenderer
}

// renderMarkdown renders markdown text using glamour, or returns plain text if unavailable
func renderMarkdown(mdRenderer *glamour.TermRenderer, text string) string {
	if mdRenderer == nil {
		return text
	}

	rendered, err := mdRenderer.Render(text)
	if err != nil {
		return text
	}

	// glamour adds leading/trailing newlines for formatting, trim them
	return strings.TrimSpace(rendered)
}

// RenderMarkdown renders text for the terminal in the given color mode.
func RenderMarkdown(text string, mode color.Mode) string {
	return renderMarkdown(createMarkdownRenderer(mode), text)
}
