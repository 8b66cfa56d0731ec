package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/kamilmatejuk/ascfmt/internal/color"
	"github.com/kamilmatejuk/ascfmt/internal/report"
)

func printHelp(w io.Writer, mode color.Mode) {
	useColors := mode.ShouldUseColors()
	renderMode := mode
	if !useColors {
		renderMode = color.Never
	}
	renderMarkdown := func(text string) string {
		return report.RenderMarkdown(text, renderMode)
	}

	// Styles for help text (with conditional colors)
	titleStyle := lipgloss.NewStyle().Bold(true).MarginBottom(1)
	sectionStyle := lipgloss.NewStyle().Bold(true).MarginTop(1)
	optionStyle := lipgloss.NewStyle()
	codeStyle := lipgloss.NewStyle().Italic(true)
	descStyle := lipgloss.NewStyle()

	if useColors {
		titleStyle = titleStyle.Foreground(lipgloss.Color("6"))     // Cyan
		sectionStyle = sectionStyle.Foreground(lipgloss.Color("3")) // Yellow
		optionStyle = optionStyle.Foreground(lipgloss.Color("2"))   // Green
		codeStyle = codeStyle.Foreground(lipgloss.Color("8"))       // Dim
		descStyle = descStyle.Foreground(lipgloss.Color("7"))       // Light gray
	}

	title := titleStyle.Render("ascfmt - Format asciicast recordings")

	usage := lipgloss.JoinVertical(lipgloss.Left,
		sectionStyle.Render("Usage:"),
		"  ascfmt [options] <file|directory|->...",
	)

	description := lipgloss.JoinVertical(lipgloss.Left,
		sectionStyle.Render("Description:"),
		descStyle.Render("  ascfmt completes the header of a .cast file, puts its required keys"),
		descStyle.Render("  first, and lines the events up in columns: one event per line,"),
		descStyle.Render("  timestamps right-aligned with six decimals, types padded to one width."),
		"",
		"  Arguments can be:",
		"  • A recording "+codeStyle.Render("(e.g., demo.cast)"),
		"  • A directory, searched for *.cast files "+codeStyle.Render("(e.g., recordings/)"),
		"  • A dash for standard input "+codeStyle.Render("(e.g., cat demo.cast | ascfmt -)"),
	)

	options := lipgloss.JoinVertical(lipgloss.Left,
		sectionStyle.Render("Options:"),
		fmt.Sprintf("  %s              Show this help message", optionStyle.Render("--help")),
		fmt.Sprintf("  %s           Show version information", optionStyle.Render("--version")),
		fmt.Sprintf("  %s, %s         Rewrite files in place", optionStyle.Render("-w"), optionStyle.Render("--write")),
		fmt.Sprintf("  %s       Ask before rewriting each file (implies --write)", optionStyle.Render("--interactive")),
		fmt.Sprintf("  %s             List files that need formatting and fail if any do", optionStyle.Render("--check")),
		fmt.Sprintf("  %s             Print the planned edits instead of the formatted text", optionStyle.Render("--edits")),
		fmt.Sprintf("  %s              Print edits as JSON (with --edits)", optionStyle.Render("--json")),
		fmt.Sprintf("  %s            Config file (default: $XDG_CONFIG_HOME/ascfmt/config.yaml)", optionStyle.Render("--config")),
		fmt.Sprintf("  %s             Control color output (auto, always, never)", optionStyle.Render("--color")),
		fmt.Sprintf("  %s             Log formatter decisions to stderr", optionStyle.Render("--debug")),
		fmt.Sprintf("  %s               Serve the formatter as MCP tools over stdio", optionStyle.Render("--mcp")),
		fmt.Sprintf("  %s        Print a shell completion script (bash, zsh, fish)", optionStyle.Render("--completion")),
	)

	examplesBlock := `~~~sh
# Print a formatted recording
ascfmt demo.cast

# Format every recording under a directory in place
ascfmt --write recordings/

# Fail in CI when a recording is not formatted
ascfmt --check recordings/

# Show the edits the formatter would make
ascfmt --edits --json demo.cast
~~~`

	examples := lipgloss.JoinVertical(lipgloss.Left,
		sectionStyle.Render("Examples:"),
		renderMarkdown(examplesBlock),
	)

	configExample := `~~~yaml
header:
  width: 120
  height: 40
  shell: /bin/zsh
  term: xterm-256color
color: auto
~~~`

	configSection := lipgloss.JoinVertical(lipgloss.Left,
		sectionStyle.Render("Configuration:"),
		"  Values used for header keys a recording is missing:",
		"",
		renderMarkdown(configExample),
	)

	help := lipgloss.JoinVertical(lipgloss.Left,
		title,
		usage,
		description,
		options,
		examples,
		configSection,
	)

	_, _ = fmt.Fprintln(w, help)
}
