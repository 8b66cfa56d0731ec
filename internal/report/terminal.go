// Package report prints per-file formatting outcomes for the terminal.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/kamilmatejuk/ascfmt/internal/color"
	"github.com/kamilmatejuk/ascfmt/internal/edit"
)

// Config holds configuration options for a Reporter
type Config struct {
	Output io.Writer
	Color  color.Mode
}

// Reporter writes status lines, edit tables and a summary
type Reporter struct {
	output io.Writer
	color  color.Mode

	formatted int
	unchanged int
	skipped   int
	pending   int
}

// New creates a reporter
func New(cfg Config) *Reporter {
	return &Reporter{
		output: cfg.Output,
		color:  cfg.Color,
	}
}

// Formatted reports a file that was rewritten
func (r *Reporter) Formatted(path string) {
	r.formatted++
	icon := applyColorToIcon(successIcon, r.color)
	_, _ = fmt.Fprintf(r.output, "%s %s\n", icon.String(), path)
}

// Unchanged reports a file that was already formatted
func (r *Reporter) Unchanged(path string) {
	r.unchanged++
	style := applyColorToStyle(dimStyle, r.color)
	_, _ = fmt.Fprintln(r.output, style.Render("  "+path+" (unchanged)"))
}

// NeedsFormatting reports a file that --check found unformatted
func (r *Reporter) NeedsFormatting(path string) {
	r.pending++
	icon := applyColorToIcon(errorIcon, r.color)
	_, _ = fmt.Fprintf(r.output, "%s %s\n", icon.String(), path)
}

// Skipped reports a file left alone because of a notice
func (r *Reporter) Skipped(path string, notice error) {
	r.skipped++
	icon := applyColorToIcon(skipIcon, r.color)
	line := fmt.Sprintf("%s %s", icon.String(), path)
	if notice != nil {
		style := applyColorToStyle(dimStyle, r.color)
		line += style.Render(fmt.Sprintf(" (%s)", notice))
	}
	_, _ = fmt.Fprintln(r.output, line)
}

// Edits prints the edit list of one file as a table
func (r *Reporter) Edits(path string, ops []edit.Operation) {
	if len(ops) == 0 {
		style := applyColorToStyle(dimStyle, r.color)
		_, _ = fmt.Fprintln(r.output, style.Render(path+": no edits"))
		return
	}

	rows := make([][]string, 0, len(ops))
	for _, op := range ops {
		text := ""
		if op.Kind == edit.Insert {
			text = strconv.Quote(op.Text)
		}
		rows = append(rows, []string{
			op.Kind.String(),
			strconv.Itoa(op.Start),
			strconv.Itoa(op.End),
			text,
		})
	}

	borderStyle := lipgloss.NewStyle()
	if r.color.ShouldUseColors() {
		borderStyle = borderStyle.Foreground(lipgloss.Color("8"))
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row < 0 || row >= len(ops) || col != 0 {
				return lipgloss.NewStyle()
			}
			if ops[row].Kind == edit.Insert {
				return applyColorToStyle(insertStyle, r.color)
			}
			return applyColorToStyle(deleteStyle, r.color)
		}).
		Headers("Edit", "Start", "End", "Text").
		Rows(rows...)

	_, _ = fmt.Fprintln(r.output, path)
	_, _ = fmt.Fprintln(r.output, t)
}

// Summary prints the totals of every file reported so far
func (r *Reporter) Summary() {
	total := r.formatted + r.unchanged + r.skipped + r.pending
	if total == 0 {
		return
	}
	_, _ = fmt.Fprintln(r.output)
	switch {
	case r.pending > 0:
		icon := applyColorToIcon(errorIcon, r.color)
		_, _ = fmt.Fprintf(r.output, "%s %d of %d files need formatting\n", icon.String(), r.pending, total)
	case r.skipped > 0:
		icon := applyColorToIcon(skipIcon, r.color)
		_, _ = fmt.Fprintf(r.output, "%s %d formatted, %d skipped\n", icon.String(), r.formatted, r.skipped)
	default:
		icon := applyColorToIcon(successIcon, r.color)
		_, _ = fmt.Fprintf(r.output, "%s %d formatted, %d unchanged\n", icon.String(), r.formatted, r.unchanged)
	}
}

// Pending is the number of files reported by NeedsFormatting
func (r *Reporter) Pending() int {
	return r.pending
}
