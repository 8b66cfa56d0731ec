// Package completion provides shell completion scripts for ascfmt.
package completion

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/template"

	"github.com/kamilmatejuk/ascfmt/internal/color"
)

// Shell completion script generators
// (populated in init to avoid an initialization cycle through execute)
var generators map[string]func(io.Writer) error

func init() {
	generators = map[string]func(io.Writer) error{
		"bash": GenerateBash,
		"zsh":  GenerateZsh,
		"fish": GenerateFish,
	}
}

// ColorValues are valid values for --color flag
var ColorValues = func() []string {
	values := make([]string, len(color.Modes))
	for i, m := range color.Modes {
		values[i] = string(m)
	}
	return values
}()

// Generate writes the completion script for the given shell to the writer.
func Generate(w io.Writer, shell string) error {
	gen, ok := generators[shell]
	if !ok {
		return fmt.Errorf("unsupported shell: %s (supported: %s)", shell, strings.Join(SupportedShells(), ", "))
	}
	return gen(w)
}

// SupportedShells returns a list of supported shell names.
func SupportedShells() []string {
	shells := make([]string, 0, len(generators))
	for shell := range generators {
		shells = append(shells, shell)
	}
	sort.Strings(shells)
	return shells
}

type templateData struct {
	ColorValues string
	ShellValues string
}

func execute(w io.Writer, name, text string) error {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, templateData{
		ColorValues: strings.Join(ColorValues, " "),
		ShellValues: strings.Join(SupportedShells(), " "),
	})
}
