package formatter

import (
	"github.com/kamilmatejuk/ascfmt/internal/edit"
	"github.com/kamilmatejuk/ascfmt/internal/events"
	"github.com/kamilmatejuk/ascfmt/internal/header"
)

// Variant formats documents of one asciicast version.
type Variant interface {
	// Version is the header "version" value this variant handles.
	Version() int
	// NormalizeConfig plans the header edits and returns the offset where
	// event data begins.
	NormalizeConfig(text string) ([]edit.Operation, int, error)
	// FormatEvents plans the edits for the event data after bodyStart.
	FormatEvents(text string, bodyStart int) []edit.Operation
}

// V1 formats version 1 documents. The header is written one key per line.
type V1 struct {
	Defaults header.Defaults
}

func (V1) Version() int { return 1 }

func (v V1) NormalizeConfig(text string) ([]edit.Operation, int, error) {
	n := header.Normalizer{Defaults: v.Defaults, Style: header.Indented}
	return n.Normalize(text)
}

// FormatEvents returns no edits. Version 1 keeps its frames inside the
// header's "stdout" array and its layout rules have not been settled, so
// they are not guessed from version 2.
func (V1) FormatEvents(string, int) []edit.Operation {
	return nil
}

// V2 formats version 2 documents: a single-line header followed by one
// aligned event per line.
type V2 struct {
	Defaults header.Defaults
}

func (V2) Version() int { return 2 }

func (v V2) NormalizeConfig(text string) ([]edit.Operation, int, error) {
	n := header.Normalizer{Defaults: v.Defaults, Style: header.SingleLine}
	return n.Normalize(text)
}

func (V2) FormatEvents(text string, bodyStart int) []edit.Operation {
	descs := events.Scan(text, bodyStart)
	return events.PlanEdits(text, descs, events.ComputeWidths(descs), bodyStart)
}
