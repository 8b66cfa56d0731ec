// Package formatter formats asciicast documents. It detects the version of
// a document, hands it to the matching Variant, and returns the edits that
// turn the document into its formatted form.
package formatter

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/kamilmatejuk/ascfmt/internal/edit"
	"github.com/kamilmatejuk/ascfmt/internal/header"
	"github.com/kamilmatejuk/ascfmt/internal/version"
)

// ErrUnknownVersion is reported when no variant handles the detected version.
var ErrUnknownVersion = errors.New("unknown version")

// Result is the outcome of formatting one document.
type Result struct {
	// Version is the detected asciicast version.
	Version int
	// Edits are offsets into the original text. Empty when Notice is set.
	Edits []edit.Operation
	// Notice explains why a document was left untouched. It wraps
	// ErrUnknownVersion or header.ErrMalformedHeader.
	Notice error
}

// Changed reports whether applying the result would change the text.
func (r Result) Changed() bool {
	return edit.Changed(r.Edits)
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithDefaults sets the values used for missing header keys.
func WithDefaults(d header.Defaults) Option {
	return func(f *Formatter) {
		f.defaults = d
	}
}

// WithLogger sets the logger for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Formatter) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithVariant registers v for its version, replacing any built-in variant.
func WithVariant(v Variant) Option {
	return func(f *Formatter) {
		f.variants[v.Version()] = v
	}
}

// Formatter dispatches documents to variants by version.
type Formatter struct {
	defaults header.Defaults
	logger   *slog.Logger
	variants map[int]Variant
}

// New creates a formatter with the V1 and V2 variants. Header defaults
// come from the environment unless WithDefaults is given.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		defaults: header.NewDefaults(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		variants: make(map[int]Variant),
	}
	for _, opt := range opts {
		opt(f)
	}
	if _, ok := f.variants[1]; !ok {
		f.variants[1] = V1{Defaults: f.defaults}
	}
	if _, ok := f.variants[2]; !ok {
		f.variants[2] = V2{Defaults: f.defaults}
	}
	return f
}

// Format returns the edits that format text. Problems with the document
// are reported in Result.Notice and never leave partial edits behind.
func (f *Formatter) Format(text string) Result {
	v := version.Detect(text)
	res := Result{Version: v}

	variant, ok := f.variants[v]
	if !ok {
		res.Notice = fmt.Errorf("%w: %d", ErrUnknownVersion, v)
		f.logger.Debug("no variant for version", "version", v)
		return res
	}

	configEdits, bodyStart, err := variant.NormalizeConfig(text)
	if err != nil {
		res.Notice = err
		f.logger.Debug("header not formatted", "version", v, "error", err)
		return res
	}
	eventEdits := variant.FormatEvents(text, bodyStart)

	res.Edits = make([]edit.Operation, 0, len(configEdits)+len(eventEdits))
	res.Edits = append(res.Edits, configEdits...)
	res.Edits = append(res.Edits, eventEdits...)
	f.logger.Debug("planned edits",
		"version", v,
		"body_start", bodyStart,
		"header_edits", len(configEdits),
		"event_edits", len(eventEdits))
	return res
}

// Apply formats text and returns the result together with the formatted
// text. The text is returned unchanged when a notice is set.
func (f *Formatter) Apply(text string) (Result, string, error) {
	res := f.Format(text)
	if res.Notice != nil {
		return res, text, nil
	}
	out, err := edit.Apply(text, res.Edits)
	if err != nil {
		return res, text, fmt.Errorf("failed to apply edits: %w", err)
	}
	return res, out, nil
}

// Format formats text with a formatter using environment defaults.
func Format(text string) Result {
	return New().Format(text)
}
