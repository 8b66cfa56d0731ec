// Package header normalizes the header object at the top of an asciicast
// document: it finds the object, fills in missing keys, puts the required
// keys first, and plans the edits that replace the original header with
// the normalized one.
package header

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/kamilmatejuk/ascfmt/internal/edit"
	"github.com/kamilmatejuk/ascfmt/internal/lexer"
)

// ErrMalformedHeader is returned when the header cannot be parsed even
// after closing any unbalanced braces.
var ErrMalformedHeader = errors.New("couldn't format json at the top of file")

// Normalizer plans header edits for one document.
type Normalizer struct {
	Defaults Defaults
	Style    Style
}

// Normalize plans the edits that rewrite the header of text and returns
// the offset where event data begins.
//
// A document whose first '[' comes before any '{' has no header; a default
// one is inserted at offset 0 and the body starts at 0. Otherwise the
// header region runs from offset 0 to the brace closing the first object,
// plus any trailing blanks and one line break.
func (n Normalizer) Normalize(text string) ([]edit.Operation, int, error) {
	open := strings.IndexByte(text, '{')
	arr := strings.IndexByte(text, '[')
	if open == -1 || (arr != -1 && arr < open) {
		out, err := Render(n.Defaults.Config(), n.Style)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to render default header: %w", err)
		}
		return []edit.Operation{edit.NewInsert(0, out+"\n")}, 0, nil
	}

	end, candidate := extract(text, open)
	cfg, err := Parse(candidate)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
	}

	complete, err := n.Complete(cfg)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
	}
	out, err := Render(complete, n.Style)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
	}

	regionEnd := skipLineEnd(text, end)
	replacement := out + "\n"
	if text[:regionEnd] == replacement {
		return nil, regionEnd, nil
	}
	return []edit.Operation{
		edit.NewDelete(0, regionEnd),
		edit.NewInsert(0, replacement),
	}, regionEnd, nil
}

// extract returns the end offset of the object opening at open, and the
// object text with any missing closing braces appended. Braces inside
// strings are not counted.
func extract(text string, open int) (int, string) {
	lx := lexer.New(text, open)
	depth := 0
	for {
		tok := lx.Next()
		switch tok.Kind {
		case lexer.EOF:
			return len(text), text[open:] + strings.Repeat("}", depth)
		case lexer.LBrace:
			depth++
		case lexer.RBrace:
			depth--
			if depth == 0 {
				return tok.End, text[open:tok.End]
			}
		}
	}
}

// skipLineEnd advances past spaces, tabs, and a single line break.
func skipLineEnd(text string, i int) int {
	for i < len(text) && (text[i] == ' ' || text[i] == '\t') {
		i++
	}
	switch {
	case strings.HasPrefix(text[i:], "\r\n"):
		i += 2
	case strings.HasPrefix(text[i:], "\n"):
		i++
	}
	return i
}

// Parse decodes a JSON object, keeping member order.
func Parse(data string) (*Config, error) {
	var probe map[string]any
	if err := json.Unmarshal([]byte(data), &probe); err != nil {
		return nil, err
	}
	cfg := orderedmap.New[string, json.RawMessage]()
	if err := cfg.UnmarshalJSON([]byte(data)); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Complete returns a copy of cfg with every required key present, required
// keys first in canonical order and the remaining keys after them in their
// original order. An "env" object gets the same treatment for its keys.
func (n Normalizer) Complete(cfg *Config) (*Config, error) {
	out := orderedmap.New[string, json.RawMessage]()
	for _, key := range RequiredKeys {
		v, ok := cfg.Get(key)
		if !ok {
			v = n.Defaults.value(key)
		}
		if key == "env" {
			var err error
			if v, err = n.completeEnv(v); err != nil {
				return nil, fmt.Errorf("env: %w", err)
			}
		}
		out.Set(key, v)
	}
	for pair := cfg.Oldest(); pair != nil; pair = pair.Next() {
		if _, ok := out.Get(pair.Key); !ok {
			out.Set(pair.Key, pair.Value)
		}
	}
	return out, nil
}

func (n Normalizer) completeEnv(raw json.RawMessage) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		// not an object; leave whatever the author wrote
		return raw, nil
	}
	env, err := Parse(string(trimmed))
	if err != nil {
		return nil, err
	}
	out := orderedmap.New[string, json.RawMessage]()
	for _, key := range RequiredEnvKeys {
		v, ok := env.Get(key)
		if !ok {
			v = n.Defaults.envValue(key)
		}
		out.Set(key, v)
	}
	for pair := env.Oldest(); pair != nil; pair = pair.Next() {
		if _, ok := out.Get(pair.Key); !ok {
			out.Set(pair.Key, pair.Value)
		}
	}
	return encodeCompact(out)
}
