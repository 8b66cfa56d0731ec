package header

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/kamilmatejuk/ascfmt/internal/lexer"
)

// Style selects how a normalized header is written.
type Style int

const (
	// SingleLine writes the whole object on one line with ", " and ": "
	// separators. Players expect version 2 headers in this form.
	SingleLine Style = iota
	// Indented pretty-prints with four-space indentation.
	Indented
)

// Render serializes cfg in the given style, without a trailing newline.
func Render(cfg *Config, style Style) (string, error) {
	compact, err := encodeCompact(cfg)
	if err != nil {
		return "", err
	}
	if style == Indented {
		var buf bytes.Buffer
		if err := json.Indent(&buf, compact, "", "    "); err != nil {
			return "", err
		}
		return buf.String(), nil
	}
	return spaceSeparators(string(compact)), nil
}

// encodeCompact writes cfg as compact JSON in key order.
func encodeCompact(cfg *Config) (json.RawMessage, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for pair := cfg.Oldest(); pair != nil; pair = pair.Next() {
		if !first {
			buf.WriteByte(',')
		}
		first = false

		key, err := marshalString(pair.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if err := json.Compact(&buf, pair.Value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalString encodes s as a JSON string without HTML escaping.
func marshalString(s string) (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// spaceSeparators puts one space after every comma and colon that is not
// inside a string.
func spaceSeparators(compact string) string {
	var b strings.Builder
	b.Grow(len(compact) + len(compact)/8)
	for _, tok := range lexer.Tokenize(compact) {
		switch tok.Kind {
		case lexer.Comma:
			b.WriteString(", ")
		case lexer.Colon:
			b.WriteString(": ")
		default:
			b.WriteString(tok.Text)
		}
	}
	return b.String()
}
