// Package edit describes text changes as insertions and deletions against
// an unmodified source text.
//
// Offsets always refer to the original text. A list of operations is valid
// when no two deletions share a byte and no insertion falls strictly inside
// a deletion; such a list can be applied in one pass without adjusting
// offsets.
package edit

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrOverlap is returned when two operations touch the same bytes.
	ErrOverlap = errors.New("overlapping edits")
	// ErrOutOfRange is returned when an operation lies outside the text.
	ErrOutOfRange = errors.New("edit out of range")
)

// Kind is the type of an operation.
type Kind uint8

const (
	Insert Kind = iota
	Delete
)

func (k Kind) String() string {
	switch k {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "insert":
		*k = Insert
	case "delete":
		*k = Delete
	default:
		return fmt.Errorf("unknown edit kind %q", string(b))
	}
	return nil
}

// Operation is a single insertion or deletion. Insertions have End equal to
// Start; deletions have an empty Text.
type Operation struct {
	Kind  Kind   `json:"kind"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text,omitempty"`
}

// NewInsert returns an operation inserting text at offset.
func NewInsert(offset int, text string) Operation {
	return Operation{Kind: Insert, Start: offset, End: offset, Text: text}
}

// NewDelete returns an operation removing [start, end).
func NewDelete(start, end int) Operation {
	return Operation{Kind: Delete, Start: start, End: end}
}

func (op Operation) String() string {
	if op.Kind == Insert {
		return fmt.Sprintf("insert %d %q", op.Start, op.Text)
	}
	return fmt.Sprintf("delete %d-%d", op.Start, op.End)
}

// conflict reports whether two operations overlap. Ranges are half-open.
// Two insertions never conflict, and an insertion at either edge of a
// deletion does not conflict with it.
func conflict(a, b Operation) bool {
	if a.Kind == Insert && b.Kind == Insert {
		return false
	}
	if a.Kind == Insert {
		return b.Start < a.Start && a.Start < b.End
	}
	if b.Kind == Insert {
		return a.Start < b.Start && b.Start < a.End
	}
	return a.Start < b.End && b.Start < a.End
}

// sorted returns a copy of ops ordered by start offset. At equal offsets
// insertions come before deletions; otherwise input order is kept.
func sorted(ops []Operation) []Operation {
	out := append([]Operation(nil), ops...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].Kind == Insert && out[j].Kind == Delete
	})
	return out
}

// Validate checks that ops are well formed and pairwise non-overlapping.
func Validate(ops []Operation) error {
	for _, op := range ops {
		if op.Start < 0 || op.End < op.Start {
			return fmt.Errorf("%w: %s", ErrOutOfRange, op)
		}
		if op.Kind == Insert && op.End != op.Start {
			return fmt.Errorf("%w: insert with non-empty range: %s", ErrOutOfRange, op)
		}
	}

	ordered := sorted(ops)
	// Only deletions can contain another operation, so it is enough to
	// compare every operation with the furthest-reaching earlier deletion.
	var last *Operation
	for i := range ordered {
		op := ordered[i]
		if last != nil && conflict(*last, op) {
			return fmt.Errorf("%w: %s and %s", ErrOverlap, *last, op)
		}
		if op.Kind == Delete && (last == nil || op.End > last.End) {
			last = &ordered[i]
		}
	}
	return nil
}

// Apply returns text with ops applied. Insertions at the same offset are
// written in list order.
func Apply(text string, ops []Operation) (string, error) {
	if err := Validate(ops); err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(text))
	pos := 0
	for _, op := range sorted(ops) {
		if op.End > len(text) {
			return "", fmt.Errorf("%w: %s exceeds text length %d", ErrOutOfRange, op, len(text))
		}
		if op.Kind == Delete && op.End == op.Start {
			continue
		}
		b.WriteString(text[pos:op.Start])
		pos = op.Start
		switch op.Kind {
		case Insert:
			b.WriteString(op.Text)
		case Delete:
			pos = op.End
		}
	}
	b.WriteString(text[pos:])
	return b.String(), nil
}

// Changed reports whether ops would change the text at all.
func Changed(ops []Operation) bool {
	for _, op := range ops {
		if op.Kind == Insert && op.Text != "" {
			return true
		}
		if op.Kind == Delete && op.End > op.Start {
			return true
		}
	}
	return false
}
