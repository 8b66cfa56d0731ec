// Package events scans the event lines of an asciicast version 2 document
// and plans the edits that align them into columns.
//
// Scanning and planning both read the same unmodified text. Every
// descriptor records byte ranges in that text, and the planner only emits
// edits inside the ranges owned by a single event, so the edit lists of
// different events never overlap.
package events

import (
	"github.com/kamilmatejuk/ascfmt/internal/lexer"
)

// Sentinel token texts used when an event is missing a field.
const (
	SentinelNumber  = "0"
	SentinelType    = `"o"`
	SentinelPayload = `""`
)

// Token is one field of an event. A synthetic token stands in for a field
// missing from the text; it has an empty range positioned where the field
// should have been.
type Token struct {
	Text      string
	Start     int
	End       int
	Synthetic bool
}

// Descriptor holds the positions of one event's fields in the original text.
type Descriptor struct {
	// Open is the offset of the '['.
	Open int
	// Close is the offset of the matching ']', or -1 when there is none.
	Close   int
	Number  Token
	Type    Token
	Payload Token
}

// Scan returns a descriptor for every event at or after bodyStart.
func Scan(text string, bodyStart int) []Descriptor {
	lx := lexer.New(text, bodyStart)
	var descs []Descriptor
	for {
		tok := lx.Next()
		switch tok.Kind {
		case lexer.EOF:
			return descs
		case lexer.LBracket:
			descs = append(descs, scanEvent(lx, tok))
		}
	}
}

// scanEvent reads the fields of the event opened by open. Each field
// search stops at the next '[' so a broken event cannot swallow the one
// after it.
func scanEvent(lx *lexer.Lexer, open lexer.Token) Descriptor {
	d := Descriptor{Open: open.Start, Close: -1}

	// A string before any number means the timestamp is missing, not
	// that the string should be skipped.
	d.Number = find(lx, lexer.Number, open.End, SentinelNumber, lexer.String)
	d.Type = find(lx, lexer.String, d.Number.End, SentinelType)
	d.Payload = find(lx, lexer.String, d.Type.End, SentinelPayload)

	for {
		tok := lx.Peek()
		switch tok.Kind {
		case lexer.EOF, lexer.LBracket:
			return d
		case lexer.RBracket:
			lx.Next()
			d.Close = tok.Start
			return d
		}
		lx.Next()
	}
}

// find consumes tokens up to and including the first one of kind want.
// When a '[', ']', the end of text, or one of the extra stop kinds comes
// first it leaves that token unread and returns a synthetic token at pos.
func find(lx *lexer.Lexer, want lexer.Kind, pos int, sentinel string, stops ...lexer.Kind) Token {
	for {
		tok := lx.Peek()
		if tok.Kind == want {
			lx.Next()
			return Token{Text: tok.Text, Start: tok.Start, End: tok.End}
		}
		if tok.Is(lexer.EOF, lexer.LBracket, lexer.RBracket) || tok.Is(stops...) {
			return Token{Text: sentinel, Start: pos, End: pos, Synthetic: true}
		}
		lx.Next()
	}
}
