package lexer

import "fmt"

// Kind identifies the class of a token.
type Kind uint8

const (
	Invalid Kind = iota
	Number
	String
	LBracket
	RBracket
	LBrace
	RBrace
	Comma
	Colon
	Space
	Other
	EOF
)

var kindNames = [...]string{
	Invalid:  "Invalid",
	Number:   "Number",
	String:   "String",
	LBracket: "LBracket",
	RBracket: "RBracket",
	LBrace:   "LBrace",
	RBrace:   "RBrace",
	Comma:    "Comma",
	Colon:    "Colon",
	Space:    "Space",
	Other:    "Other",
	EOF:      "EOF",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Token is a typed slice of the source text. Start and End are byte offsets
// into the text the lexer was created with, End exclusive.
type Token struct {
	Kind  Kind
	Start int
	End   int
	Text  string
	// Unterminated is set on a String token that ran to the end of the
	// text without finding its closing quote.
	Unterminated bool
}

// Len returns the token length in bytes.
func (t Token) Len() int {
	return t.End - t.Start
}

// Is reports whether the token is of any of the given kinds.
func (t Token) Is(kinds ...Kind) bool {
	for _, k := range kinds {
		if t.Kind == k {
			return true
		}
	}
	return false
}

func (t Token) String() string {
	return fmt.Sprintf("%s %d-%d %q", t.Kind, t.Start, t.End, t.Text)
}
