// Package lexer splits asciicast text into typed tokens.
//
// The grammar is JSON-adjacent rather than JSON: numbers are any run of
// digits and decimal points, strings may be single or double quoted, and
// anything unrecognised becomes an Other token instead of an error. Every
// token keeps its byte range in the original text so callers can plan
// edits against it.
package lexer

// Lexer produces tokens from a fixed source text.
type Lexer struct {
	cur    cursor
	peeked *Token
}

// New returns a lexer positioned at start. Out of range starts are clamped.
func New(src string, start int) *Lexer {
	if start < 0 {
		start = 0
	}
	if start > len(src) {
		start = len(src)
	}
	return &Lexer{cur: cursor{src: src, off: start}}
}

// Tokenize returns every token of src, excluding the final EOF.
func Tokenize(src string) []Token {
	lx := New(src, 0)
	var toks []Token
	for {
		tok := lx.Next()
		if tok.Kind == EOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

// Offset is the position of the next unread byte.
func (lx *Lexer) Offset() int {
	if lx.peeked != nil {
		return lx.peeked.Start
	}
	return lx.cur.off
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() Token {
	if lx.peeked == nil {
		tok := lx.scan()
		lx.peeked = &tok
	}
	return *lx.peeked
}

// Next consumes and returns the next token. At end of text it keeps
// returning an empty EOF token.
func (lx *Lexer) Next() Token {
	if lx.peeked != nil {
		tok := *lx.peeked
		lx.peeked = nil
		return tok
	}
	return lx.scan()
}

// NextSignificant consumes tokens until one that is not Space.
func (lx *Lexer) NextSignificant() Token {
	for {
		tok := lx.Next()
		if tok.Kind != Space {
			return tok
		}
	}
}

func (lx *Lexer) scan() Token {
	c := &lx.cur
	start := c.mark()
	if c.eof() {
		return Token{Kind: EOF, Start: start, End: start}
	}

	b := c.peek()
	switch {
	case isSpace(b):
		for !c.eof() && isSpace(c.peek()) {
			c.bump()
		}
		return c.token(Space, start)
	case isDigit(b):
		return lx.scanNumber()
	case b == '.':
		if _, b1, ok := c.peek2(); ok && isDigit(b1) {
			return lx.scanNumber()
		}
	case isQuote(b):
		return lx.scanString()
	}

	if k, ok := punct[b]; ok {
		c.bump()
		return c.token(k, start)
	}

	for !c.eof() && isOther(c.peek()) {
		c.bump()
	}
	if c.mark() == start {
		// a lone '.' that does not start a number
		c.bump()
	}
	return c.token(Other, start)
}

var punct = map[byte]Kind{
	'[': LBracket,
	']': RBracket,
	'{': LBrace,
	'}': RBrace,
	',': Comma,
	':': Colon,
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isQuote(b byte) bool {
	return b == '"' || b == '\''
}

func isOther(b byte) bool {
	if isSpace(b) || isDigit(b) || isQuote(b) || b == '.' {
		return false
	}
	_, p := punct[b]
	return !p
}
