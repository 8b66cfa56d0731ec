package lexer

// cursor is a byte position in the source text.
type cursor struct {
	src string
	off int
}

func (c *cursor) eof() bool {
	return c.off >= len(c.src)
}

// peek returns the current byte, or 0 at end of text.
func (c *cursor) peek() byte {
	if c.eof() {
		return 0
	}
	return c.src[c.off]
}

// peek2 returns the current and following byte.
func (c *cursor) peek2() (b0, b1 byte, ok bool) {
	if c.off+1 >= len(c.src) {
		return 0, 0, false
	}
	return c.src[c.off], c.src[c.off+1], true
}

// bump advances one byte and returns the byte it stepped over.
func (c *cursor) bump() byte {
	if c.eof() {
		return 0
	}
	b := c.src[c.off]
	c.off++
	return b
}

func (c *cursor) mark() int {
	return c.off
}

// token builds a token of kind k spanning from mark m to the cursor.
func (c *cursor) token(k Kind, m int) Token {
	return Token{Kind: k, Start: m, End: c.off, Text: c.src[m:c.off]}
}
