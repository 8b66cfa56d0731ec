package lexer

// scanNumber reads a run of digits and decimal points. No sign, exponent,
// or validation: "1.2.3" is one token.
func (lx *Lexer) scanNumber() Token {
	c := &lx.cur
	start := c.mark()
	for !c.eof() && (isDigit(c.peek()) || c.peek() == '.') {
		c.bump()
	}
	return c.token(Number, start)
}

// scanString reads a quoted string closed by the same quote character it
// opened with. A backslash always escapes the following byte.
func (lx *Lexer) scanString() Token {
	c := &lx.cur
	start := c.mark()
	quote := c.bump()
	for !c.eof() {
		b := c.bump()
		if b == '\\' {
			c.bump()
			continue
		}
		if b == quote {
			return c.token(String, start)
		}
	}
	tok := c.token(String, start)
	tok.Unterminated = true
	return tok
}
