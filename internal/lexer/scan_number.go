package lexer

import (
	"strconv"

	"lox/internal/token"
)

// scanNumber lexes a maximal digit run with an optional fraction:
// [0-9]+ ('.' [0-9]+)?. A trailing '.' with no digit after it is left for
// the next token (so "12.sqrt()" style dispatch stays possible). No sign,
// no exponent, no alternate radices.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	// fraction only when the '.' is followed by at least one digit
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		lx.cursor.Bump() // '.'
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	// the matched text is always a valid float
	value, _ := strconv.ParseFloat(text, 64)
	return token.Token{
		Kind:    token.NumberLit,
		Span:    sp,
		Text:    text,
		Literal: token.NumberLiteral(value),
	}
}
