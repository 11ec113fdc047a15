package lexer

import (
	"lox/internal/diag"
	"lox/internal/source"
	"lox/internal/token"
)

// scanString lexes a "..." literal. Newlines inside the literal are
// allowed (multi-line strings); there is no escape processing, a backslash
// is an ordinary byte. That is a documented limit of the language, not an
// omission. An unterminated literal is reported at the point where
// scanning stopped and yields no token at all.
func (lx *Lexer) scanString() (token.Token, bool) {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		if lx.cursor.Bump() == '"' {
			sp := lx.cursor.SpanFrom(start)
			// payload is strictly between the quotes
			value := string(lx.file.Content[sp.Start+1 : sp.End-1])
			return token.Token{
				Kind:    token.StringLit,
				Span:    sp,
				Text:    string(lx.file.Content[sp.Start:sp.End]),
				Literal: token.StringLiteral(value),
			}, true
		}
	}

	// EOF before the closing quote
	stop := source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
	open := source.Span{File: lx.file.ID, Start: uint32(start), End: uint32(start) + 1}
	lx.errLex(diag.LexUnterminatedString, stop, "unterminated string",
		diag.Note{Span: open, Msg: "string starts here"})
	return token.Token{}, false
}
