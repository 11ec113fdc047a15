package lexer

import (
	"lox/internal/token"
)

// scanIdentOrKeyword lexes a maximal [A-Za-z0-9_] run (first byte already
// known to be a letter or underscore) and checks it against the keyword
// table. Only an exact whole-lexeme match is a keyword: "or" is KwOr,
// "orchid" is an identifier. Token.Text is the exact source slice.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	lx.cursor.Bump()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text, Literal: token.NoLiteral}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text, Literal: token.NoLiteral}
}
