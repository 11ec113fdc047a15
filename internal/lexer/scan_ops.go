package lexer

import (
	"fmt"

	"lox/internal/diag"
	"lox/internal/token"
)

// scanOperatorOrPunct handles all punctuation and operator lexemes.
// Two-character operators first (greedy), then single characters.
// An unrecognized byte is reported and consumed; ok is false and no token
// is emitted for it.
func (lx *Lexer) scanOperatorOrPunct() (token.Token, bool) {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) (token.Token, bool) {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{
			Kind:    k,
			Span:    sp,
			Text:    string(lx.file.Content[sp.Start:sp.End]),
			Literal: token.NoLiteral,
		}, true
	}

	switch {
	case lx.try2('!', '='):
		return emit(token.BangEq)
	case lx.try2('=', '='):
		return emit(token.EqEq)
	case lx.try2('<', '='):
		return emit(token.LtEq)
	case lx.try2('>', '='):
		return emit(token.GtEq)
	}

	ch := lx.cursor.Bump()
	switch ch {
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	case '{':
		return emit(token.LBrace)
	case '}':
		return emit(token.RBrace)
	case ',':
		return emit(token.Comma)
	case '.':
		return emit(token.Dot)
	case '-':
		return emit(token.Minus)
	case '+':
		return emit(token.Plus)
	case ';':
		return emit(token.Semicolon)
	case '/':
		// '//' was already taken by skipTrivia
		return emit(token.Slash)
	case '*':
		return emit(token.Star)
	case '!':
		return emit(token.Bang)
	case '=':
		return emit(token.Assign)
	case '<':
		return emit(token.Lt)
	case '>':
		return emit(token.Gt)
	}

	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnexpectedChar, sp, fmt.Sprintf("unexpected character %q", ch))
	return token.Token{}, false
}
