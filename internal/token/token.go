package token

import (
	"lox/internal/source"
)

// Token represents a single source token with its location and decoded
// literal value. Tokens are never mutated after the lexer emits them.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Literal Literal
}

// IsLiteral reports whether the token is a string or number literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case StringLit, NumberLit:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case LParen, RParen, LBrace, RBrace, Comma, Dot, Minus, Plus, Semicolon,
		Slash, Star, Bang, BangEq, Assign, EqEq, Lt, LtEq, Gt, GtEq:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwAnd, KwClass, KwElse, KwFalse, KwFun, KwFor, KwIf, KwNil, KwOr,
		KwPrint, KwReturn, KwSuper, KwThis, KwTrue, KwVar, KwWhile:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsEOF reports whether the token is the end-of-input sentinel.
func (t Token) IsEOF() bool { return t.Kind == EOF }
