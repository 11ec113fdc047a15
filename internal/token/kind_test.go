package token_test

import (
	"testing"

	"lox/internal/source"
	"lox/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}}
}

func TestIsLiteral(t *testing.T) {
	for _, k := range []token.Kind{token.StringLit, token.NumberLit} {
		if !tok(k).IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	non := []token.Kind{token.Ident, token.KwTrue, token.KwNil, token.Plus, token.LParen, token.EOF}
	for _, k := range non {
		if tok(k).IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestIsPunctOrOp(t *testing.T) {
	ops := []token.Kind{
		token.LParen, token.RParen, token.LBrace, token.RBrace,
		token.Comma, token.Dot, token.Minus, token.Plus, token.Semicolon,
		token.Slash, token.Star,
		token.Bang, token.BangEq, token.Assign, token.EqEq,
		token.Lt, token.LtEq, token.Gt, token.GtEq,
	}
	for _, k := range ops {
		if !tok(k).IsPunctOrOp() {
			t.Fatalf("%v should be punct/op", k)
		}
	}
	for _, k := range []token.Kind{token.Ident, token.StringLit, token.KwAnd, token.EOF} {
		if tok(k).IsPunctOrOp() {
			t.Fatalf("%v must NOT be punct/op", k)
		}
	}
}

func TestIsKeyword(t *testing.T) {
	kws := []token.Kind{
		token.KwAnd, token.KwClass, token.KwElse, token.KwFalse,
		token.KwFun, token.KwFor, token.KwIf, token.KwNil, token.KwOr,
		token.KwPrint, token.KwReturn, token.KwSuper, token.KwThis,
		token.KwTrue, token.KwVar, token.KwWhile,
	}
	for _, k := range kws {
		if !tok(k).IsKeyword() {
			t.Fatalf("%v should be keyword", k)
		}
	}
	for _, k := range []token.Kind{token.Ident, token.NumberLit, token.Dot, token.EOF} {
		if tok(k).IsKeyword() {
			t.Fatalf("%v must NOT be keyword", k)
		}
	}
}

func TestKindString(t *testing.T) {
	cases := map[token.Kind]string{
		token.EOF:       "EOF",
		token.Ident:     "Ident",
		token.StringLit: "StringLit",
		token.NumberLit: "NumberLit",
		token.BangEq:    "BangEq",
		token.KwWhile:   "KwWhile",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", uint8(k), got, want)
		}
	}
	if got := token.Kind(255).String(); got != "Invalid" {
		t.Errorf("out-of-range kind String() = %q, want \"Invalid\"", got)
	}
}
