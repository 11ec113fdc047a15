package token_test

import (
	"testing"

	"lox/internal/token"
)

func TestNoLiteral(t *testing.T) {
	l := token.NoLiteral
	if !l.IsNone() {
		t.Fatal("NoLiteral must report IsNone")
	}
	if _, ok := l.AsString(); ok {
		t.Error("NoLiteral must not carry a string")
	}
	if _, ok := l.AsNumber(); ok {
		t.Error("NoLiteral must not carry a number")
	}
	if got := l.String(); got != "<none>" {
		t.Errorf("String() = %q, want \"<none>\"", got)
	}
}

func TestStringLiteral(t *testing.T) {
	l := token.StringLiteral("hi")
	if l.IsNone() {
		t.Fatal("string literal must not be none")
	}
	if s, ok := l.AsString(); !ok || s != "hi" {
		t.Errorf("AsString = %q %v, want \"hi\" true", s, ok)
	}
	if _, ok := l.AsNumber(); ok {
		t.Error("string literal must not carry a number")
	}
	if got := l.String(); got != `"hi"` {
		t.Errorf("String() = %q, want %q", got, `"hi"`)
	}
}

func TestNumberLiteral(t *testing.T) {
	l := token.NumberLiteral(12.5)
	if n, ok := l.AsNumber(); !ok || n != 12.5 {
		t.Errorf("AsNumber = %v %v, want 12.5 true", n, ok)
	}
	if _, ok := l.AsString(); ok {
		t.Error("number literal must not carry a string")
	}
	if got := l.String(); got != "12.5" {
		t.Errorf("String() = %q, want \"12.5\"", got)
	}
	// whole numbers render without a trailing .0, same as %g
	if got := token.NumberLiteral(123).String(); got != "123" {
		t.Errorf("String() = %q, want \"123\"", got)
	}
}
