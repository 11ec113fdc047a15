package token

import (
	"fmt"
	"strconv"
)

// LiteralKind discriminates the decoded payload of a literal token.
type LiteralKind uint8

const (
	// LiteralNone marks tokens that carry no decoded value.
	LiteralNone LiteralKind = iota
	// LiteralString marks a decoded string payload.
	LiteralString
	// LiteralNumber marks a decoded float64 payload.
	LiteralNumber
)

// Literal is the decoded value of a literal token. Exactly three cases:
// absent, string payload (StringLit), numeric payload (NumberLit).
// Consumers switch on Kind instead of inspecting runtime types.
type Literal struct {
	kind LiteralKind
	str  string
	num  float64
}

// NoLiteral is the absent payload carried by every non-literal token.
var NoLiteral = Literal{}

// StringLiteral wraps a decoded string value.
func StringLiteral(s string) Literal {
	return Literal{kind: LiteralString, str: s}
}

// NumberLiteral wraps a decoded numeric value.
func NumberLiteral(n float64) Literal {
	return Literal{kind: LiteralNumber, num: n}
}

// Kind returns the payload discriminator.
func (l Literal) Kind() LiteralKind { return l.kind }

// IsNone reports whether the literal is absent.
func (l Literal) IsNone() bool { return l.kind == LiteralNone }

// AsString returns the string payload; ok is false for non-string literals.
func (l Literal) AsString() (s string, ok bool) {
	return l.str, l.kind == LiteralString
}

// AsNumber returns the numeric payload; ok is false for non-number literals.
func (l Literal) AsNumber() (n float64, ok bool) {
	return l.num, l.kind == LiteralNumber
}

func (l Literal) String() string {
	switch l.kind {
	case LiteralString:
		return strconv.Quote(l.str)
	case LiteralNumber:
		return fmt.Sprintf("%g", l.num)
	}
	return "<none>"
}
