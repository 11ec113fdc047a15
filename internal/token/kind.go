package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token. The lexer never emits it;
	// it exists as a defensive zero value.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// StringLit represents a string literal token.
	StringLit
	// NumberLit represents a number literal token.
	NumberLit

	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// Comma represents the comma token.
	Comma // ,
	// Dot represents the dot token.
	Dot // .
	// Minus represents the minus operator token.
	Minus // -
	// Plus represents the plus operator token.
	Plus // +
	// Semicolon represents the semicolon token.
	Semicolon // ;
	// Slash represents the slash operator token.
	Slash // /
	// Star represents the star operator token.
	Star // *

	// Bang represents the bang operator token.
	Bang // !
	// BangEq represents the bang equal operator token.
	BangEq // !=
	// Assign represents the assignment operator token.
	Assign // =
	// EqEq represents the equality operator token.
	EqEq // ==
	// Lt represents the less-than operator token.
	Lt // <
	// LtEq represents the less-or-equal operator token.
	LtEq // <=
	// Gt represents the greater-than operator token.
	Gt // >
	// GtEq represents the greater-or-equal operator token.
	GtEq // >=

	// KwAnd represents the 'and' keyword.
	KwAnd // and
	// KwClass represents the 'class' keyword.
	KwClass // class
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwFalse represents the 'false' keyword.
	KwFalse // false
	// KwFun represents the 'fun' keyword.
	KwFun // fun
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwNil represents the 'nil' keyword.
	KwNil // nil
	// KwOr represents the 'or' keyword.
	KwOr // or
	// KwPrint represents the 'print' keyword.
	KwPrint // print
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwSuper represents the 'super' keyword.
	KwSuper // super
	// KwThis represents the 'this' keyword.
	KwThis // this
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwVar represents the 'var' keyword.
	KwVar // var
	// KwWhile represents the 'while' keyword.
	KwWhile // while

	kindCount
)

var kindNames = [...]string{
	Invalid:   "Invalid",
	EOF:       "EOF",
	Ident:     "Ident",
	StringLit: "StringLit",
	NumberLit: "NumberLit",
	LParen:    "LParen",
	RParen:    "RParen",
	LBrace:    "LBrace",
	RBrace:    "RBrace",
	Comma:     "Comma",
	Dot:       "Dot",
	Minus:     "Minus",
	Plus:      "Plus",
	Semicolon: "Semicolon",
	Slash:     "Slash",
	Star:      "Star",
	Bang:      "Bang",
	BangEq:    "BangEq",
	Assign:    "Assign",
	EqEq:      "EqEq",
	Lt:        "Lt",
	LtEq:      "LtEq",
	Gt:        "Gt",
	GtEq:      "GtEq",
	KwAnd:     "KwAnd",
	KwClass:   "KwClass",
	KwElse:    "KwElse",
	KwFalse:   "KwFalse",
	KwFun:     "KwFun",
	KwFor:     "KwFor",
	KwIf:      "KwIf",
	KwNil:     "KwNil",
	KwOr:      "KwOr",
	KwPrint:   "KwPrint",
	KwReturn:  "KwReturn",
	KwSuper:   "KwSuper",
	KwThis:    "KwThis",
	KwTrue:    "KwTrue",
	KwVar:     "KwVar",
	KwWhile:   "KwWhile",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Invalid"
}
