package diag

import (
	"fmt"
)

// Code is a compact numeric identifier with a stable string form.
// The 1000 block is lexical; further blocks are reserved for the phases
// that do not exist yet (syntax 2000, semantics 3000, IO 4000).
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo               Code = 1000
	LexUnexpectedChar     Code = 1001
	LexUnterminatedString Code = 1002
)

// ID returns the stable short identifier, e.g. "LEX1001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

// Title returns a short human-readable name for the code.
func (c Code) Title() string {
	switch c {
	case LexInfo:
		return "lexical note"
	case LexUnexpectedChar:
		return "unexpected character"
	case LexUnterminatedString:
		return "unterminated string"
	}
	return "unknown"
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
