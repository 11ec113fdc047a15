package lexer

import (
	"lox/internal/source"
	"lox/internal/token"
)

// Lexer converts one source file into a token stream. One Lexer per scan
// unit (file or REPL line); it runs to completion synchronously and holds
// no state across scans.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // 1-element lookahead buffer
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		look:   nil,
	}
}

// Next returns the next significant token. Trivia (whitespace, newlines,
// line comments) is consumed silently; erroneous input is reported through
// the Reporter and skipped, so a bad byte never aborts the scan. After
// end-of-input Next always returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	for {
		lx.skipTrivia()

		if lx.cursor.EOF() {
			return token.Token{
				Kind:    token.EOF,
				Span:    lx.emptySpan(),
				Text:    "",
				Literal: token.NoLiteral,
			}
		}

		ch := lx.cursor.Peek()
		switch {
		case isIdentStartByte(ch):
			return lx.scanIdentOrKeyword()
		case isDec(ch):
			return lx.scanNumber()
		case ch == '"':
			if tok, ok := lx.scanString(); ok {
				return tok
			}
			// unterminated string: reported, no token for this attempt
		default:
			if tok, ok := lx.scanOperatorOrPunct(); ok {
				return tok
			}
			// unexpected character: reported, consumed, keep scanning
		}
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Collect drains the lexer, returning every token up to and including EOF.
// It always terminates: the cursor strictly advances on any path that does
// not return EOF.
func Collect(lx *Lexer) []token.Token {
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
