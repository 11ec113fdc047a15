package lexer

import (
	"lox/internal/diag"
	"lox/internal/source"
)

// Options configures a Lexer. Reporter may be nil; errors are then
// discarded but scanning still continues past them.
type Options struct {
	Reporter diag.Reporter
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string, notes ...diag.Note) {
	diag.ReportError(lx.opts.Reporter, code, sp, msg, notes...)
}
