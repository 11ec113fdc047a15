package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"lox/internal/diag"
	"lox/internal/source"
)

var (
	sevErrorColor = color.New(color.FgRed, color.Bold)
	sevWarnColor  = color.New(color.FgYellow, color.Bold)
	sevInfoColor  = color.New(color.FgCyan, color.Bold)
	noteColor     = color.New(color.FgCyan)
)

// Pretty renders every diagnostic in the bag in a human-readable form.
// Expects bag.Sort() to have been called for deterministic order.
// For each diagnostic:
//
//	<path>:<line>:<col>: <SEV> [<CODE>]: <message>
//	    <source line>
//	    ^~~~ under the primary span
//
// followed by its notes in the same shape.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeHeader(w, fs, d, opts)
		writeSnippet(w, fs, d.Primary, opts.Context)
		for _, n := range d.Notes {
			writeNote(w, fs, n, opts)
			writeSnippet(w, fs, n.Span, opts.Context)
		}
	}
}

func writeHeader(w io.Writer, fs *source.FileSet, d diag.Diagnostic, opts PrettyOpts) {
	f := fs.Get(d.Primary.File)
	start, _ := fs.Resolve(d.Primary)
	sev := severityLabel(d.Severity, opts.Color)
	fmt.Fprintf(w, "%s:%d:%d: %s [%s]: %s\n",
		f.Path, start.Line, start.Col, sev, d.Code.ID(), d.Message)
}

func writeNote(w io.Writer, fs *source.FileSet, n diag.Note, opts PrettyOpts) {
	f := fs.Get(n.Span.File)
	start, _ := fs.Resolve(n.Span)
	label := "note"
	if opts.Color {
		label = noteColor.Sprint(label)
	}
	fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", f.Path, start.Line, start.Col, label, n.Msg)
}

// writeSnippet prints the source line holding the start of the span with a
// caret underline, plus up to context lines before and after it. Spans
// reaching past the line end are clipped to it.
func writeSnippet(w io.Writer, fs *source.FileSet, sp source.Span, context int) {
	f := fs.Get(sp.File)
	start, _ := fs.Resolve(sp)
	line := f.GetLine(start.Line)
	if line == "" && sp.Empty() {
		return
	}
	if context < 0 {
		context = 0
	}

	lineCount := uint32(len(f.LineIdx)) + 1
	first := start.Line
	if ctx := uint32(context); ctx < first {
		first -= ctx
	} else {
		first = 1
	}
	last := start.Line + uint32(context)
	if last > lineCount {
		last = lineCount
	}

	for ln := first; ln <= last; ln++ {
		fmt.Fprintf(w, "    %s\n", f.GetLine(ln))
		if ln == start.Line {
			writeCaret(w, line, sp, start)
		}
	}
}

func writeCaret(w io.Writer, line string, sp source.Span, start source.LineCol) {
	width := int(sp.Len())
	if width < 1 {
		width = 1
	}
	col := int(start.Col) - 1
	if col > len(line) {
		col = len(line)
	}
	if col+width > len(line)+1 {
		width = len(line) + 1 - col
		if width < 1 {
			width = 1
		}
	}
	marker := "^"
	if width > 1 {
		marker += strings.Repeat("~", width-1)
	}
	fmt.Fprintf(w, "    %s%s\n", strings.Repeat(" ", col), marker)
}

func severityLabel(s diag.Severity, colored bool) string {
	if !colored {
		return s.String()
	}
	switch s {
	case diag.SevError:
		return sevErrorColor.Sprint(s.String())
	case diag.SevWarning:
		return sevWarnColor.Sprint(s.String())
	default:
		return sevInfoColor.Sprint(s.String())
	}
}
