package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"lox/internal/source"
	"lox/internal/token"
)

// TokenOutput is the JSON shape of a single token.
type TokenOutput struct {
	Kind    string `json:"kind"`
	Text    string `json:"text,omitempty"`
	Literal any    `json:"literal,omitempty"`
	Line    uint32 `json:"line"`
	Col     uint32 `json:"col"`
}

// FormatTokensPretty writes tokens in a human-readable per-line format.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)

		fmt.Fprintf(w, "%3d: %-10s", i+1, tok.Kind.String())
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		if !tok.Literal.IsNone() {
			fmt.Fprintf(w, " = %s", tok.Literal)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d",
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col)
		fmt.Fprintln(w)

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON writes tokens as an indented JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	output := make([]TokenOutput, 0, len(tokens))

	for _, tok := range tokens {
		startPos, _ := fs.Resolve(tok.Span)
		out := TokenOutput{
			Kind: tok.Kind.String(),
			Text: tok.Text,
			Line: startPos.Line,
			Col:  startPos.Col,
		}
		if s, ok := tok.Literal.AsString(); ok {
			out.Literal = s
		} else if n, ok := tok.Literal.AsNumber(); ok {
			out.Literal = n
		}
		output = append(output, out)

		if tok.Kind == token.EOF {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
