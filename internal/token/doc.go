// Package token defines the lexical token kinds of the Lox language.
// Invariants:
//   - Token.Text is the exact matched source text (empty only for EOF).
//   - Token.Span matches Text exactly (Start..End, byte offsets).
//   - Only StringLit and NumberLit carry a literal payload; every other
//     kind carries Literal == NoLiteral.
//   - Comments and whitespace never appear in the token stream.
package token
