package lexer

// skipTrivia consumes everything that produces no token: spaces, tabs,
// carriage returns, newlines, and // line comments. A comment runs to the
// newline but does not consume it, so the newline is still seen by the
// line index and the next skipTrivia pass.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case ' ', '\t', '\r', '\n':
			lx.cursor.Bump()

		case '/':
			b0, b1, ok := lx.cursor.Peek2()
			if !ok || b0 != '/' || b1 != '/' {
				// a lone '/' is the Slash token, not trivia
				return
			}
			lx.cursor.Bump()
			lx.cursor.Bump()
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}

		default:
			return
		}
	}
}
