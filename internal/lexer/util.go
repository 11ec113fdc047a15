package lexer

// ASCII-only classifiers. Lox identifiers are restricted to ASCII letters,
// digits, and underscore; anything past 0x7F is an unexpected character.
func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || (b >= '0' && b <= '9')
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

// try2 consumes two bytes if they match exactly. Greedy matching for the
// two-character operators; the grammar has no longer variants, so no
// backtracking is ever needed.
func (lx *Lexer) try2(a, b byte) bool {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != a || b1 != b {
		return false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()
	return true
}
