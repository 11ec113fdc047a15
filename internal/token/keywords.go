package token

var keywords = map[string]Kind{
	"and":    KwAnd,
	"class":  KwClass,
	"else":   KwElse,
	"false":  KwFalse,
	"fun":    KwFun,
	"for":    KwFor,
	"if":     KwIf,
	"nil":    KwNil,
	"or":     KwOr,
	"print":  KwPrint,
	"return": KwReturn,
	"super":  KwSuper,
	"this":   KwThis,
	"true":   KwTrue,
	"var":    KwVar,
	"while":  KwWhile,
}

// LookupKeyword returns the keyword kind for an identifier spelling.
// Keywords are case-sensitive; only the exact lowercase spelling matches.
// A miss means the lexeme is an ordinary identifier.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
