package driver

import (
	"lox/internal/diag"
	"lox/internal/lexer"
	"lox/internal/source"
	"lox/internal/token"
)

// TokenizeResult carries everything a caller needs after one scan: the
// file set for position resolution, the scanned file, the token stream,
// and the accumulated diagnostics. The Bag is owned by this result; a
// fresh one is created per scan, so error state never leaks between
// independent scans.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads a file from disk and scans it once.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return scan(fs, fileID, maxDiagnostics), nil
}

// TokenizeSource scans in-memory content (REPL line, test input) under the
// given display name.
func TokenizeSource(name string, content []byte, maxDiagnostics int) *TokenizeResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return scan(fs, fileID, maxDiagnostics)
}

func scan(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) *TokenizeResult {
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)

	lx := lexer.New(file, lexer.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})
	tokens := lexer.Collect(lx)
	bag.Sort()

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}
}
