package driver

import (
	"lox/internal/diag"
	"lox/internal/lexer"
	"lox/internal/source"
	"lox/internal/token"
)

// TokenizeResult bundles everything one scan produced: the ordered token
// stream (EOF last), the ordered diagnostics, and the file set that resolves
// their spans.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// HasErrors reports whether the scan recorded any error.
func (r *TokenizeResult) HasErrors() bool {
	return r.Bag.HasErrors()
}

// Tokenize loads a file from disk and scans it.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return scan(fs, fileID, maxDiagnostics), nil
}

// TokenizeSource scans an in-memory source under a virtual name.
func TokenizeSource(name string, src []byte, maxDiagnostics int) *TokenizeResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, src)
	return scan(fs, fileID, maxDiagnostics)
}

func scan(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) *TokenizeResult {
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)

	sc := lexer.New(file, lexer.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})

	var tokens []token.Token
	for {
		tok := sc.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}
}
