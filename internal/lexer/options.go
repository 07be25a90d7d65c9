package lexer

import (
	"lox/internal/diag"
	"lox/internal/source"
)

// Options configures a Scanner.
type Options struct {
	// Reporter receives every diagnostic. May be nil, in which case errors
	// are dropped but scanning still recovers and continues.
	Reporter diag.Reporter
}

func (sc *Scanner) errLex(code diag.Code, sp source.Span, msg string) {
	if sc.opts.Reporter != nil {
		sc.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
