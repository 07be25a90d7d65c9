package diag

import (
	"fmt"
)

// Code identifies a diagnostic kind. The 1000 range is lexical; 4000 is
// reserved for I/O-level failures reported by the driver.
type Code uint16

const (
	// UnknownCode is the fallback for unclassified diagnostics.
	UnknownCode Code = 0

	// LexInfo is the base of the lexical range.
	LexInfo Code = 1000
	// LexUnexpectedChar reports an input grapheme matching no known
	// punctuation, operator, quote or whitespace class.
	LexUnexpectedChar Code = 1001
	// LexUnterminatedString reports a string literal whose opening quote
	// is never closed before end of input.
	LexUnterminatedString Code = 1002

	// IOReadFailed reports a source file that could not be loaded.
	IOReadFailed Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:           "unknown diagnostic",
	LexInfo:               "lexical note",
	LexUnexpectedChar:     "unexpected character",
	LexUnterminatedString: "unterminated string literal",
	IOReadFailed:          "source file could not be read",
}

// ID returns the stable textual identifier, e.g. LEX1001.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

// Title returns the human description of the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
