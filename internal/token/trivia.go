package token

import "lox/internal/source"

// TriviaKind classifies non-token source fragments.
type TriviaKind uint8

const (
	// TriviaSpace covers runs of spaces, tabs and stray carriage returns.
	TriviaSpace TriviaKind = iota
	// TriviaNewline covers runs of line breaks (LF or raw CRLF).
	TriviaNewline
	// TriviaLineComment covers a // comment up to (not including) the
	// terminating line break.
	TriviaLineComment
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	case TriviaLineComment:
		return "LineComment"
	}
	return "Unknown"
}

// Trivia is a non-token fragment attached to the following token.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
