package lexer

import (
	"lox/internal/source"
	"lox/internal/token"
)

// Scanner turns one source file into a token stream in a single forward
// pass with one-grapheme lookahead. Malformed input is reported through the
// Options reporter and skipped; the scanner itself never fails.
type Scanner struct {
	file   *source.File
	cursor Cursor
	opts   Options
	line   uint32         // 1-based, advanced once per consumed line feed
	look   *token.Token   // one-token buffer for Peek
	hold   []token.Trivia // leading trivia collected for the next token
}

// New creates a scanner for the given file. A scanner is single-use: one
// instance per input, never rewound or reused.
func New(file *source.File, opts Options) *Scanner {
	return &Scanner{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		line:   1,
	}
}

// Next returns the next significant token with its leading trivia attached.
// After the input is exhausted it returns EOF, forever. Unrecognized
// characters and unterminated strings produce diagnostics, not tokens.
func (sc *Scanner) Next() token.Token {
	if sc.look != nil {
		tok := *sc.look
		sc.look = nil
		return tok
	}

	sc.hold = sc.hold[:0]
	for {
		sc.collectLeadingTrivia()

		// EOF keeps an empty span by construction; trailing trivia is not
		// glued onto it.
		if sc.cursor.EOF() {
			return token.Token{
				Kind: token.EOF,
				Span: sc.emptySpan(),
				Text: "",
				Line: sc.line,
			}
		}

		start := sc.cursor.Mark()
		startLine := sc.line
		g := sc.cursor.Bump()

		var tok token.Token
		var ok bool
		if g == `"` {
			tok, ok = sc.scanString(start, startLine)
		} else {
			tok, ok = sc.scanOperatorOrPunct(start, startLine, g)
		}
		if !ok {
			// Reported; resume at the next character.
			continue
		}

		tok.Leading = sc.hold
		sc.hold = nil
		return tok
	}
}

// Peek returns the next token without consuming it.
func (sc *Scanner) Peek() token.Token {
	t := sc.Next()
	sc.look = &t
	return t
}

// Line returns the current 1-based line of the scanner.
func (sc *Scanner) Line() uint32 {
	return sc.line
}

func (sc *Scanner) emptySpan() source.Span {
	return source.Span{File: sc.file.ID, Start: sc.cursor.Off, End: sc.cursor.Off}
}

// emit builds a token whose text is the exact source slice consumed since
// start, stamped with the line the token started on.
func (sc *Scanner) emit(kind token.Kind, start Mark, line uint32) token.Token {
	sp := sc.cursor.SpanFrom(start)
	return token.Token{
		Kind: kind,
		Span: sp,
		Text: string(sc.file.Content[sp.Start:sp.End]),
		Line: line,
	}
}
