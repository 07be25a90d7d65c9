package lexer

import (
	"lox/internal/token"
)

// collectLeadingTrivia appends every non-token fragment before the next
// significant token onto sc.hold:
//   - runs of ' ', '\t', '\r' coalesce into one TriviaSpace
//   - runs of line breaks coalesce into one TriviaNewline; the line
//     counter advances once per consumed break. A raw CRLF pair is a
//     single grapheme cluster and counts as one break.
//   - // comments run to the line break; the break itself stays
//     unconsumed so the next iteration counts it normally
func (sc *Scanner) collectLeadingTrivia() {
	for !sc.cursor.EOF() {
		start := sc.cursor.Mark()
		g := sc.cursor.Peek()

		switch {
		case g == " " || g == "\t" || g == "\r":
			for {
				g2 := sc.cursor.Peek()
				if g2 != " " && g2 != "\t" && g2 != "\r" {
					break
				}
				sc.cursor.Bump()
			}
			sc.pushTrivia(token.TriviaSpace, start)

		case isLineBreak(g):
			for isLineBreak(sc.cursor.Peek()) {
				sc.cursor.Bump()
				sc.line++
			}
			sc.pushTrivia(token.TriviaNewline, start)

		case g == "/":
			_, g1 := sc.cursor.Peek2()
			if g1 != "/" {
				// A lone slash is a token, not trivia.
				return
			}
			sc.cursor.Bump()
			sc.cursor.Bump()
			for !sc.cursor.EOF() && !isLineBreak(sc.cursor.Peek()) {
				sc.cursor.Bump()
			}
			sc.pushTrivia(token.TriviaLineComment, start)

		default:
			return
		}
	}
}

// isLineBreak reports whether a grapheme cluster ends a line. uniseg yields
// "\r\n" as one cluster, so it must be matched as a unit.
func isLineBreak(g string) bool {
	return g == "\n" || g == "\r\n"
}

func (sc *Scanner) pushTrivia(kind token.TriviaKind, start Mark) {
	sp := sc.cursor.SpanFrom(start)
	sc.hold = append(sc.hold, token.Trivia{
		Kind: kind,
		Span: sp,
		Text: string(sc.file.Content[sp.Start:sp.End]),
	})
}
