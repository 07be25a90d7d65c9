package lexer

import (
	"lox/internal/diag"
	"lox/internal/token"
)

// scanString consumes a string literal after its opening quote. There are
// no escapes; the literal value is everything strictly between the quotes.
// Strings may span lines; the token is tagged with the line the quote
// opened on while the counter still advances for the lines inside.
// A missing closing quote swallows the rest of the input and reports an
// unterminated-string diagnostic instead of producing a token.
func (sc *Scanner) scanString(start Mark, startLine uint32) (token.Token, bool) {
	for !sc.cursor.EOF() {
		g := sc.cursor.Bump()
		if g == `"` {
			tok := sc.emit(token.StringLit, start, startLine)
			tok.Literal = tok.Text[1 : len(tok.Text)-1]
			return tok, true
		}
		if isLineBreak(g) {
			sc.line++
		}
	}

	sp := sc.cursor.SpanFrom(start)
	sc.errLex(diag.LexUnterminatedString, sp, "Unterminated string.")
	return token.Token{}, false
}
