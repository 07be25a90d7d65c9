package lexer

import (
	"lox/internal/diag"
	"lox/internal/token"
)

// scanOperatorOrPunct classifies a consumed grapheme via the symbol table.
// The four one-or-two character operators (! = < >) peek one grapheme ahead
// and greedily merge with a following '='. Anything outside the table is an
// unexpected-character diagnostic; no token is produced for it.
func (sc *Scanner) scanOperatorOrPunct(start Mark, startLine uint32, g string) (token.Token, bool) {
	kind, known := token.LookupSymbol(g)
	if !known {
		sp := sc.cursor.SpanFrom(start)
		sc.errLex(diag.LexUnexpectedChar, sp, "Unexpected character: "+g)
		return token.Token{}, false
	}

	switch kind {
	case token.Bang:
		if sc.cursor.Eat("=") {
			kind = token.BangEq
		}
	case token.Eq:
		if sc.cursor.Eat("=") {
			kind = token.EqEq
		}
	case token.Lt:
		if sc.cursor.Eat("=") {
			kind = token.LtEq
		}
	case token.Gt:
		if sc.cursor.Eat("=") {
			kind = token.GtEq
		}
	}

	return sc.emit(kind, start, startLine), true
}
