package token

import (
	"lox/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Literal string // decoded value; set for string literals only
	Line    uint32 // 1-based line of the token start
	Leading []Trivia
}

// IsLiteral reports whether the token carries a decoded literal value.
func (t Token) IsLiteral() bool {
	return t.Kind == StringLit
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case LeftParen, RightParen, LeftBrace, RightBrace, Comma, Dot, Minus,
		Plus, Semicolon, Slash, Star, Bang, BangEq, Eq, EqEq, Gt, GtEq,
		Lt, LtEq:
		return true
	default:
		return false
	}
}
