package token_test

import (
	"testing"

	"lox/internal/token"
)

func TestKind_DisplayNames(t *testing.T) {
	tests := []struct {
		kind token.Kind
		want string
	}{
		{token.LeftParen, "LEFT_PAREN"},
		{token.RightParen, "RIGHT_PAREN"},
		{token.LeftBrace, "LEFT_BRACE"},
		{token.RightBrace, "RIGHT_BRACE"},
		{token.Comma, "COMMA"},
		{token.Dot, "DOT"},
		{token.Minus, "MINUS"},
		{token.Plus, "PLUS"},
		{token.Semicolon, "SEMICOLON"},
		{token.Slash, "SLASH"},
		{token.Star, "STAR"},
		{token.Bang, "BANG"},
		{token.BangEq, "BANG_EQUAL"},
		{token.Eq, "EQUAL"},
		{token.EqEq, "EQUAL_EQUAL"},
		{token.Gt, "GREATER"},
		{token.GtEq, "GREATER_EQUAL"},
		{token.Lt, "LESS"},
		{token.LtEq, "LESS_EQUAL"},
		{token.StringLit, "STRING"},
		{token.EOF, "EOF"},
		{token.Invalid, "ERROR"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestLookupSymbol(t *testing.T) {
	symbols := map[string]token.Kind{
		"(": token.LeftParen,
		")": token.RightParen,
		"{": token.LeftBrace,
		"}": token.RightBrace,
		",": token.Comma,
		".": token.Dot,
		"-": token.Minus,
		"+": token.Plus,
		";": token.Semicolon,
		"/": token.Slash,
		"*": token.Star,
		"!": token.Bang,
		"=": token.Eq,
		">": token.Gt,
		"<": token.Lt,
	}
	for g, want := range symbols {
		kind, ok := token.LookupSymbol(g)
		if !ok || kind != want {
			t.Errorf("LookupSymbol(%q) = %v, %v; want %v, true", g, kind, ok, want)
		}
	}

	for _, g := range []string{"@", "#", "a", "1", `"`, " ", "\n", "==", ""} {
		if kind, ok := token.LookupSymbol(g); ok {
			t.Errorf("LookupSymbol(%q) unexpectedly matched %v", g, kind)
		}
	}
}

func TestToken_Predicates(t *testing.T) {
	str := token.Token{Kind: token.StringLit, Literal: "x"}
	if !str.IsLiteral() {
		t.Error("StringLit must be a literal")
	}
	if str.IsPunctOrOp() {
		t.Error("StringLit is not punctuation")
	}

	op := token.Token{Kind: token.BangEq}
	if !op.IsPunctOrOp() {
		t.Error("BangEq must be punctuation/operator")
	}
	if op.IsLiteral() {
		t.Error("BangEq is not a literal")
	}

	if (token.Token{Kind: token.EOF}).IsPunctOrOp() {
		t.Error("EOF is not punctuation")
	}
}
