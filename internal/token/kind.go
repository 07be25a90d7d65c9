package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token. The scanner never emits it;
	// malformed input becomes a diagnostic instead.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// LeftParen represents the '(' token.
	LeftParen // (
	// RightParen represents the ')' token.
	RightParen // )
	// LeftBrace represents the '{' token.
	LeftBrace // {
	// RightBrace represents the '}' token.
	RightBrace // }
	// Comma represents the ',' token.
	Comma // ,
	// Dot represents the '.' token.
	Dot // .
	// Minus represents the '-' token.
	Minus // -
	// Plus represents the '+' token.
	Plus // +
	// Semicolon represents the ';' token.
	Semicolon // ;
	// Slash represents the '/' token.
	Slash // /
	// Star represents the '*' token.
	Star // *

	// Bang represents the '!' token.
	Bang // !
	// BangEq represents the '!=' token.
	BangEq // !=
	// Eq represents the '=' token.
	Eq // =
	// EqEq represents the '==' token.
	EqEq // ==
	// Gt represents the '>' token.
	Gt // >
	// GtEq represents the '>=' token.
	GtEq // >=
	// Lt represents the '<' token.
	Lt // <
	// LtEq represents the '<=' token.
	LtEq // <=

	// StringLit represents a string literal token.
	StringLit
)

// displayNames maps every kind to its stable wire name. The table is
// read-only after package init; renderers and consumers rely on these exact
// spellings.
var displayNames = map[Kind]string{
	Invalid:    "ERROR",
	EOF:        "EOF",
	LeftParen:  "LEFT_PAREN",
	RightParen: "RIGHT_PAREN",
	LeftBrace:  "LEFT_BRACE",
	RightBrace: "RIGHT_BRACE",
	Comma:      "COMMA",
	Dot:        "DOT",
	Minus:      "MINUS",
	Plus:       "PLUS",
	Semicolon:  "SEMICOLON",
	Slash:      "SLASH",
	Star:       "STAR",
	Bang:       "BANG",
	BangEq:     "BANG_EQUAL",
	Eq:         "EQUAL",
	EqEq:       "EQUAL_EQUAL",
	Gt:         "GREATER",
	GtEq:       "GREATER_EQUAL",
	Lt:         "LESS",
	LtEq:       "LESS_EQUAL",
	StringLit:  "STRING",
}

func (k Kind) String() string {
	if name, ok := displayNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}
