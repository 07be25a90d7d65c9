package token

// symbols maps a single grapheme to its token kind. Compound operators
// (==, !=, <=, >=) are assembled by the scanner via one-grapheme lookahead;
// this table only knows their first character.
var symbols = map[string]Kind{
	"(": LeftParen,
	")": RightParen,
	"{": LeftBrace,
	"}": RightBrace,
	",": Comma,
	".": Dot,
	"-": Minus,
	"+": Plus,
	";": Semicolon,
	"/": Slash,
	"*": Star,
	"!": Bang,
	"=": Eq,
	">": Gt,
	"<": Lt,
}

// LookupSymbol returns the kind for a single-grapheme punctuation or
// operator, and whether the grapheme is one.
func LookupSymbol(g string) (Kind, bool) {
	k, ok := symbols[g]
	return k, ok
}
