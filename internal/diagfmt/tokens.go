package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"lox/internal/source"
	"lox/internal/token"
)

// TokenOutput is the JSON projection of a token.
type TokenOutput struct {
	Kind    string      `json:"kind"`
	Text    string      `json:"text,omitempty"`
	Literal string      `json:"literal,omitempty"`
	Line    uint32      `json:"line"`
	Span    source.Span `json:"span"`
}

// Tokens writes the plain wire format consumers parse:
//
//	<KIND> <lexeme> <literal-or-"null">
//
// one token per line, ending with the EOF token whose lexeme is empty.
// Only string literals carry a value; every other token prints null.
func Tokens(w io.Writer, tokens []token.Token) error {
	for _, tok := range tokens {
		literal := "null"
		if tok.IsLiteral() {
			literal = tok.Literal
		}
		if _, err := fmt.Fprintf(w, "%s %s %s\n", tok.Kind, tok.Text, literal); err != nil {
			return err
		}
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// TokensPretty writes an indexed human-readable listing with resolved
// line:col positions and leading trivia kinds.
func TokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)

		if _, err := fmt.Fprintf(w, "%3d: %-13s", i+1, tok.Kind.String()); err != nil {
			return err
		}
		if tok.Text != "" {
			if _, err := fmt.Fprintf(w, " %q", tok.Text); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, " at %d:%d-%d:%d",
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col); err != nil {
			return err
		}
		for _, trivia := range tok.Leading {
			if _, err := fmt.Fprintf(w, " (leading: %s)", trivia.Kind); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// TokensJSON writes the token stream as an indented JSON array.
func TokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, TokenOutput{
			Kind:    tok.Kind.String(),
			Text:    tok.Text,
			Literal: tok.Literal,
			Line:    tok.Line,
			Span:    tok.Span,
		})
		if tok.Kind == token.EOF {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
