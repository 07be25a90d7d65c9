// Package token defines lexical token kinds and trivia for the lox scanner.
// Invariants:
//   - Token.Text reproduces the source bytes of Span exactly.
//   - Token.Span matches Text exactly (Start..End).
//   - Token.Line is the 1-based line of the token start.
//   - Whitespace, newlines and // comments are represented as Trivia and
//     never appear in the main token stream.
//   - The kind set is closed; the scanner stops at punctuation, operators
//     and string literals.
package token
