// Package token defines the token classes the flattener's lexer produces.
// Invariants:
//   - Token.Text is the buffer text covered by Span.
//   - Token.Span matches Text exactly (Start..End).
//   - Comments and whitespace are skipped by the lexer and never appear in
//     the token stream; Comment exists only so tooling can name the class.
//   - The declaration keyword is configurable: an identifier run whose text
//     equals it is a Keyword, anything longer (e.g. "model") stays an Ident.
package token
