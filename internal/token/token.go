package token

import (
	"inline/internal/source"
)

// Token is a classified span over the buffer it was lexed from.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsKeyword reports whether the token is the declaration keyword.
func (t Token) IsKeyword() bool { return t.Kind == Keyword }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsSemicolon reports whether the token is the declaration separator.
func (t Token) IsSemicolon() bool { return t.Kind == Semicolon }

// IsEOF reports whether the token marks end of input.
func (t Token) IsEOF() bool { return t.Kind == EOF }
