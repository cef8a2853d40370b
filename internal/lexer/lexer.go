package lexer

import (
	"unicode/utf8"

	"inline/internal/source"
	"inline/internal/token"
)

// Lexer lazily classifies a buffer into tokens. It only has to be good enough
// to locate declaration statements: string and char literals are not
// recognized, so their contents are lexed like any other text.
type Lexer struct {
	file    *source.File
	cursor  Cursor
	keyword string
	err     error
}

// New creates a lexer over the whole of file.
func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:    file,
		cursor:  NewCursor(file),
		keyword: opts.keyword(),
	}
}

// Next возвращает следующий значимый токен.
// После EOF всегда возвращает EOF. A lexing error is sticky: once returned,
// every following call returns it again.
func (lx *Lexer) Next() (token.Token, error) {
	if lx.err != nil {
		return token.Token{Kind: token.Invalid, Span: lx.emptySpan()}, lx.err
	}
	if err := lx.skipTrivia(); err != nil {
		lx.err = err
		return token.Token{Kind: token.Invalid, Span: lx.emptySpan()}, err
	}
	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}, nil
	}

	start := lx.cursor.Mark()
	ch := lx.cursor.Peek()
	switch {
	case isIdentByte(ch):
		return lx.scanIdentOrKeyword(), nil
	case ch == ';':
		lx.cursor.Bump()
		return lx.tokenFrom(token.Semicolon, start), nil
	case ch >= utf8.RuneSelf:
		_, size := utf8.DecodeRune(lx.cursor.Rest())
		lx.cursor.Advance(uint32(size))
		return lx.tokenFrom(token.Other, start), nil
	default:
		lx.cursor.Bump()
		return lx.tokenFrom(token.Other, start), nil
	}
}

// All collects every remaining token, excluding the final EOF.
func (lx *Lexer) All() ([]token.Token, error) {
	var out []token.Token
	for {
		tok, err := lx.Next()
		if err != nil {
			return out, err
		}
		if tok.IsEOF() {
			return out, nil
		}
		out = append(out, tok)
	}
}

func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	for isIdentByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	tok := lx.tokenFrom(token.Ident, start)
	if tok.Text == lx.keyword {
		tok.Kind = token.Keyword
	}
	return tok
}

func (lx *Lexer) tokenFrom(kind token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
