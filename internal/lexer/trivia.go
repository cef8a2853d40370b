package lexer

import (
	"bytes"

	"inline/internal/diag"
)

var blockCommentEnd = []byte("*/")

// skipTrivia skips whitespace runs and comments in front of the next token.
// - ' ', '\t', '\n', '\f' are skipped
// - //... до '\n' (или конца буфера) пропускается, сам '\n' остаётся пробелом
// - /* ... */ пропускается одним прыжком до первого "*/" (без вложенности)
func (lx *Lexer) skipTrivia() error {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if isSpace(b) {
			lx.cursor.Bump()
			continue
		}
		if b != '/' {
			return nil
		}
		b0, b1, ok := lx.cursor.Peek2()
		if !ok || b0 != '/' {
			return nil
		}
		switch b1 {
		case '/':
			lx.skipLineComment()
		case '*':
			if err := lx.skipBlockComment(); err != nil {
				return err
			}
		default:
			// одиночный '/' это обычный символ
			return nil
		}
	}
	return nil
}

func (lx *Lexer) skipLineComment() {
	rest := lx.cursor.Rest()
	if i := bytes.IndexByte(rest, '\n'); i >= 0 {
		lx.cursor.Advance(uint32(i))
		return
	}
	lx.cursor.Advance(uint32(len(rest)))
}

func (lx *Lexer) skipBlockComment() error {
	start := lx.cursor.Mark()
	lx.cursor.Advance(2)
	pos := bytes.Index(lx.cursor.Rest(), blockCommentEnd)
	if pos < 0 {
		sp := lx.cursor.SpanFrom(start)
		sp.End = sp.Start + 2
		return diag.New(diag.MalformedComment, "", "unterminated block comment").At(lx.file, sp)
	}
	lx.cursor.Advance(uint32(pos) + 2)
	return nil
}
