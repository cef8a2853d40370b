package lexer_test

import (
	"strings"
	"testing"

	"inline/internal/diag"
	"inline/internal/lexer"
	"inline/internal/source"
	"inline/internal/token"
)

// makeTestLexer создаёт лексер для тестовой строки
func makeTestLexer(input string, opts lexer.Options) *lexer.Lexer {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.rs", []byte(input)))
	return lexer.New(file, opts)
}

func kindsOf(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, tok.Kind)
	}
	return out
}

func expectTokens(t *testing.T, input string, expected ...token.Kind) []token.Token {
	t.Helper()
	tokens, err := makeTestLexer(input, lexer.Options{}).All()
	if err != nil {
		t.Fatalf("unexpected error for %q: %v", input, err)
	}
	got := kindsOf(tokens)
	if len(got) != len(expected) {
		t.Fatalf("input %q: expected %v, got %v", input, expected, got)
	}
	for i := range got {
		if got[i] != expected[i] {
			t.Errorf("input %q: token %d: expected %v, got %v (text %q)", input, i, expected[i], got[i], tokens[i].Text)
		}
	}
	return tokens
}

func TestDeclarationTokens(t *testing.T) {
	tokens := expectTokens(t, "mod foo;", token.Keyword, token.Ident, token.Semicolon)

	want := []struct {
		text       string
		start, end uint32
	}{
		{"mod", 0, 3},
		{"foo", 4, 7},
		{";", 7, 8},
	}
	for i, w := range want {
		if tokens[i].Text != w.text || tokens[i].Span.Start != w.start || tokens[i].Span.End != w.end {
			t.Errorf("token %d = %q [%d,%d), want %q [%d,%d)", i,
				tokens[i].Text, tokens[i].Span.Start, tokens[i].Span.End, w.text, w.start, w.end)
		}
	}
}

func TestKeywordNeedsWholeIdentifier(t *testing.T) {
	expectTokens(t, "model modx _mod mod_ 1mod", token.Ident, token.Ident, token.Ident, token.Ident, token.Ident)
	expectTokens(t, "pub(crate) mod x;",
		token.Ident, token.Other, token.Ident, token.Other, token.Keyword, token.Ident, token.Semicolon)
}

func TestCustomKeyword(t *testing.T) {
	tokens, err := makeTestLexer("unit foo; mod bar;", lexer.Options{Keyword: "unit"}).All()
	if err != nil {
		t.Fatal(err)
	}
	got := kindsOf(tokens)
	want := []token.Kind{token.Keyword, token.Ident, token.Semicolon, token.Ident, token.Ident, token.Semicolon}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestWhitespaceAndOther(t *testing.T) {
	expectTokens(t, " \t\n\f")
	expectTokens(t, "a+=b", token.Ident, token.Other, token.Other, token.Ident)
	// \r не считается пробелом
	expectTokens(t, "a\r\n", token.Ident, token.Other)
}

func TestOtherIsWholeRune(t *testing.T) {
	tokens := expectTokens(t, "é;", token.Other, token.Semicolon)
	if tokens[0].Text != "é" || tokens[0].Span.Len() != 2 {
		t.Fatalf("expected a two-byte rune token, got %q len %d", tokens[0].Text, tokens[0].Span.Len())
	}
}

func TestCommentsAreSkipped(t *testing.T) {
	expectTokens(t, "// mod foo;\nx", token.Ident)
	expectTokens(t, "// mod foo;", /* no newline at EOF */)
	expectTokens(t, "/* mod foo; */ x", token.Ident)
	expectTokens(t, "/* a /* b */ c */", token.Ident, token.Other, token.Other)
	expectTokens(t, "a / b", token.Ident, token.Other, token.Ident)
	expectTokens(t, "/**/;", token.Semicolon)
}

func TestUnterminatedBlockComment(t *testing.T) {
	inputs := []string{
		"/* never closed",
		"mod a;\n/* mod b; */ /* mod c;",
		"/*/",
	}
	for _, input := range inputs {
		lx := makeTestLexer(input, lexer.Options{})
		_, err := lx.All()
		if err == nil {
			t.Fatalf("%q: expected error", input)
		}
		if !diag.Is(err, diag.MalformedComment) {
			t.Fatalf("%q: expected MalformedComment, got %v", input, err)
		}
		de, _ := diag.As(err)
		if de.Pos == nil {
			t.Fatalf("%q: expected a position", input)
		}
		wantOff := uint32(strings.LastIndex(input, "/*"))
		if de.Span.Start != wantOff {
			t.Errorf("%q: error at %d, want %d", input, de.Span.Start, wantOff)
		}
		// ошибка "липкая"
		if _, again := lx.Next(); again == nil {
			t.Errorf("%q: expected sticky error", input)
		}
	}
}

func TestEOFIsRepeatable(t *testing.T) {
	lx := makeTestLexer("x", lexer.Options{})
	if tok, _ := lx.Next(); tok.Kind != token.Ident {
		t.Fatalf("got %v", tok.Kind)
	}
	for range 3 {
		tok, err := lx.Next()
		if err != nil || tok.Kind != token.EOF {
			t.Fatalf("expected EOF, got %v %v", tok.Kind, err)
		}
		if tok.Span.Start != 1 || !tok.Span.Empty() {
			t.Fatalf("EOF span = %v", tok.Span)
		}
	}
}

func TestStringLiteralsAreNotSpecial(t *testing.T) {
	// известное ограничение: содержимое строк лексится как обычный текст
	expectTokens(t, `"mod x;"`, token.Other, token.Keyword, token.Ident, token.Semicolon, token.Other)
}

func TestIsIdent(t *testing.T) {
	for _, s := range []string{"mod", "unit", "a_1", "9"} {
		if !lexer.IsIdent(s) {
			t.Errorf("IsIdent(%q) = false", s)
		}
	}
	for _, s := range []string{"", "a-b", "mod ", "é"} {
		if lexer.IsIdent(s) {
			t.Errorf("IsIdent(%q) = true", s)
		}
	}
}
