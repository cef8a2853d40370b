package lexer

// DefaultKeyword is the declaration keyword used when Options.Keyword is empty.
const DefaultKeyword = "mod"

// Options configures a Lexer.
type Options struct {
	// Keyword is the unit declaration keyword. Empty means DefaultKeyword.
	Keyword string
}

func (o Options) keyword() string {
	if o.Keyword == "" {
		return DefaultKeyword
	}
	return o.Keyword
}
