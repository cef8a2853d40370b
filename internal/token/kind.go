package token

// Kind represents the category of a token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the input.
	EOF
	// Keyword is the unit declaration keyword ("mod" by default).
	Keyword
	// Semicolon is the declaration separator ';'.
	Semicolon
	// Ident is a run of [A-Za-z0-9_].
	Ident
	// Other is any single character that is not whitespace, identifier or ';'.
	Other
	// Comment is a line or block comment. Never produced by the lexer.
	Comment
)

var kindNames = [...]string{
	Invalid:   "Invalid",
	EOF:       "EOF",
	Keyword:   "Keyword",
	Semicolon: "Semicolon",
	Ident:     "Ident",
	Other:     "Other",
	Comment:   "Comment",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}
