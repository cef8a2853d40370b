package project

import (
	"fmt"
	"strings"

	"inline/internal/lexer"
)

// Dialect describes how unit declarations look and how they map to files.
type Dialect struct {
	// Keyword introduces a declaration: `<Keyword> <name>;`.
	Keyword string `toml:"keyword"`
	// Extension of unit files, without the dot.
	Extension string `toml:"extension"`
	// Index is the file stem used for directory units: <name>/<Index>.<Extension>.
	Index string `toml:"index"`
	// Placeholder replaces a missing unit in tolerant mode.
	Placeholder string `toml:"placeholder"`
}

// DefaultDialect returns the dialect the tool was built for: `mod foo;`
// declarations backed by foo.rs or foo/mod.rs.
func DefaultDialect() Dialect {
	return Dialect{
		Keyword:     lexer.DefaultKeyword,
		Extension:   "rs",
		Index:       "mod",
		Placeholder: "// Missing module file",
	}
}

// WithDefaults fills empty fields from DefaultDialect.
func (d Dialect) WithDefaults() Dialect {
	def := DefaultDialect()
	if d.Keyword == "" {
		d.Keyword = def.Keyword
	}
	if d.Extension == "" {
		d.Extension = def.Extension
	}
	d.Extension = strings.TrimPrefix(d.Extension, ".")
	if d.Index == "" {
		d.Index = def.Index
	}
	if d.Placeholder == "" {
		d.Placeholder = def.Placeholder
	}
	return d
}

// Validate checks that the dialect can be lexed and resolved.
func (d Dialect) Validate() error {
	if !lexer.IsIdent(d.Keyword) {
		return fmt.Errorf("keyword %q must be a run of letters, digits or '_'", d.Keyword)
	}
	if !lexer.IsIdent(d.Index) {
		return fmt.Errorf("index name %q must be a run of letters, digits or '_'", d.Index)
	}
	if d.Extension == "" || strings.ContainsAny(d.Extension, `/\`) {
		return fmt.Errorf("invalid extension %q", d.Extension)
	}
	return nil
}

// FileName returns the file name for a unit: <name>.<ext>.
func (d Dialect) FileName(name string) string {
	return name + "." + d.Extension
}

// IndexName returns the directory index file name: <index>.<ext>.
func (d Dialect) IndexName() string {
	return d.Index + "." + d.Extension
}
