// Package flatten inlines unit declarations into a single file.
//
// A declaration is the three-token sequence `<keyword> <name>;`. Expand reads
// a file, finds every declaration with the lexer, resolves each name to
// <base>/<name>.<ext> or <base>/<name>/<index>.<ext>, expands that file
// recursively, and splices the result back as
//
//	<keyword> <name>{
//	<expanded child>
//	}
//
// at the exact byte span of the declaration. Every byte outside a confirmed
// declaration is copied through unchanged. Anything that deviates from the
// three-token shape is treated as ordinary text, never as an error.
//
// Units referenced from several places are read and expanded once per site.
// Declaration cycles recurse until the stack is exhausted unless
// Options.DetectCycles is set.
package flatten
