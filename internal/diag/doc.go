// Package diag defines the error taxonomy shared by the lexer, the flatten
// engine and the CLI.
//
// # Purpose
//
// Every failure of a flatten run is fatal. Producers return a *Error carrying
// a Code, the offending path and, when known, a source position; intermediate
// layers add context with fmt.Errorf("...: %w", err) and the CLI renders the
// chain once with Pretty.
//
// # Codes
//
//   - InvalidRoot – the crate root is not a regular file.
//   - FileNotFound – a declaration resolved to a path that does not exist.
//   - ReadFailure / WriteFailure – filesystem errors, wrapped verbatim.
//   - MalformedComment – a block comment with no closing "*/".
//   - OutputAlreadyExists – output path exists and --force was not given.
//   - InvalidConfig – a manifest or flag value could not be used.
//   - CycleDetected – a unit transitively declares itself (only when cycle
//     detection is enabled).
//
// Use Is(err, code) to test an error chain for a code.
package diag
