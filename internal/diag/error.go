package diag

import (
	"errors"
	"strings"

	"inline/internal/source"
)

// Error is a fatal failure with enough context to locate it.
type Error struct {
	Code Code
	// Path of the file the error refers to, if any.
	Path string
	// Span inside the file; meaningful only when Pos is set.
	Span source.Span
	// Pos is the resolved start of Span.
	Pos *source.LineCol
	// Line is the source line at Pos, used for the caret excerpt.
	Line string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Msg)
	if e.Err != nil {
		if e.Msg != "" {
			b.WriteString(": ")
		}
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// New creates an error with a code and message.
func New(code Code, path, msg string) *Error {
	return &Error{Code: code, Path: path, Msg: msg}
}

// Wrap attaches a code and path to an underlying error.
func Wrap(code Code, path, msg string, err error) *Error {
	return &Error{Code: code, Path: path, Msg: msg, Err: err}
}

// At records the span of the error inside file and resolves its position.
// Path is filled from the file when empty.
func (e *Error) At(file *source.File, sp source.Span) *Error {
	if e == nil || file == nil {
		return e
	}
	pos := file.Position(sp.Start)
	e.Span = sp
	e.Pos = &pos
	e.Line = file.GetLine(pos.Line)
	if e.Path == "" {
		e.Path = file.Path
	}
	return e
}

// As returns the outermost *Error in err's chain.
func As(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// Is reports whether err's chain contains a *Error with the given code.
func Is(err error, code Code) bool {
	for err != nil {
		var de *Error
		if !errors.As(err, &de) {
			return false
		}
		if de.Code == code {
			return true
		}
		err = de.Err
	}
	return false
}

// CodeOf returns the code of the outermost *Error, or UnknownCode.
func CodeOf(err error) Code {
	if de, ok := As(err); ok {
		return de.Code
	}
	return UnknownCode
}
