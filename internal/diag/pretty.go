package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// PrettyOpts controls error rendering.
type PrettyOpts struct {
	Color bool
}

// Pretty renders err in a compiler-like layout:
//
//	error[E0005]: unterminated block comment
//	  --> src/lib.rs:3:1
//	   |
//	 3 | /* never closed
//	   | ^
//
// Errors without a *Error in their chain are printed as a single line.
func Pretty(w io.Writer, err error, opts PrettyOpts) {
	if err == nil {
		return
	}
	errStyle := color.New(color.FgRed, color.Bold)
	gutterStyle := color.New(color.FgBlue, color.Bold)
	if opts.Color {
		errStyle.EnableColor()
		gutterStyle.EnableColor()
	} else {
		errStyle.DisableColor()
		gutterStyle.DisableColor()
	}

	de, ok := As(err)
	if !ok {
		fmt.Fprintf(w, "%s %s\n", errStyle.Sprint("error:"), err)
		return
	}

	fmt.Fprintf(w, "%s %s\n", errStyle.Sprintf("error[%s]:", de.Code.ID()), err)

	if de.Path == "" {
		return
	}
	if de.Pos == nil {
		fmt.Fprintf(w, "  %s %s\n", gutterStyle.Sprint("-->"), de.Path)
		return
	}
	fmt.Fprintf(w, "  %s %s:%d:%d\n", gutterStyle.Sprint("-->"), de.Path, de.Pos.Line, de.Pos.Col)

	lineNo := fmt.Sprintf("%d", de.Pos.Line)
	pad := strings.Repeat(" ", len(lineNo))
	fmt.Fprintf(w, " %s %s\n", pad, gutterStyle.Sprint("|"))
	fmt.Fprintf(w, " %s %s %s\n", gutterStyle.Sprint(lineNo), gutterStyle.Sprint("|"), expandTabs(de.Line))
	caretCol := max(int(de.Pos.Col)-1, 0)
	width := 1
	if !de.Span.Empty() && de.Span.Len() <= 2 {
		width = int(de.Span.Len())
	}
	fmt.Fprintf(w, " %s %s %s%s\n", pad, gutterStyle.Sprint("|"),
		strings.Repeat(" ", caretCol), errStyle.Sprint(strings.Repeat("^", width)))
}

// tabs are replaced by a single space so the caret column stays aligned
func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", " ")
}
