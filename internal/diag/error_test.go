package diag

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"inline/internal/source"
)

func TestIsThroughWrapping(t *testing.T) {
	base := Wrap(ReadFailure, "a.rs", "failed to read a.rs", fs.ErrPermission)
	wrapped := fmt.Errorf("expanding b.rs: %w", base)

	if !Is(wrapped, ReadFailure) {
		t.Fatal("expected ReadFailure in chain")
	}
	if Is(wrapped, FileNotFound) {
		t.Fatal("unexpected FileNotFound")
	}
	if !errors.Is(wrapped, fs.ErrPermission) {
		t.Fatal("expected the os error to stay reachable")
	}
	if CodeOf(wrapped) != ReadFailure {
		t.Fatalf("CodeOf = %v", CodeOf(wrapped))
	}
	if CodeOf(errors.New("plain")) != UnknownCode {
		t.Fatal("plain errors have no code")
	}
}

func TestIsFindsInnerCode(t *testing.T) {
	inner := New(MalformedComment, "c.rs", "unterminated block comment")
	outer := Wrap(CycleDetected, "", "outer", inner)
	if !Is(outer, MalformedComment) || !Is(outer, CycleDetected) {
		t.Fatal("both codes must be visible")
	}
}

func TestErrorMessage(t *testing.T) {
	if got := New(InvalidRoot, "x", "not a root").Error(); got != "not a root" {
		t.Errorf("got %q", got)
	}
	if got := Wrap(WriteFailure, "x", "write x", errors.New("disk full")).Error(); got != "write x: disk full" {
		t.Errorf("got %q", got)
	}
}

func TestCodeID(t *testing.T) {
	if MalformedComment.ID() != "E0005" {
		t.Errorf("ID = %s", MalformedComment.ID())
	}
	if OutputAlreadyExists.String() != "OutputAlreadyExists" {
		t.Errorf("String = %s", OutputAlreadyExists)
	}
	if Code(99).String() != "Code(99)" {
		t.Errorf("unknown code String = %s", Code(99))
	}
}

func TestPrettyWithPosition(t *testing.T) {
	fset := source.NewFileSet()
	file := fset.Get(fset.AddVirtual("src/lib.rs", []byte("mod a;\n  /* never closed\n")))
	err := New(MalformedComment, "", "unterminated block comment").
		At(file, source.Span{File: file.ID, Start: 9, End: 11})

	var buf bytes.Buffer
	Pretty(&buf, fmt.Errorf("expanding crate: %w", err), PrettyOpts{})
	got := buf.String()

	for _, want := range []string{
		"error[E0005]: expanding crate: unterminated block comment",
		"--> src/lib.rs:2:3",
		"2 |   /* never closed",
		"  |   ^^",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestPrettyPlainError(t *testing.T) {
	var buf bytes.Buffer
	Pretty(&buf, errors.New("boom"), PrettyOpts{})
	if buf.String() != "error: boom\n" {
		t.Errorf("got %q", buf.String())
	}
}
