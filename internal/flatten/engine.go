package flatten

import (
	"fmt"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"inline/internal/diag"
	"inline/internal/lexer"
	"inline/internal/source"
)

// Engine expands unit declarations. An Engine is not safe for concurrent use;
// create one per run.
type Engine struct {
	fs     FS
	opts   Options
	active []string // файлы в текущей цепочке раскрытия (только DetectCycles)
	stats  Stats
}

// frame is the expansion context of one file.
type frame struct {
	base string // directory child declarations resolve against
	path string
	unit string // slash-joined unit path from the root, "" for the root
}

// New creates an engine reading through fsys.
func New(fsys FS, opts Options) *Engine {
	opts.Dialect = opts.Dialect.WithDefaults()
	if opts.Logger == nil {
		opts.Logger = nopLogger{}
	}
	return &Engine{
		fs:   fsys,
		opts: opts,
	}
}

// Stats returns counters accumulated over all calls on e.
func (e *Engine) Stats() Stats { return e.stats }

// Expand reads the file at path and returns it with every declaration
// recursively inlined.
func (e *Engine) Expand(path string) (string, error) {
	return e.expand(path, "")
}

// Flatten expands the declarations in text, which was read from path.
// Children are resolved against base.
func (e *Engine) Flatten(base, path string, text []byte) (string, error) {
	return e.flatten(frame{base: base, path: path}, source.NewFile(path, text, source.FileVirtual))
}

// BaseDir returns the directory the declarations of path resolve against:
// the sibling directory named after the file stem if it exists, otherwise the
// file's own directory.
func (e *Engine) BaseDir(path string) string {
	noExt := strings.TrimSuffix(path, filepath.Ext(path))
	if noExt != path && e.fs.IsDir(noExt) {
		return noExt
	}
	return filepath.Dir(path)
}

// Resolve maps a unit name to <base>/<name>.<ext>, falling back to
// <base>/<name>/<index>.<ext>. The fallback is returned even if it does not
// exist.
func (e *Engine) Resolve(base, name string) string {
	p := filepath.Join(base, e.opts.Dialect.FileName(name))
	if e.fs.IsFile(p) {
		return p
	}
	return filepath.Join(base, name, e.opts.Dialect.IndexName())
}

func (e *Engine) expand(p, unit string) (string, error) {
	if !e.fs.IsFile(p) {
		if e.opts.IgnoreMissing {
			e.stats.Missing++
			e.opts.Logger.Infof("[i] Could not find module at %s. Ignoring", p)
			return e.opts.Dialect.Placeholder, nil
		}
		return "", diag.New(diag.FileNotFound, p, fmt.Sprintf(
			"could not find module at %s. Use --ignore-missing to continue by ignoring missing modules", p))
	}

	if e.opts.DetectCycles {
		key, err := e.fs.Canonicalize(p)
		if err != nil {
			key = filepath.Clean(p)
		}
		if i := slices.Index(e.active, key); i >= 0 {
			chain := append(slices.Clone(e.active[i:]), key)
			return "", diag.New(diag.CycleDetected, p, "unit cycle: "+strings.Join(chain, " -> "))
		}
		e.active = append(e.active, key)
		defer func() { e.active = e.active[:len(e.active)-1] }()
	}

	content, err := e.fs.ReadFile(p)
	if err != nil {
		return "", diag.Wrap(diag.ReadFailure, p, "failed to read "+p, err)
	}
	e.stats.Files++
	// буфер живёт только до конца раскрытия этого файла
	return e.flatten(frame{base: e.BaseDir(p), path: p, unit: unit}, source.NewFile(p, content, 0))
}

func (e *Engine) flatten(fr frame, file *source.File) (string, error) {
	content := file.Content
	keyword := e.opts.Dialect.Keyword

	var out strings.Builder
	out.Grow(len(content))
	var lastCopied uint32
	pending := func(end uint32) []byte {
		return source.Span{Start: lastCopied, End: end}.Slice(content)
	}

	lx := lexer.New(file, lexer.Options{Keyword: keyword})
	for {
		tok, err := lx.Next()
		if err != nil {
			return "", err
		}
		if tok.IsEOF() {
			break
		}
		if !tok.IsKeyword() {
			continue
		}

		out.Write(pending(tok.Span.Start))
		lastCopied = tok.Span.Start

		// <keyword> <ident> ; иначе это не объявление, едем дальше
		nameTok, err := lx.Next()
		if err != nil {
			return "", err
		}
		if !nameTok.IsIdent() {
			continue
		}
		semiTok, err := lx.Next()
		if err != nil {
			return "", err
		}
		if !semiTok.IsSemicolon() {
			continue
		}

		decl := tok.Span.Cover(semiTok.Span)
		name := nameTok.Text
		unit := path.Join(fr.unit, name)
		if e.excluded(unit) {
			e.stats.Excluded++
			if e.opts.Verbose {
				pos := file.Position(decl.Start)
				e.opts.Logger.Infof("[i] Skipping excluded module %s at %s:%d:%d", unit, fr.path, pos.Line, pos.Col)
			}
			continue
		}

		child := e.Resolve(fr.base, name)
		if e.opts.Verbose {
			e.opts.Logger.Infof("[i] Expanding module %s from %s", child, fr.path)
		}
		expanded, err := e.expand(child, unit)
		if err != nil {
			return "", err
		}
		e.stats.Units++

		out.WriteString(keyword)
		out.WriteByte(' ')
		out.WriteString(name)
		out.WriteString("{\n")
		out.WriteString(expanded)
		out.WriteString("\n}\n")

		lastCopied = decl.End
	}
	out.Write(content[lastCopied:])
	return out.String(), nil
}

func (e *Engine) excluded(unit string) bool {
	for _, pattern := range e.opts.Exclude {
		if ok, err := doublestar.Match(pattern, unit); err == nil && ok {
			return true
		}
	}
	return false
}
