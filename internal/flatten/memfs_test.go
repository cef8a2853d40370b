package flatten

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
)

// memFS is an in-memory FS. Directories are implied by file paths; links
// rewrite a directory prefix to another one, like a directory symlink.
type memFS struct {
	files   map[string]string
	links   map[string]string
	readErr map[string]error
	reads   map[string]int
}

func newMemFS(files map[string]string) *memFS {
	clean := make(map[string]string, len(files))
	for p, c := range files {
		clean[filepath.Clean(p)] = c
	}
	return &memFS{
		files:   clean,
		links:   map[string]string{},
		readErr: map[string]error{},
		reads:   map[string]int{},
	}
}

func (m *memFS) resolve(p string) string {
	p = filepath.Clean(p)
	for range 64 {
		changed := false
		for link, target := range m.links {
			if p == link || strings.HasPrefix(p, link+string(filepath.Separator)) {
				p = target + p[len(link):]
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	return p
}

func (m *memFS) Exists(p string) bool { return m.IsFile(p) || m.IsDir(p) }

func (m *memFS) IsFile(p string) bool {
	_, ok := m.files[m.resolve(p)]
	return ok
}

func (m *memFS) IsDir(p string) bool {
	p = m.resolve(p)
	prefix := p + string(filepath.Separator)
	for name := range m.files {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	for link := range m.links {
		if link == p || strings.HasPrefix(link, prefix) {
			return true
		}
	}
	return false
}

func (m *memFS) ReadFile(p string) ([]byte, error) {
	p = m.resolve(p)
	if err, ok := m.readErr[p]; ok {
		return nil, err
	}
	c, ok := m.files[p]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: p, Err: fs.ErrNotExist}
	}
	m.reads[p]++
	return []byte(c), nil
}

func (m *memFS) Canonicalize(p string) (string, error) {
	if !m.Exists(p) {
		return "", errors.New("no such file")
	}
	return m.resolve(p), nil
}
