package flatten

import (
	"os"
	"path/filepath"
)

// FS is the read-only view of the filesystem the engine works on.
type FS interface {
	Exists(path string) bool
	IsFile(path string) bool
	IsDir(path string) bool
	ReadFile(path string) ([]byte, error)
	Canonicalize(path string) (string, error)
}

// OSFS is FS backed by the host filesystem.
type OSFS struct{}

var _ FS = OSFS{}

func (OSFS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (OSFS) IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func (OSFS) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (OSFS) ReadFile(path string) ([]byte, error) {
	// #nosec G304 -- paths come from the crate tree being flattened
	return os.ReadFile(path)
}

// Canonicalize returns the absolute path with symlinks resolved.
func (OSFS) Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
