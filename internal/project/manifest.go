package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"inline/internal/diag"
)

// ManifestName is the file looked up next to (or above) the crate root.
const ManifestName = "inline.toml"

// Manifest is the decoded inline.toml.
type Manifest struct {
	Path    string
	Dialect Dialect
	Expand  ExpandConfig
}

// ExpandConfig holds the [expand] section.
type ExpandConfig struct {
	IgnoreMissing bool     `toml:"ignore-missing"`
	DetectCycles  bool     `toml:"detect-cycles"`
	Exclude       []string `toml:"exclude"`
}

type manifestFile struct {
	Dialect Dialect      `toml:"dialect"`
	Expand  ExpandConfig `toml:"expand"`
}

// DefaultManifest returns the configuration used when no inline.toml exists.
func DefaultManifest() *Manifest {
	return &Manifest{Dialect: DefaultDialect()}
}

// FindManifest walks up from startDir to locate inline.toml.
func FindManifest(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// LoadManifest decodes an inline.toml. Unknown keys are rejected so typos in
// the dialect do not silently fall back to defaults.
func LoadManifest(path string) (*Manifest, error) {
	var cfg manifestFile
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, diag.Wrap(diag.InvalidConfig, path, fmt.Sprintf("%s: failed to parse TOML", path), err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, diag.New(diag.InvalidConfig, path, fmt.Sprintf("%s: unknown key %q", path, undecoded[0].String()))
	}
	m := &Manifest{
		Path:    path,
		Dialect: cfg.Dialect.WithDefaults(),
		Expand:  cfg.Expand,
	}
	if err := m.Dialect.Validate(); err != nil {
		return nil, diag.Wrap(diag.InvalidConfig, path, fmt.Sprintf("%s: [dialect]", path), err)
	}
	return m, nil
}

// Discover finds and loads the manifest governing startDir. Without one it
// returns DefaultManifest.
func Discover(startDir string) (*Manifest, error) {
	path, ok, err := FindManifest(startDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		return DefaultManifest(), nil
	}
	return LoadManifest(path)
}
