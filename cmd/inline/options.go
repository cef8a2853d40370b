package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"inline/internal/diag"
	"inline/internal/flatten"
	"inline/internal/project"
)

// loadOptions merges defaults, inline.toml and explicitly set flags, in that
// order of precedence. The manifest is discovered from the directory of root.
func loadOptions(cmd *cobra.Command, root string) (flatten.Options, *project.Manifest, error) {
	flags := cmd.Flags()

	manifest := project.DefaultManifest()
	configPath, err := flags.GetString("config")
	if err != nil {
		return flatten.Options{}, nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	noConfig, err := flags.GetBool("no-config")
	if err != nil {
		return flatten.Options{}, nil, fmt.Errorf("failed to get no-config flag: %w", err)
	}
	switch {
	case configPath != "":
		manifest, err = project.LoadManifest(configPath)
	case !noConfig:
		manifest, err = project.Discover(filepath.Dir(root))
	}
	if err != nil {
		return flatten.Options{}, nil, err
	}

	opts := flatten.Options{
		Dialect:       manifest.Dialect,
		IgnoreMissing: manifest.Expand.IgnoreMissing,
		DetectCycles:  manifest.Expand.DetectCycles,
		Exclude:       append([]string(nil), manifest.Expand.Exclude...),
	}

	if flags.Changed("keyword") {
		opts.Dialect.Keyword, _ = flags.GetString("keyword")
	}
	if flags.Changed("ext") {
		opts.Dialect.Extension, _ = flags.GetString("ext")
	}
	if flags.Changed("ignore-missing") {
		opts.IgnoreMissing, _ = flags.GetBool("ignore-missing")
	}
	if flags.Changed("detect-cycles") {
		opts.DetectCycles, _ = flags.GetBool("detect-cycles")
	}
	if flags.Changed("exclude") {
		extra, _ := flags.GetStringArray("exclude")
		opts.Exclude = append(opts.Exclude, extra...)
	}
	verbose, _ := flags.GetBool("verbose")
	quiet, _ := flags.GetBool("quiet")
	opts.Verbose = verbose && !quiet
	opts.Dialect = opts.Dialect.WithDefaults()

	if err := opts.Validate(); err != nil {
		return flatten.Options{}, nil, diag.Wrap(diag.InvalidConfig, manifest.Path, "invalid configuration", err)
	}
	return opts, manifest, nil
}

// canonicalRoot checks that path is a regular file and canonicalizes it.
func canonicalRoot(fsys flatten.FS, path string) (string, error) {
	if !fsys.IsFile(path) {
		return "", diag.New(diag.InvalidRoot, path, fmt.Sprintf(
			"not a valid crate root: %s. Expected something like foo/lib.rs or foo/main.rs or foo.rs", path))
	}
	root, err := fsys.Canonicalize(path)
	if err != nil {
		return "", diag.Wrap(diag.ReadFailure, path, "failed to canonicalize "+path, err)
	}
	return root, nil
}
