package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"inline/internal/diag"
	"inline/internal/flatten"
	"inline/internal/observ"
)

func runInline(cmd *cobra.Command, args []string) error {
	colorEnabled(cmd, os.Stderr)
	stderr := cmd.ErrOrStderr()
	logger, err := newEngineLogger(cmd)
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return fmt.Errorf("failed to get force flag: %w", err)
	}
	showTimings, err := cmd.Flags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	timer := observ.NewTimer()

	fsys := flatten.OSFS{}
	root, err := canonicalRoot(fsys, args[0])
	if err != nil {
		return err
	}
	var outPath string
	if len(args) > 1 {
		outPath = args[1]
		// отказываем заранее, чтобы не раскрывать крейт впустую
		if !force && fsys.Exists(outPath) {
			return outputExists(outPath)
		}
	}

	endConfig := timer.Start("config")
	opts, manifest, err := loadOptions(cmd, root)
	if err != nil {
		return err
	}
	opts.Logger = logger
	endConfig(manifest.Path)

	if opts.Verbose {
		logger.Infof("[i] Expanding crate root %s", root)
	}

	endExpand := timer.Start("expand")
	engine := flatten.New(fsys, opts)
	result, err := engine.Expand(root)
	if err != nil {
		return err
	}
	stats := engine.Stats()
	endExpand(fmt.Sprintf("%d modules, %d files", stats.Units, stats.Files))

	if opts.Verbose {
		logger.Infof("[i] Inlined %d modules (%d missing, %d excluded)", stats.Units, stats.Missing, stats.Excluded)
	}

	endWrite := timer.Start("write")
	if outPath == "" {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), result); err != nil {
			return diag.Wrap(diag.WriteFailure, "", "failed to write to stdout", err)
		}
	} else if err := writeOutput(outPath, result, force); err != nil {
		return err
	}
	endWrite(outPath)

	if showTimings {
		if err := timer.WriteSummary(stderr); err != nil {
			return fmt.Errorf("failed to print timings: %w", err)
		}
	}
	return nil
}

// writeOutput creates (or, with force, truncates) path and writes text to it.
// Without force an existing path is never touched.
func writeOutput(path, text string, force bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}
	// #nosec G304 -- output path is provided by the user
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return outputExists(path)
		}
		return diag.Wrap(diag.WriteFailure, path, "failed to create "+path, err)
	}
	if _, err := f.WriteString(text); err != nil {
		_ = f.Close()
		return diag.Wrap(diag.WriteFailure, path, "failed to write "+path, err)
	}
	if err := f.Close(); err != nil {
		return diag.Wrap(diag.WriteFailure, path, "failed to write "+path, err)
	}
	return nil
}

func outputExists(path string) error {
	return diag.New(diag.OutputAlreadyExists, path,
		fmt.Sprintf("not writing to existing file %s. Pass `--force` to force", path))
}
