package main

import (
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"inline/internal/diag"
	"inline/internal/flatten"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [flags] <crate_root>...",
		Short: "Verify that crates inline cleanly without writing anything",
		Long: `Check expands each crate root and reports how many modules it inlined.
Roots are processed in parallel; each root is expanded on its own.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCheck,
	}
	cmd.Flags().IntP("jobs", "j", runtime.NumCPU(), "maximum number of crates expanded at once")
	return cmd
}

type checkResult struct {
	root  string
	stats flatten.Stats
	bytes int
	err   error
}

func runCheck(cmd *cobra.Command, args []string) error {
	useColor := colorEnabled(cmd, os.Stderr)
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if jobs < 1 {
		jobs = 1
	}
	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	logger, err := newEngineLogger(cmd)
	if err != nil {
		return err
	}
	bar := newCheckBar(len(args), quiet || !isTerminal(os.Stderr))
	var barMu sync.Mutex

	results := make([]checkResult, len(args))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(jobs)
	for i, arg := range args {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = checkResult{root: arg, err: err}
				return nil
			}
			results[i] = checkRoot(cmd, arg, logger)
			if bar != nil {
				barMu.Lock()
				_ = bar.Add(1)
				barMu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if bar != nil {
		_ = bar.Finish()
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, res := range results {
		if res.err != nil {
			failed++
			fmt.Fprintf(out, "FAIL %s [%s]\n", res.root, diag.CodeOf(res.err).ID())
			diag.Pretty(cmd.ErrOrStderr(), res.err, diag.PrettyOpts{Color: useColor})
			continue
		}
		if !quiet {
			fmt.Fprintf(out, "ok   %s (%d modules, %d missing, %d excluded, %d bytes)\n",
				res.root, res.stats.Units, res.stats.Missing, res.stats.Excluded, res.bytes)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d crates failed to inline", failed, len(results))
	}
	return nil
}

func checkRoot(cmd *cobra.Command, arg string, logger flatten.Logger) checkResult {
	res := checkResult{root: arg}
	fsys := flatten.OSFS{}
	root, err := canonicalRoot(fsys, arg)
	if err != nil {
		res.err = err
		return res
	}
	opts, _, err := loadOptions(cmd, root)
	if err != nil {
		res.err = err
		return res
	}
	opts.Logger = logger

	engine := flatten.New(fsys, opts)
	text, err := engine.Expand(root)
	res.stats = engine.Stats()
	res.bytes = len(text)
	res.err = err
	return res
}

func newCheckBar(total int, hidden bool) *progressbar.ProgressBar {
	if hidden || total < 2 {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("[cyan]Checking[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)
}
