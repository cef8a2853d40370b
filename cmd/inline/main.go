package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"inline/internal/diag"
	"inline/internal/version"
)

// newRootCmd builds the command tree. The root command itself flattens a crate.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "inline [flags] <crate_root> [output_file]",
		Short: "Inline an entire crate into a single file",
		Long: `Inline replaces every module declaration with the module's contents,
recursively, producing one self-contained file. Aimed at making it easy to
distribute reproducers, or run minimizers.

If an output path is passed, writes to that file, otherwise prints to stdout.`,
		Args:          cobra.RangeArgs(1, 2),
		RunE:          runInline,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}

	rootCmd.Flags().BoolP("force", "f", false, "force writing, even if the output file exists")

	// Глобальные флаги
	pf := rootCmd.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.Bool("timings", false, "show timing information")
	pf.BoolP("verbose", "v", false, "print verbose output")
	pf.Bool("ignore-missing", false, "ignore missing modules")
	pf.Bool("detect-cycles", false, "fail on module cycles instead of recursing forever")
	pf.String("config", "", "path to inline.toml (default: discovered from the crate root upwards)")
	pf.Bool("no-config", false, "do not look for inline.toml")
	pf.String("keyword", "", "declaration keyword (default: mod)")
	pf.String("ext", "", "module file extension (default: rs)")
	pf.StringArray("exclude", nil, "glob of module paths to leave unexpanded (repeatable)")

	rootCmd.AddCommand(newTokenizeCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// main runs the root command. Errors are rendered once to stderr and the
// process exits with status 1.
func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		diag.Pretty(os.Stderr, err, diag.PrettyOpts{Color: colorEnabled(rootCmd, os.Stderr)})
		os.Exit(1)
	}
}

// colorEnabled resolves --color for the given stream and configures fatih/color.
func colorEnabled(cmd *cobra.Command, f *os.File) bool {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		colorFlag = "auto"
	}
	enabled := colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
	color.NoColor = !enabled
	return enabled
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
