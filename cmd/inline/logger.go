package main

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// stderrLogger prints progress lines for the engine. Safe for concurrent use
// so `check` can share one logger between workers.
type stderrLogger struct {
	mu    sync.Mutex
	w     io.Writer
	style *color.Color
}

func newStderrLogger(w io.Writer) *stderrLogger {
	return &stderrLogger{w: w, style: color.New(color.FgCyan)}
}

func (l *stderrLogger) Infof(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, l.style.Sprintf(format, args...))
}

// newEngineLogger returns the logger for engine notices. With --quiet every
// line, including the missing-module notice, is dropped.
func newEngineLogger(cmd *cobra.Command) (*stderrLogger, error) {
	quiet, err := cmd.Flags().GetBool("quiet")
	if err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if quiet {
		return newStderrLogger(io.Discard), nil
	}
	return newStderrLogger(cmd.ErrOrStderr()), nil
}
