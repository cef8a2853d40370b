package flatten

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"inline/internal/project"
)

// Logger receives human-readable progress lines.
// Thin interface so the engine does not depend on how the CLI prints.
type Logger interface {
	Infof(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Infof(string, ...any) {}

// Options configures an Engine.
type Options struct {
	Dialect project.Dialect
	// IgnoreMissing replaces unresolvable units with Dialect.Placeholder.
	IgnoreMissing bool
	// DetectCycles fails with diag.CycleDetected instead of recursing forever.
	DetectCycles bool
	// Exclude holds doublestar patterns matched against unit paths such as
	// "net/tests". Matching declarations are left as written.
	Exclude []string
	// Verbose enables per-unit progress lines on Logger.
	Verbose bool
	Logger  Logger
}

// Validate checks the dialect and the exclude patterns.
func (o Options) Validate() error {
	if err := o.Dialect.WithDefaults().Validate(); err != nil {
		return err
	}
	for _, pattern := range o.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid exclude pattern %q", pattern)
		}
	}
	return nil
}

// Stats counts what a run did.
type Stats struct {
	// Files is the number of unit files read, the root included.
	Files int
	// Units is the number of declarations replaced by an inline block.
	Units int
	// Missing is the number of units replaced by the placeholder.
	Missing int
	// Excluded is the number of declarations left untouched by Exclude.
	Excluded int
}
