package observ

import (
	"fmt"
	"io"
	"time"
)

// Phase records the duration of one step of a run.
type Phase struct {
	Name string
	Dur  time.Duration
	Note string
}

// Timer tracks the durations of sequential phases.
type Timer struct {
	phases []Phase
	now    func() time.Time
}

// NewTimer creates a new empty Timer.
func NewTimer() *Timer {
	return &Timer{phases: make([]Phase, 0, 4), now: time.Now}
}

// Start begins a phase; the returned func ends it with an optional note.
// Calling the func more than once only keeps the first measurement.
func (t *Timer) Start(name string) func(note string) {
	start := t.now()
	idx := len(t.phases)
	t.phases = append(t.phases, Phase{Name: name, Dur: -1})
	return func(note string) {
		p := &t.phases[idx]
		if p.Dur >= 0 {
			return
		}
		p.Dur = t.now().Sub(start)
		p.Note = note
	}
}

// Phases returns the finished phases in start order.
func (t *Timer) Phases() []Phase {
	out := make([]Phase, 0, len(t.phases))
	for _, p := range t.phases {
		if p.Dur >= 0 {
			out = append(out, p)
		}
	}
	return out
}

// Total sums the durations of the finished phases.
func (t *Timer) Total() time.Duration {
	var total time.Duration
	for _, p := range t.Phases() {
		total += p.Dur
	}
	return total
}

// WriteSummary prints one line per phase and a total, in milliseconds.
func (t *Timer) WriteSummary(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "timings:"); err != nil {
		return err
	}
	for _, p := range t.Phases() {
		line := fmt.Sprintf("  %-12s %8.2f ms", p.Name, toMillis(p.Dur))
		if p.Note != "" {
			line += "  // " + p.Note
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "  %-12s %8.2f ms\n", "total", toMillis(t.Total()))
	return err
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
