package observ

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func fakeClock(step time.Duration) func() time.Time {
	now := time.Unix(0, 0)
	return func() time.Time {
		now = now.Add(step)
		return now
	}
}

func TestTimerPhases(t *testing.T) {
	tm := NewTimer()
	tm.now = fakeClock(time.Millisecond)

	endConfig := tm.Start("config")
	endConfig("inline.toml")
	endConfig("ignored")
	endExpand := tm.Start("expand")
	_ = tm.Start("write") // не завершена
	endExpand("")

	phases := tm.Phases()
	if len(phases) != 2 {
		t.Fatalf("expected 2 finished phases, got %d", len(phases))
	}
	if phases[0].Name != "config" || phases[0].Note != "inline.toml" || phases[0].Dur != time.Millisecond {
		t.Errorf("config phase = %+v", phases[0])
	}
	if phases[1].Name != "expand" || phases[1].Dur != 2*time.Millisecond {
		t.Errorf("expand phase = %+v", phases[1])
	}
	if tm.Total() != 3*time.Millisecond {
		t.Errorf("Total = %v", tm.Total())
	}

	var buf bytes.Buffer
	if err := tm.WriteSummary(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"timings:", "config", "// inline.toml", "expand", "total", "3.00 ms"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}
