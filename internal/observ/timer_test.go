package observ

import (
	"strings"
	"testing"
)

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	i := tm.Begin(PhaseRead)
	tm.End(i, "12 bytes")
	tm.End(99, "ignored")
	j := tm.Begin(PhaseReflow)
	tm.End(j, "")

	r := tm.Report()
	if len(r.Phases) != 2 || r.Phases[0].Name != PhaseRead || r.Phases[0].Note != "12 bytes" {
		t.Fatalf("unexpected report %+v", r)
	}
	s := r.Summary()
	for _, want := range []string{"read", "reflow", "total", "// 12 bytes"} {
		if !strings.Contains(s, want) {
			t.Fatalf("summary misses %q:\n%s", want, s)
		}
	}
}

func TestNilTimer(t *testing.T) {
	var tm *Timer
	tm.End(tm.Begin(PhaseWrite), "")
	if r := tm.Report(); len(r.Phases) != 0 {
		t.Fatalf("nil timer must report nothing")
	}
}

func TestMerge(t *testing.T) {
	a := Report{TotalMS: 3, Phases: []PhaseReport{{Name: PhaseRead, DurationMS: 1}, {Name: PhaseReflow, DurationMS: 2}}}
	b := Report{TotalMS: 4, Phases: []PhaseReport{{Name: PhaseReflow, DurationMS: 3}, {Name: PhaseWrite, DurationMS: 1, Note: "x"}}}
	m := Merge(a, b)
	if m.TotalMS != 7 || len(m.Phases) != 3 {
		t.Fatalf("merge = %+v", m)
	}
	if m.Phases[1].Name != PhaseReflow || m.Phases[1].DurationMS != 5 {
		t.Fatalf("reflow phase = %+v", m.Phases[1])
	}
	if m.Phases[2].Note != "" {
		t.Fatalf("notes must be dropped")
	}
}
