package trace

import (
	"fmt"
)

// Timeline collects execution slices in dispatch order. Append enforces
// the ordering invariant: slices arrive with non-decreasing start ticks
// and are never reordered afterwards.
type Timeline struct {
	slices []Slice
}

// Append records that pid held the CPU over [start, end).
// Panics on an inverted interval or an out-of-order append; both indicate
// a scheduling-loop bug, not a caller input error.
func (t *Timeline) Append(pid int, start, end int64) {
	if end <= start {
		panic(fmt.Sprintf("trace: inverted slice [%d, %d) for pid %d", start, end, pid))
	}
	if n := len(t.slices); n > 0 && start < t.slices[n-1].Start {
		panic(fmt.Sprintf("trace: out-of-order append at %d after %d", start, t.slices[n-1].Start))
	}
	t.slices = append(t.slices, Slice{PID: pid, Start: start, End: end})
}

// Reset discards all recorded slices.
func (t *Timeline) Reset() {
	t.slices = t.slices[:0]
}

// Len returns the number of recorded slices.
func (t *Timeline) Len() int {
	return len(t.slices)
}

// Slices returns the recorded slices for iteration.
// The returned slice is the timeline's internal storage -- callers may
// iterate over it but MUST NOT append to or reslice it.
func (t *Timeline) Slices() []Slice {
	return t.slices
}

// TotalBusy returns the total CPU time covered by the timeline, in ticks.
func (t *Timeline) TotalBusy() int64 {
	var busy int64
	for _, s := range t.slices {
		busy += s.Duration()
	}
	return busy
}

// Consolidate merges adjacent slices that belong to the same pid and have
// touching bounds into single intervals. Unit-stepping policies emit one
// slice per tick; consolidation is the presentation-level view of the same
// timeline. The input is not modified.
func Consolidate(slices []Slice) []Slice {
	if len(slices) == 0 {
		return nil
	}
	merged := make([]Slice, 0, len(slices))
	cur := slices[0]
	for _, s := range slices[1:] {
		if s.PID == cur.PID && s.Start == cur.End {
			cur.End = s.End
			continue
		}
		merged = append(merged, cur)
		cur = s
	}
	return append(merged, cur)
}
