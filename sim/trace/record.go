// Package trace records the execution timeline of a scheduling run.
// This package has no dependencies on sim — it stores pure data types, and
// the (pid, start, end) slice shape is the stable interchange format for
// downstream consumers (tables, charts, exporters).
package trace

// Slice records one unbroken run of CPU time granted to a process:
// the half-open tick interval [Start, End).
type Slice struct {
	PID   int   `json:"pid"`
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

// Duration returns the length of the slice in ticks.
func (s Slice) Duration() int64 {
	return s.End - s.Start
}
