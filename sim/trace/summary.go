package trace

import (
	"fmt"
	"strings"
)

// Gantt renders the timeline as a one-line text chart with idle gaps made
// explicit, e.g.:
//
//	| P1 0-5 | P2 5-8 | idle 8-10 | P3 10-18 |
//
// Slices are consolidated first, so unit-stepped runs read as whole
// dispatch intervals.
func Gantt(slices []Slice) string {
	merged := Consolidate(slices)
	if len(merged) == 0 {
		return "(empty timeline)"
	}
	var sb strings.Builder
	cursor := merged[0].Start
	for _, s := range merged {
		if s.Start > cursor {
			fmt.Fprintf(&sb, "| idle %d-%d ", cursor, s.Start)
		}
		fmt.Fprintf(&sb, "| P%d %d-%d ", s.PID, s.Start, s.End)
		cursor = s.End
	}
	sb.WriteString("|")
	return sb.String()
}
