// Package workload loads and generates process sets for the scheduling
// engine. File loading supports YAML, CSV, and JSON; synthetic generation
// is deterministic for a given seed.
package workload

import (
	"fmt"

	"github.com/cpusched/cpusched/sim"
)

// ProcessSpec is the static description of one process — the interchange
// record for workload files and the HTTP API.
type ProcessSpec struct {
	PID      int   `yaml:"pid" json:"pid"`
	Arrival  int64 `yaml:"arrival_time" json:"arrival_time"`
	Burst    int64 `yaml:"burst_time" json:"burst_time"`
	Priority int   `yaml:"priority" json:"priority"`
}

// ProcessSet is the top-level document shape for YAML and JSON workload
// files.
type ProcessSet struct {
	Processes []ProcessSpec `yaml:"processes" json:"processes"`
}

// Build admits every spec into a fresh engine. Admission errors (duplicate
// pids, invalid static inputs) are reported with the offending pid.
func Build(specs []ProcessSpec) (*sim.Engine, error) {
	eng := sim.NewEngine()
	for _, s := range specs {
		if err := eng.AddProcess(sim.NewProcess(s.PID, s.Arrival, s.Burst, s.Priority)); err != nil {
			return nil, fmt.Errorf("admitting process set: %w", err)
		}
	}
	return eng, nil
}
