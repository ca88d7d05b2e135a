// Wire types for the scheduling API. Process fields and the
// (pid, start, end) timeline shape are the stable interchange format shared
// with the CLI's JSON output.

package api

import (
	"github.com/google/uuid"

	"github.com/cpusched/cpusched/sim"
	"github.com/cpusched/cpusched/sim/trace"
	"github.com/cpusched/cpusched/sim/workload"
)

// ScheduleRequest is the request body accepted by every policy endpoint.
// Quantum is only consulted by Round Robin; Preemptive only by SJF and
// Priority.
type ScheduleRequest struct {
	Processes  []workload.ProcessSpec `json:"processes"`
	Quantum    int64                  `json:"quantum,omitempty"`
	Preemptive bool                   `json:"preemptive,omitempty"`
}

// ProcessResult reports the derived timing fields for one process.
type ProcessResult struct {
	PID            int    `json:"pid"`
	ArrivalTime    int64  `json:"arrival_time"`
	BurstTime      int64  `json:"burst_time"`
	Priority       int    `json:"priority"`
	StartTime      int64  `json:"start_time"`
	CompletionTime int64  `json:"completion_time"`
	WaitingTime    int64  `json:"waiting_time"`
	TurnaroundTime int64  `json:"turnaround_time"`
	ResponseTime   int64  `json:"response_time"`
	State          string `json:"state"`
}

// ScheduleResponse is the result document for one policy run.
type ScheduleResponse struct {
	RunID     string          `json:"run_id"`
	Policy    string          `json:"policy"`
	Quantum   int64           `json:"quantum,omitempty"`
	Processes []ProcessResult `json:"processes"`
	Timeline  []trace.Slice   `json:"timeline"`
	Metrics   *sim.Metrics    `json:"metrics"` // null when no process completed
}

// BuildResponse assembles the result document from a finished run.
// The timeline is consolidated; the metrics field is nil for the "no data"
// case (empty process set).
func BuildResponse(eng *sim.Engine, policy sim.Policy, quantum int64) ScheduleResponse {
	resp := ScheduleResponse{
		RunID:    uuid.NewString(),
		Policy:   string(policy),
		Quantum:  quantum,
		Timeline: trace.Consolidate(eng.Timeline.Slices()),
	}
	for _, p := range eng.Processes {
		resp.Processes = append(resp.Processes, ProcessResult{
			PID:            p.PID,
			ArrivalTime:    p.ArrivalTime,
			BurstTime:      p.BurstTime,
			Priority:       p.Priority,
			StartTime:      p.StartTime,
			CompletionTime: p.CompletionTime,
			WaitingTime:    p.WaitingTime,
			TurnaroundTime: p.TurnaroundTime,
			ResponseTime:   p.ResponseTime,
			State:          string(p.State),
		})
	}
	if m, ok := eng.Summarize(); ok {
		resp.Metrics = m
	}
	return resp
}
