// Derives simulation-wide metrics from a completed run: average waiting,
// turnaround, and response times, context switches, and CPU accounting.

package sim

import (
	"fmt"
)

// Metrics aggregates statistics about a finished policy run for final
// reporting. Useful for comparing algorithms over the same process set.
type Metrics struct {
	CompletedProcesses int     `json:"completed_processes"`
	AvgWaitingTime     float64 `json:"avg_waiting_time"`
	AvgTurnaroundTime  float64 `json:"avg_turnaround_time"`
	AvgResponseTime    float64 `json:"avg_response_time"`
	ContextSwitches    int     `json:"context_switches"`
	TotalTime          int64   `json:"total_time"`
	BusyTime           int64   `json:"busy_time"`
	IdleTime           int64   `json:"idle_time"`
	CPUUtilization     float64 `json:"cpu_utilization"`
	Throughput         float64 `json:"throughput"`
}

// Summarize derives aggregate metrics from the post-run process set.
// It is a pure query: per-process timing is recomputed from CompletionTime
// on every call, so repeated calls yield identical results. The second
// return value is false when no process has completed (an empty process
// set included) and the caller should treat the run as "no data".
func (e *Engine) Summarize() (*Metrics, bool) {
	var waitSum, turnSum, respSum int64
	completed := 0
	responded := 0
	for _, p := range e.Processes {
		if p.CompletionTime == Unset {
			continue
		}
		p.finalize()
		completed++
		waitSum += p.WaitingTime
		turnSum += p.TurnaroundTime
		if p.StartTime != Unset {
			respSum += p.ResponseTime
			responded++
		}
	}
	if completed == 0 {
		return nil, false
	}

	m := &Metrics{
		CompletedProcesses: completed,
		AvgWaitingTime:     float64(waitSum) / float64(completed),
		AvgTurnaroundTime:  float64(turnSum) / float64(completed),
		ContextSwitches:    e.ContextSwitches,
		TotalTime:          e.Clock,
		BusyTime:           e.Timeline.TotalBusy(),
	}
	if responded > 0 {
		m.AvgResponseTime = float64(respSum) / float64(responded)
	}
	m.IdleTime = m.TotalTime - m.BusyTime
	if m.TotalTime > 0 {
		m.CPUUtilization = float64(m.BusyTime) / float64(m.TotalTime)
		m.Throughput = float64(completed) / float64(m.TotalTime)
	}
	return m, true
}

// Print displays aggregated metrics at the end of a run.
func (m *Metrics) Print() {
	fmt.Println("=== Scheduling Metrics ===")
	fmt.Printf("Completed Processes  : %d\n", m.CompletedProcesses)
	fmt.Printf("Average Waiting      : %.2f ticks\n", m.AvgWaitingTime)
	fmt.Printf("Average Turnaround   : %.2f ticks\n", m.AvgTurnaroundTime)
	fmt.Printf("Average Response     : %.2f ticks\n", m.AvgResponseTime)
	fmt.Printf("Context Switches     : %d\n", m.ContextSwitches)
	fmt.Printf("Total Time           : %d ticks\n", m.TotalTime)
	fmt.Printf("CPU Utilization      : %.2f%%\n", m.CPUUtilization*100)
	fmt.Printf("Throughput           : %.4f proc/tick\n", m.Throughput)
}
