// Defines the Process struct that models one schedulable unit in the
// simulation. Tracks the static inputs (arrival, burst, priority) and the
// timing fields a policy run derives.

package sim

import (
	"fmt"
)

// ProcessState represents the lifecycle state of a process.
type ProcessState string

const (
	StateNew     ProcessState = "new"
	StateReady   ProcessState = "ready"
	StateRunning ProcessState = "running"
	// StateWaiting exists for completeness of the classic state machine; the
	// simulated processes are purely compute-bound and never block on I/O.
	StateWaiting    ProcessState = "waiting"
	StateTerminated ProcessState = "terminated"
)

// Unset marks a derived timestamp that has not been assigned yet:
// StartTime before the first dispatch, CompletionTime before the process
// finishes.
const Unset int64 = -1

// Process models a single process's lifecycle in the simulation.
// The static inputs are set by the caller; everything else is rewritten by
// each policy run.
type Process struct {
	PID int // unique, caller-assigned, stable for the process's lifetime

	ArrivalTime int64 // tick at which the process becomes eligible (>= 0)
	BurstTime   int64 // total CPU time required (> 0)
	Priority    int   // lower value = higher priority

	RemainingTime  int64        // counts down from BurstTime to 0
	StartTime      int64        // first tick on the CPU, Unset until first dispatch
	CompletionTime int64        // tick at which RemainingTime reached 0, Unset until then
	WaitingTime    int64        // turnaround - burst
	TurnaroundTime int64        // completion - arrival
	ResponseTime   int64        // start - arrival
	State          ProcessState // new, ready, running, terminated
}

// NewProcess creates a process with only the static inputs set and the
// derived fields in their initial NEW state.
func NewProcess(pid int, arrival, burst int64, priority int) *Process {
	p := &Process{
		PID:         pid,
		ArrivalTime: arrival,
		BurstTime:   burst,
		Priority:    priority,
	}
	p.resetDerived()
	return p
}

// resetDerived restores every derived field to its initial NEW state.
// Idempotent; called by Engine.Reset before each policy run.
func (p *Process) resetDerived() {
	p.RemainingTime = p.BurstTime
	p.StartTime = Unset
	p.CompletionTime = Unset
	p.WaitingTime = 0
	p.TurnaroundTime = 0
	p.ResponseTime = 0
	p.State = StateNew
}

// finalize recomputes the derived timing fields from CompletionTime.
// Safe to call repeatedly; a process that never completed is left untouched.
func (p *Process) finalize() {
	if p.CompletionTime == Unset {
		return
	}
	p.TurnaroundTime = p.CompletionTime - p.ArrivalTime
	p.WaitingTime = p.TurnaroundTime - p.BurstTime
	if p.StartTime != Unset {
		p.ResponseTime = p.StartTime - p.ArrivalTime
	}
}

// String returns a human-readable representation of a Process.
func (p Process) String() string {
	return fmt.Sprintf("Process: (PID: %d, State: %s, Remaining: %d, ArrivalTime: %d)", p.PID, p.State, p.RemainingTime, p.ArrivalTime)
}
