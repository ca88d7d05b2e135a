// sim/engine.go
//
// The Engine owns the process set, the simulation clock, and the execution
// timeline. One entry point per scheduling policy; every entry point resets
// derived state and simulates the full set from tick zero to completion.

package sim

import (
	"container/heap"
	"errors"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/cpusched/cpusched/sim/trace"
)

var (
	// ErrInvalidQuantum is returned when Round Robin is invoked with a
	// quantum <= 0. Detected before any simulation state is mutated.
	ErrInvalidQuantum = errors.New("quantum must be positive")

	// ErrDuplicatePID is returned when a second process with an already
	// registered pid is admitted.
	ErrDuplicatePID = errors.New("duplicate pid")

	// ErrInvalidProcess is returned for a non-positive burst time or a
	// negative arrival time. Unvalidated, these silently produce negative
	// waiting and turnaround times, so admission rejects them.
	ErrInvalidProcess = errors.New("invalid process")
)

// Engine is the core object that holds simulation time, the process records,
// and the timeline of CPU assignments.
//
// NOT safe for concurrent use: all policies mutate the process records in
// place. Callers comparing policies side by side must either sequence runs
// (each Run* resets everything) or run each policy on a Clone.
type Engine struct {
	Processes []*Process
	// Clock is the simulation clock in integer ticks. Monotone; jumps
	// forward only when no process is ready (idle skip).
	Clock int64
	// Timeline records every CPU assignment in dispatch order.
	Timeline *trace.Timeline
	// ContextSwitches counts transitions of the CPU to a different process,
	// first dispatches included. FIFO leaves it at zero.
	ContextSwitches int

	byPID map[int]*Process
}

// NewEngine creates an empty engine ready for process admission.
func NewEngine() *Engine {
	return &Engine{
		Processes: make([]*Process, 0),
		Timeline:  &trace.Timeline{},
		byPID:     make(map[int]*Process),
	}
}

// AddProcess admits a process into the engine's set.
// Rejects duplicate pids and invalid static inputs before they can reach a
// simulation loop.
func (e *Engine) AddProcess(p *Process) error {
	if p.BurstTime <= 0 {
		return fmt.Errorf("%w: pid %d has burst time %d, want > 0", ErrInvalidProcess, p.PID, p.BurstTime)
	}
	if p.ArrivalTime < 0 {
		return fmt.Errorf("%w: pid %d has arrival time %d, want >= 0", ErrInvalidProcess, p.PID, p.ArrivalTime)
	}
	if _, exists := e.byPID[p.PID]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicatePID, p.PID)
	}
	e.byPID[p.PID] = p
	e.Processes = append(e.Processes, p)
	return nil
}

// Reset restores every process to its initial NEW state and clears the
// clock, timeline, and context-switch counter. Idempotent; runs
// automatically at the start of every policy entry point.
func (e *Engine) Reset() {
	e.Clock = 0
	e.ContextSwitches = 0
	e.Timeline.Reset()
	for _, p := range e.Processes {
		p.resetDerived()
	}
}

// Clone returns a deep copy of the engine with every process reset.
// Use it to run several policies over the same process set concurrently;
// the original and the clone share no state.
func (e *Engine) Clone() *Engine {
	c := NewEngine()
	for _, p := range e.Processes {
		cp := NewProcess(p.PID, p.ArrivalTime, p.BurstTime, p.Priority)
		c.byPID[cp.PID] = cp
		c.Processes = append(c.Processes, cp)
	}
	return c
}

// arrivalOrder returns the processes sorted by arrival time.
// The sort is stable: processes arriving at the same tick keep the order in
// which they were admitted.
func (e *Engine) arrivalOrder() []*Process {
	procs := make([]*Process, len(e.Processes))
	copy(procs, e.Processes)
	sort.SliceStable(procs, func(i, j int) bool {
		return procs[i].ArrivalTime < procs[j].ArrivalTime
	})
	return procs
}

// dispatch puts p on the CPU, recording first-dispatch timing and counting
// the context switch.
func (e *Engine) dispatch(p *Process) {
	if p.StartTime == Unset {
		p.StartTime = e.Clock
		p.ResponseTime = e.Clock - p.ArrivalTime
	}
	p.State = StateRunning
	e.ContextSwitches++
	logrus.Debugf("[tick %07d] dispatch pid %d (remaining %d)", e.Clock, p.PID, p.RemainingTime)
}

// complete marks p terminated at the current clock and seals its timing.
func (e *Engine) complete(p *Process) {
	p.CompletionTime = e.Clock
	p.State = StateTerminated
	p.finalize()
	logrus.Debugf("[tick %07d] pid %d terminated", e.Clock, p.PID)
}

// runKeyed is the shared unit-stepping loop behind SJF and Priority
// scheduling. The ready set is a min-heap ordered by key with pid as the
// deterministic tie-break. In preemptive mode the running process is
// requeued whenever a strictly smaller-keyed process is ready; requeueing
// is a heap push followed by a pop, O(log n) per preemption check.
//
// Termination is bounded: every iteration either retires one tick of some
// process's remaining time or jumps the clock to a future arrival, and both
// quantities are finite.
func (e *Engine) runKeyed(key func(*Process) int64, preemptive bool) {
	e.Reset()
	arrivals := e.arrivalOrder()
	next := 0
	ready := &readyHeap{key: key}
	var current *Process

	for {
		// admit everything that has arrived by now
		for next < len(arrivals) && arrivals[next].ArrivalTime <= e.Clock {
			arrivals[next].State = StateReady
			heap.Push(ready, arrivals[next])
			next++
		}

		if current == nil {
			if ready.Len() == 0 {
				if next >= len(arrivals) {
					return
				}
				// idle skip: jump straight to the next arrival
				e.Clock = arrivals[next].ArrivalTime
				continue
			}
			current = heap.Pop(ready).(*Process)
			e.dispatch(current)
		} else if preemptive && ready.Len() > 0 && ready.minKey() < key(current) {
			// a strictly better candidate became ready
			current.State = StateReady
			heap.Push(ready, current)
			current = heap.Pop(ready).(*Process)
			e.dispatch(current)
		}

		// execute one time unit
		e.Timeline.Append(current.PID, e.Clock, e.Clock+1)
		current.RemainingTime--
		e.Clock++

		if current.RemainingTime == 0 {
			e.complete(current)
			current = nil
		}
	}
}
