package sim

import (
	"fmt"
)

// RunRoundRobin executes the process set with Round Robin scheduling and
// the given time quantum. Returns ErrInvalidQuantum for quantum <= 0 before
// touching any simulation state.
//
// The ready queue is strict FIFO. When the running process exhausts its
// quantum and the queue is non-empty, the process is re-appended to the
// tail after the arrivals admitted on that tick, then the head of the
// queue is dispatched. A process whose quantum expires while the queue is
// empty simply keeps the CPU for a fresh quantum.
func (e *Engine) RunRoundRobin(quantum int64) error {
	if quantum <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantum, quantum)
	}
	e.Reset()
	arrivals := e.arrivalOrder()
	next := 0
	rq := &ReadyQueue{}
	var current *Process
	var timeSlice int64

	for {
		// arrival admission happens first, so a process preempted on this
		// tick lands behind the new arrivals
		for next < len(arrivals) && arrivals[next].ArrivalTime <= e.Clock {
			arrivals[next].State = StateReady
			rq.Enqueue(arrivals[next])
			next++
		}

		if current == nil || (timeSlice == quantum && rq.Len() > 0) {
			if current != nil {
				current.State = StateReady
				rq.Enqueue(current)
			}
			if rq.Len() == 0 {
				if next >= len(arrivals) {
					return nil
				}
				// idle skip: jump straight to the next arrival
				e.Clock = arrivals[next].ArrivalTime
				continue
			}
			current = rq.Dequeue()
			timeSlice = 0
			e.dispatch(current)
		} else if timeSlice == quantum {
			// quantum expired with nothing else ready: keep the CPU
			timeSlice = 0
		}

		// execute one time unit
		e.Timeline.Append(current.PID, e.Clock, e.Clock+1)
		current.RemainingTime--
		timeSlice++
		e.Clock++

		if current.RemainingTime == 0 {
			e.complete(current)
			current = nil
			timeSlice = 0
		}
	}
}
