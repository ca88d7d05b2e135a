package sim

// RunSJF executes the process set with Shortest Job First scheduling.
//
// Preemptive mode (Shortest Remaining Time First) keys the ready set by
// remaining time and interrupts the running process whenever a strictly
// shorter job becomes ready. Non-preemptive mode keys by total burst time
// and lets a dispatched process run to completion even if a shorter job
// arrives meanwhile. Equal durations dispatch in ascending pid order.
//
// Warning: under sustained load SJF can starve long processes.
func (e *Engine) RunSJF(preemptive bool) {
	if preemptive {
		e.runKeyed(func(p *Process) int64 { return p.RemainingTime }, true)
		return
	}
	e.runKeyed(func(p *Process) int64 { return p.BurstTime }, false)
}
