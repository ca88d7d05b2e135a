package sim

// RunFIFO executes the process set to completion in arrival order without
// preemption. Ties on arrival time keep the caller's admission order.
//
// Each process transitions to RUNNING exactly once, so the context-switch
// counter stays at zero for this policy. The only idle time FIFO models is
// the jump to the next process's arrival when the CPU would otherwise wait.
func (e *Engine) RunFIFO() {
	e.Reset()
	for _, p := range e.arrivalOrder() {
		if e.Clock < p.ArrivalTime {
			e.Clock = p.ArrivalTime
		}
		p.State = StateReady
		p.StartTime = e.Clock
		p.ResponseTime = e.Clock - p.ArrivalTime
		p.State = StateRunning
		e.Timeline.Append(p.PID, e.Clock, e.Clock+p.BurstTime)
		e.Clock += p.BurstTime
		p.RemainingTime = 0
		e.complete(p)
	}
}
