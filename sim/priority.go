package sim

// RunPriority executes the process set with fixed-priority scheduling.
// Lower priority values dispatch first; equal priorities dispatch in
// ascending pid order.
//
// A process's priority does not change while it runs. Preemptive mode
// switches when a strictly higher-priority process becomes ready;
// non-preemptive mode never interrupts a running process regardless of
// later arrivals.
func (e *Engine) RunPriority(preemptive bool) {
	e.runKeyed(func(p *Process) int64 { return int64(p.Priority) }, preemptive)
}
