// Package sim provides the core discrete-time CPU scheduling engine.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - process.go: Process lifecycle (new → ready → running → terminated) and timing fields
//   - engine.go: The Engine state machine, reset contract, and the shared unit-stepping loop
//   - metrics.go: Aggregate metric derivation over a completed run
//
// # Architecture
//
// The sim package owns the process records, the simulation clock, and the
// execution timeline. One entry point exists per scheduling policy:
//   - fifo.go: non-preemptive arrival-order scheduling
//   - sjf.go: Shortest Job First, preemptive and non-preemptive
//   - roundrobin.go: Round Robin with a caller-supplied quantum
//   - priority.go: fixed-priority scheduling, preemptive and non-preemptive
//
// Supporting packages:
//   - sim/trace: the execution timeline (pure data, no dependency on sim)
//   - sim/workload: process-set files and synthetic generation
//
// Every policy run resets all derived state first and simulates the full
// process set from tick zero to completion. The engine is single-threaded
// by design: a run is a deterministic replay, not a live scheduler, and
// callers comparing policies concurrently must use Clone.
package sim
