package sim

import (
	"fmt"
)

// Policy names a scheduling algorithm for name-dispatched entry points
// (CLI flags, HTTP API).
type Policy string

const (
	PolicyFIFO                  Policy = "fifo"
	PolicySJF                   Policy = "sjf"
	PolicySJFNonPreemptive      Policy = "sjf-np"
	PolicyRoundRobin            Policy = "rr"
	PolicyPriority              Policy = "priority"
	PolicyPriorityNonPreemptive Policy = "priority-np"
)

// DefaultQuantum is the Round Robin time slice used when the caller
// passes zero to Run.
const DefaultQuantum int64 = 2

// validPolicies is the set of recognized policy names.
// Shared by IsValidPolicy and Run to avoid duplication.
var validPolicies = map[Policy]bool{
	PolicyFIFO:                  true,
	PolicySJF:                   true,
	PolicySJFNonPreemptive:      true,
	PolicyRoundRobin:            true,
	PolicyPriority:              true,
	PolicyPriorityNonPreemptive: true,
}

// IsValidPolicy returns true if the given name is a recognized policy.
func IsValidPolicy(name string) bool {
	return validPolicies[Policy(name)]
}

// Policies lists every recognized policy name, for help text and
// validation messages.
func Policies() []Policy {
	return []Policy{
		PolicyFIFO,
		PolicySJF,
		PolicySJFNonPreemptive,
		PolicyRoundRobin,
		PolicyPriority,
		PolicyPriorityNonPreemptive,
	}
}

// Run dispatches to the policy entry point named by policy. The quantum is
// only consulted for Round Robin; zero selects DefaultQuantum, while a
// negative value is rejected with ErrInvalidQuantum.
func (e *Engine) Run(policy Policy, quantum int64) error {
	switch policy {
	case PolicyFIFO:
		e.RunFIFO()
	case PolicySJF:
		e.RunSJF(true)
	case PolicySJFNonPreemptive:
		e.RunSJF(false)
	case PolicyRoundRobin:
		if quantum == 0 {
			quantum = DefaultQuantum
		}
		return e.RunRoundRobin(quantum)
	case PolicyPriority:
		e.RunPriority(true)
	case PolicyPriorityNonPreemptive:
		e.RunPriority(false)
	default:
		return fmt.Errorf("unknown policy %q", policy)
	}
	return nil
}
