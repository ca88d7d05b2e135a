// Implements the ReadyQueue used by Round Robin: a plain FIFO of ready
// processes, appended on arrival and re-appended after an expired quantum.

package sim

import (
	"fmt"
	"strings"
)

// ReadyQueue represents a FIFO queue of processes waiting for the CPU.
// Round Robin admits arrivals at the tail and never re-sorts.
type ReadyQueue struct {
	queue []*Process
}

// Enqueue adds a process to the back of the ready queue.
func (rq *ReadyQueue) Enqueue(p *Process) {
	rq.queue = append(rq.queue, p)
}

// Dequeue removes and returns the process at the front of the queue.
// Returns nil if the queue is empty.
func (rq *ReadyQueue) Dequeue() *Process {
	if len(rq.queue) == 0 {
		return nil
	}
	head := rq.queue[0]
	rq.queue = rq.queue[1:]
	return head
}

// Peek returns the process at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (rq *ReadyQueue) Peek() *Process {
	if len(rq.queue) == 0 {
		return nil
	}
	return rq.queue[0]
}

// Len returns the number of processes in the queue.
func (rq *ReadyQueue) Len() int {
	return len(rq.queue)
}

func (rq *ReadyQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, p := range rq.queue {
		sb.WriteString(fmt.Sprint(p))
		if i < len(rq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
