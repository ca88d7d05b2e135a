package sim

// readyHeap implements heap.Interface over the ready set, ordered by a
// policy-supplied key with pid as the deterministic tie-break (lower pid
// wins on equal keys). See the canonical Golang example here:
// https://pkg.go.dev/container/heap#example-package-IntHeap
type readyHeap struct {
	procs []*Process
	key   func(*Process) int64
}

func (h readyHeap) Len() int { return len(h.procs) }

func (h readyHeap) Less(i, j int) bool {
	ki, kj := h.key(h.procs[i]), h.key(h.procs[j])
	if ki != kj {
		return ki < kj
	}
	return h.procs[i].PID < h.procs[j].PID
}

func (h readyHeap) Swap(i, j int) { h.procs[i], h.procs[j] = h.procs[j], h.procs[i] }

func (h *readyHeap) Push(x any) {
	h.procs = append(h.procs, x.(*Process))
}

func (h *readyHeap) Pop() any {
	old := h.procs
	n := len(old)
	item := old[n-1]
	h.procs = old[:n-1]
	return item
}

// minKey returns the key of the minimum element. Caller must check Len first.
func (h *readyHeap) minKey() int64 {
	return h.key(h.procs[0])
}
