package sim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cpusched/cpusched/sim/trace"
)

func TestRunRoundRobin_InvalidQuantum_RejectedBeforeSimulating(t *testing.T) {
	e := threeProcessSet(t)
	e.RunFIFO() // leave a finished run in place

	for _, q := range []int64{0, -1} {
		err := e.RunRoundRobin(q)
		require.Error(t, err, "quantum %d", q)
		assert.True(t, errors.Is(err, ErrInvalidQuantum), "quantum %d: got %v", q, err)
	}

	// fail-fast: the previous run's results are untouched
	assert.Equal(t, int64(16), e.Clock)
	assert.Positive(t, e.Timeline.Len())
}

func TestRunRoundRobin_CanonicalSet_Quantum2(t *testing.T) {
	// GIVEN P1(arr=0,burst=5), P2(arr=1,burst=3), P3(arr=2,burst=8)
	e := threeProcessSet(t)

	// WHEN Round Robin runs with quantum 2
	require.NoError(t, e.RunRoundRobin(2))

	// THEN the interleaving is the classic hand-worked schedule
	want := []trace.Slice{
		{PID: 1, Start: 0, End: 2},
		{PID: 2, Start: 2, End: 4},
		{PID: 3, Start: 4, End: 6},
		{PID: 1, Start: 6, End: 8},
		{PID: 2, Start: 8, End: 9},
		{PID: 3, Start: 9, End: 11},
		{PID: 1, Start: 11, End: 12},
		{PID: 3, Start: 12, End: 16},
	}
	assert.Equal(t, want, trace.Consolidate(e.Timeline.Slices()))

	wantCompletion := map[int]int64{1: 12, 2: 9, 3: 16}
	wantWaiting := map[int]int64{1: 7, 2: 5, 3: 6}
	for _, p := range e.Processes {
		assert.Equal(t, wantCompletion[p.PID], p.CompletionTime, "pid %d completion", p.PID)
		assert.Equal(t, wantWaiting[p.PID], p.WaitingTime, "pid %d waiting", p.PID)
	}
	assert.Equal(t, 8, e.ContextSwitches)
}

func TestRunRoundRobin_PreemptedProcessLandsBehindNewArrivals(t *testing.T) {
	// GIVEN A(arr=0,burst=4) and B arriving exactly when A's quantum expires
	e := NewEngine()
	mustAdd(t, e, NewProcess(1, 0, 4, 0))
	mustAdd(t, e, NewProcess(2, 2, 2, 0))

	// WHEN Round Robin runs with quantum 2
	require.NoError(t, e.RunRoundRobin(2))

	// THEN B (admitted on that tick) runs before the re-appended A
	want := []trace.Slice{
		{PID: 1, Start: 0, End: 2},
		{PID: 2, Start: 2, End: 4},
		{PID: 1, Start: 4, End: 6},
	}
	assert.Equal(t, want, trace.Consolidate(e.Timeline.Slices()))
}

func TestRunRoundRobin_LoneProcessKeepsCPUAcrossQuanta(t *testing.T) {
	// quantum expiry with an empty queue is not a context switch
	e := NewEngine()
	mustAdd(t, e, NewProcess(1, 0, 5, 0))

	require.NoError(t, e.RunRoundRobin(2))

	merged := trace.Consolidate(e.Timeline.Slices())
	require.Len(t, merged, 1)
	assert.Equal(t, trace.Slice{PID: 1, Start: 0, End: 5}, merged[0])
	assert.Equal(t, 1, e.ContextSwitches)
}

func TestRunRoundRobin_IdleSkip(t *testing.T) {
	e := NewEngine()
	mustAdd(t, e, NewProcess(1, 0, 1, 0))
	mustAdd(t, e, NewProcess(2, 5, 2, 0))

	require.NoError(t, e.RunRoundRobin(2))

	assert.Equal(t, int64(5), e.Processes[1].StartTime)
	assert.Equal(t, int64(7), e.Clock)
	assert.Equal(t, int64(3), e.Timeline.TotalBusy())
}

func TestRunRoundRobin_FairnessBound_EveryoneDispatchedWithinRotation(t *testing.T) {
	// with quantum q and n processes all ready, no process waits more than
	// (n-1)*q ticks between consecutive dispatches
	const quantum = 2
	e := NewEngine()
	mustAdd(t, e, NewProcess(1, 0, 6, 0))
	mustAdd(t, e, NewProcess(2, 0, 6, 0))
	mustAdd(t, e, NewProcess(3, 0, 6, 0))

	require.NoError(t, e.RunRoundRobin(quantum))

	lastEnd := map[int]int64{}
	bound := int64((len(e.Processes) - 1) * quantum)
	for _, s := range trace.Consolidate(e.Timeline.Slices()) {
		if prev, seen := lastEnd[s.PID]; seen {
			gap := s.Start - prev
			assert.LessOrEqual(t, gap, bound, "pid %d waited %d ticks between dispatches", s.PID, gap)
		}
		lastEnd[s.PID] = s.End
	}
}
