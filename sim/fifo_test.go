package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cpusched/cpusched/sim/trace"
)

func TestRunFIFO_CanonicalSet_CompletionsAndWaits(t *testing.T) {
	// GIVEN P1(arr=0,burst=5), P2(arr=1,burst=3), P3(arr=2,burst=8)
	e := threeProcessSet(t)

	// WHEN FIFO runs
	e.RunFIFO()

	// THEN completion order is P1, P2, P3 with completions 5, 8, 16
	// and waiting times 0, 4, 6
	wantCompletion := map[int]int64{1: 5, 2: 8, 3: 16}
	wantWaiting := map[int]int64{1: 0, 2: 4, 3: 6}
	for _, p := range e.Processes {
		assert.Equal(t, wantCompletion[p.PID], p.CompletionTime, "pid %d completion", p.PID)
		assert.Equal(t, wantWaiting[p.PID], p.WaitingTime, "pid %d waiting", p.PID)
		assert.Equal(t, StateTerminated, p.State, "pid %d state", p.PID)
	}
	assert.Equal(t, int64(16), e.Clock)
}

func TestRunFIFO_NoContextSwitchCounting(t *testing.T) {
	// each process transitions to RUNNING exactly once
	e := threeProcessSet(t)
	e.RunFIFO()
	assert.Zero(t, e.ContextSwitches)
}

func TestRunFIFO_OneTimelineSlicePerProcess(t *testing.T) {
	e := threeProcessSet(t)
	e.RunFIFO()

	got := e.Timeline.Slices()
	want := []trace.Slice{
		{PID: 1, Start: 0, End: 5},
		{PID: 2, Start: 5, End: 8},
		{PID: 3, Start: 8, End: 16},
	}
	assert.Equal(t, want, got)
}

func TestRunFIFO_IdleGap_JumpsClockToNextArrival(t *testing.T) {
	// GIVEN a gap between P1 finishing and P2 arriving
	e := NewEngine()
	mustAdd(t, e, NewProcess(1, 0, 2, 0))
	mustAdd(t, e, NewProcess(2, 5, 3, 0))

	// WHEN FIFO runs
	e.RunFIFO()

	// THEN the clock jumps over the idle gap and P2 starts at its arrival
	require.Equal(t, int64(5), e.Processes[1].StartTime)
	assert.Equal(t, int64(8), e.Processes[1].CompletionTime)
	assert.Equal(t, int64(0), e.Processes[1].ResponseTime)
	assert.Equal(t, int64(8), e.Clock)
	assert.Equal(t, int64(5), e.Timeline.TotalBusy())
}

func TestRunFIFO_ArrivalTie_KeepsAdmissionOrder(t *testing.T) {
	// two processes arriving together run in the order they were admitted,
	// regardless of pid
	e := NewEngine()
	mustAdd(t, e, NewProcess(7, 0, 2, 0))
	mustAdd(t, e, NewProcess(3, 0, 2, 0))

	e.RunFIFO()

	slices := e.Timeline.Slices()
	require.Len(t, slices, 2)
	assert.Equal(t, 7, slices[0].PID)
	assert.Equal(t, 3, slices[1].PID)
}

func TestRunFIFO_TimingInvariants(t *testing.T) {
	e := threeProcessSet(t)
	e.RunFIFO()
	for _, p := range e.Processes {
		assert.Equal(t, p.CompletionTime-p.ArrivalTime, p.TurnaroundTime, "pid %d", p.PID)
		assert.Equal(t, p.TurnaroundTime-p.BurstTime, p.WaitingTime, "pid %d", p.PID)
		assert.Equal(t, p.StartTime-p.ArrivalTime, p.ResponseTime, "pid %d", p.PID)
	}
}
