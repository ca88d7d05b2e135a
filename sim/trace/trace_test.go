package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeline_AppendAndTotalBusy(t *testing.T) {
	tl := &Timeline{}
	tl.Append(1, 0, 5)
	tl.Append(2, 5, 8)
	tl.Append(3, 10, 18)

	assert.Equal(t, 3, tl.Len())
	assert.Equal(t, int64(16), tl.TotalBusy())
}

func TestTimeline_Append_InvertedSlice_Panics(t *testing.T) {
	tl := &Timeline{}
	assert.Panics(t, func() { tl.Append(1, 5, 5) })
	assert.Panics(t, func() { tl.Append(1, 5, 3) })
}

func TestTimeline_Append_OutOfOrder_Panics(t *testing.T) {
	tl := &Timeline{}
	tl.Append(1, 10, 11)
	assert.Panics(t, func() { tl.Append(2, 4, 5) })
}

func TestTimeline_Reset_DiscardsSlices(t *testing.T) {
	tl := &Timeline{}
	tl.Append(1, 0, 1)
	tl.Reset()
	assert.Zero(t, tl.Len())
	assert.Zero(t, tl.TotalBusy())
}

func TestConsolidate_MergesTouchingSamePID(t *testing.T) {
	// GIVEN unit slices as a unit-stepping policy emits them
	in := []Slice{
		{PID: 1, Start: 0, End: 1},
		{PID: 1, Start: 1, End: 2},
		{PID: 2, Start: 2, End: 3},
		{PID: 1, Start: 3, End: 4},
		{PID: 1, Start: 4, End: 5},
	}

	got := Consolidate(in)

	want := []Slice{
		{PID: 1, Start: 0, End: 2},
		{PID: 2, Start: 2, End: 3},
		{PID: 1, Start: 3, End: 5},
	}
	assert.Equal(t, want, got)
}

func TestConsolidate_DoesNotMergeAcrossGaps(t *testing.T) {
	in := []Slice{
		{PID: 1, Start: 0, End: 2},
		{PID: 1, Start: 5, End: 7}, // same pid, idle gap between
	}
	got := Consolidate(in)
	require.Len(t, got, 2)
	assert.Equal(t, in, got)
}

func TestConsolidate_Empty(t *testing.T) {
	assert.Nil(t, Consolidate(nil))
}

func TestConsolidate_DoesNotModifyInput(t *testing.T) {
	in := []Slice{
		{PID: 1, Start: 0, End: 1},
		{PID: 1, Start: 1, End: 2},
	}
	_ = Consolidate(in)
	assert.Equal(t, int64(1), in[0].End)
}

func TestGantt_RendersSlicesAndIdleGaps(t *testing.T) {
	in := []Slice{
		{PID: 1, Start: 0, End: 5},
		{PID: 2, Start: 5, End: 8},
		{PID: 3, Start: 10, End: 18},
	}
	got := Gantt(in)
	assert.Equal(t, "| P1 0-5 | P2 5-8 | idle 8-10 | P3 10-18 |", got)
}

func TestGantt_Empty(t *testing.T) {
	assert.Equal(t, "(empty timeline)", Gantt(nil))
}
