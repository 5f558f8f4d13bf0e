package search

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordRunOutcomes(t *testing.T) {
	found := testutil.ToFloat64(runsTotal.WithLabelValues("bfs", outcomeFound))
	stopped := testutil.ToFloat64(runsTotal.WithLabelValues("bfs", outcomeStopped))
	missing := testutil.ToFloat64(runsTotal.WithLabelValues("bfs", outcomeMissingEndpoints))
	steps := testutil.ToFloat64(stepsTotal.WithLabelValues("bfs"))

	e := newInternalEngine(t, "S.E", BFS)
	n := 0
	for !e.IsComplete() {
		e.Step()
		n++
	}
	assert.Equal(t, found+1, testutil.ToFloat64(runsTotal.WithLabelValues("bfs", outcomeFound)))
	assert.Equal(t, steps+float64(n), testutil.ToFloat64(stepsTotal.WithLabelValues("bfs")))

	// no-op steps are not counted
	e.Step()
	assert.Equal(t, steps+float64(n), testutil.ToFloat64(stepsTotal.WithLabelValues("bfs")))

	e = newInternalEngine(t, "S..\n...\n..E", BFS)
	e.Step()
	e.Stop()
	e.Stop()
	assert.Equal(t, stopped+1, testutil.ToFloat64(runsTotal.WithLabelValues("bfs", outcomeStopped)))

	e.end, e.hasEnd = Cell{}, false
	require.ErrorIs(t, e.Begin(), ErrMissingEndpoints)
	assert.Equal(t, missing+1, testutil.ToFloat64(runsTotal.WithLabelValues("bfs", outcomeMissingEndpoints)))
}

func TestMetrics_NoPathOutcome(t *testing.T) {
	before := testutil.ToFloat64(runsTotal.WithLabelValues("astar", outcomeNoPath))
	e := newInternalEngine(t, "S#E", AStar)
	for !e.IsComplete() {
		e.Step()
	}
	assert.False(t, e.Results().Success)
	assert.Equal(t, before+1, testutil.ToFloat64(runsTotal.WithLabelValues("astar", outcomeNoPath)))
}
