package driver_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/driver"
	"github.com/katalvlaran/pathviz/gridgraph"
	"github.com/katalvlaran/pathviz/search"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func begunEngine(t *testing.T, layout string, algo search.Algorithm) *search.Engine {
	t.Helper()
	g, err := gridgraph.Parse(layout, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	e, err := search.NewEngine(g, algo, search.WithLogger(quietLogger()))
	require.NoError(t, err)
	require.NoError(t, e.Begin())
	return e
}

// openLayout returns an n×n layout with start and end in opposite corners.
func openLayout(n int) string {
	rows := make([]string, n)
	for i := range rows {
		rows[i] = strings.Repeat(".", n)
	}
	rows[0] = "S" + rows[0][1:]
	rows[n-1] = rows[n-1][:n-1] + "E"
	return strings.Join(rows, "\n")
}

// frames is a concurrency-safe snapshot recorder.
type frames struct {
	mu   sync.Mutex
	list []search.Snapshot
}

func (f *frames) add(s search.Snapshot) {
	f.mu.Lock()
	f.list = append(f.list, s)
	f.mu.Unlock()
}

func (f *frames) len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.list)
}

func (f *frames) last() search.Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.list[len(f.list)-1]
}

func TestIntervalForSpeed(t *testing.T) {
	cases := []struct {
		speed int
		want  time.Duration
	}{
		{-3, 500 * time.Millisecond},
		{0, 500 * time.Millisecond},
		{1, 500 * time.Millisecond},
		{5, 300 * time.Millisecond},
		{9, 100 * time.Millisecond},
		{10, 50 * time.Millisecond},
		{42, 50 * time.Millisecond},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, driver.IntervalForSpeed(tc.speed), "speed %d", tc.speed)
	}
}

func TestNew_NilEngine(t *testing.T) {
	_, err := driver.New(nil)
	assert.ErrorIs(t, err, driver.ErrNilEngine)
}

func TestSetSpeed(t *testing.T) {
	e := begunEngine(t, "SE", search.BFS)
	d, err := driver.New(e, driver.WithLogger(quietLogger()), driver.WithInterval(time.Millisecond))
	require.NoError(t, err)
	assert.Equal(t, driver.DefaultSpeed, d.Speed())
	assert.Equal(t, time.Millisecond, d.Interval())

	d.SetSpeed(0)
	assert.Equal(t, driver.MinSpeed, d.Speed())
	assert.Equal(t, 500*time.Millisecond, d.Interval())

	d.SetSpeed(7)
	assert.Equal(t, 7, d.Speed())
	assert.Equal(t, 200*time.Millisecond, d.Interval())
}

func TestRun_NotBegun(t *testing.T) {
	g, err := gridgraph.Parse("SE", gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	e, err := search.NewEngine(g, search.BFS, search.WithLogger(quietLogger()))
	require.NoError(t, err)

	d, err := driver.New(e, driver.WithLogger(quietLogger()))
	require.NoError(t, err)
	assert.ErrorIs(t, d.Run(context.Background()), driver.ErrNotRunning)
}

func TestRun_ToCompletion(t *testing.T) {
	var got frames
	e := begunEngine(t, openLayout(4), search.AStar)
	d, err := driver.New(e,
		driver.WithLogger(quietLogger()),
		driver.WithInterval(time.Millisecond),
		driver.WithFrameSink(got.add),
	)
	require.NoError(t, err)

	require.NoError(t, d.Run(context.Background()))
	assert.True(t, e.IsComplete())
	assert.True(t, e.Results().Success)
	assert.Equal(t, e.Results().TotalSteps, got.len())
	assert.True(t, got.last().Complete)

	// a finished engine returns immediately
	require.NoError(t, d.Run(context.Background()))
}

func TestRun_CancelStopsEngine(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	e := begunEngine(t, openLayout(6), search.BFS)
	d, err := driver.New(e,
		driver.WithLogger(quietLogger()),
		driver.WithSpeed(1),
		driver.WithFrameSink(func(search.Snapshot) { cancel() }),
	)
	require.NoError(t, err)

	err = d.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, search.Complete, e.State())
	assert.False(t, e.Results().Success)
	assert.Equal(t, 1, e.Results().TotalSteps)
}

func TestRun_PausedTicksAreNoOps(t *testing.T) {
	var got frames
	e := begunEngine(t, openLayout(3), search.Dijkstra)
	d, err := driver.New(e,
		driver.WithLogger(quietLogger()),
		driver.WithInterval(time.Millisecond),
		driver.WithFrameSink(got.add),
	)
	require.NoError(t, err)

	d.Pause()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	err = d.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 0, got.len())
	assert.Equal(t, 0, e.Results().TotalSteps)
	assert.True(t, e.IsComplete(), "cancellation stops the engine")
}

func TestStepForward(t *testing.T) {
	var got frames
	e := begunEngine(t, openLayout(3), search.BFS)
	d, err := driver.New(e,
		driver.WithLogger(quietLogger()),
		driver.WithInterval(time.Millisecond),
		driver.WithFrameSink(got.add),
	)
	require.NoError(t, err)

	d.Pause()
	d.StepForward()
	d.StepForward()
	assert.Equal(t, 2, got.len())
	assert.Equal(t, search.Paused, e.State())

	d.Resume()
	require.NoError(t, d.Run(context.Background()))
	assert.True(t, e.Results().Success)
}

func TestStop_FromAnotherGoroutine(t *testing.T) {
	started := make(chan struct{})
	var once sync.Once
	e := begunEngine(t, openLayout(30), search.BFS)
	d, err := driver.New(e,
		driver.WithLogger(quietLogger()),
		driver.WithInterval(time.Millisecond),
		driver.WithFrameSink(func(s search.Snapshot) {
			if s.Step >= 3 {
				once.Do(func() { close(started) })
			}
		}),
	)
	require.NoError(t, err)

	errc := make(chan error, 1)
	go func() { errc <- d.Run(context.Background()) }()

	<-started
	d.Stop()
	select {
	case err := <-errc:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after Stop")
	}
	assert.Equal(t, search.Complete, e.State())
	assert.False(t, e.Results().Success)
}
