package driver

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/katalvlaran/pathviz/search"
)

// Sentinel errors.
var (
	// ErrNilEngine is returned when New receives a nil engine.
	ErrNilEngine = errors.New("driver: engine is nil")

	// ErrNotRunning is returned by Run when the engine is neither running
	// nor complete, i.e. Begin was never called or failed.
	ErrNotRunning = errors.New("driver: engine has not begun")
)

// Speed bounds and cadence constants.
const (
	MinSpeed     = 1
	MaxSpeed     = 10
	DefaultSpeed = 5

	baseInterval = 550 * time.Millisecond
	speedStep    = 50 * time.Millisecond
)

// Engine is the part of *search.Engine the driver needs.
type Engine interface {
	Step() search.StepResult
	Pause()
	Resume()
	Stop()
	IsRunning() bool
	IsComplete() bool
	State() search.State
	OnStep(fn func(search.Snapshot))
}

// ClampSpeed limits speed to [MinSpeed, MaxSpeed].
func ClampSpeed(speed int) int {
	if speed < MinSpeed {
		return MinSpeed
	}
	if speed > MaxSpeed {
		return MaxSpeed
	}
	return speed
}

// IntervalForSpeed returns the delay between steps: 550ms − 50ms·speed,
// with speed clamped to 1..10 (500ms down to 50ms).
func IntervalForSpeed(speed int) time.Duration {
	return baseInterval - time.Duration(ClampSpeed(speed))*speedStep
}

// Driver paces one engine.
type Driver struct {
	mu      sync.Mutex // serializes engine access
	engine  Engine
	logger  *slog.Logger
	limiter *rate.Limiter

	speedMu  sync.Mutex
	speed    int
	interval time.Duration // fixed override; 0 means speed-derived
}

// New wraps engine. Frame sinks given through WithFrameSink are
// registered as engine OnStep listeners.
func New(engine Engine, opts ...Option) (*Driver, error) {
	if engine == nil {
		return nil, ErrNilEngine
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	d := &Driver{
		engine:   engine,
		logger:   o.Logger,
		speed:    ClampSpeed(o.Speed),
		interval: o.Interval,
	}
	d.limiter = rate.NewLimiter(d.limit(), 1)
	for _, sink := range o.sinks {
		engine.OnStep(sink)
	}

	return d, nil
}

// limit converts the current cadence to a limiter rate. Callers hold speedMu
// or own d exclusively.
func (d *Driver) limit() rate.Limit {
	if d.interval > 0 {
		return rate.Every(d.interval)
	}
	return rate.Every(IntervalForSpeed(d.speed))
}

// Speed returns the current speed setting.
func (d *Driver) Speed() int {
	d.speedMu.Lock()
	defer d.speedMu.Unlock()
	return d.speed
}

// Interval returns the current delay between steps.
func (d *Driver) Interval() time.Duration {
	d.speedMu.Lock()
	defer d.speedMu.Unlock()
	if d.interval > 0 {
		return d.interval
	}
	return IntervalForSpeed(d.speed)
}

// SetSpeed retunes the cadence; an active Run picks it up on its next wait.
// A fixed interval set with WithInterval is cleared.
func (d *Driver) SetSpeed(speed int) {
	d.speedMu.Lock()
	d.speed = ClampSpeed(speed)
	d.interval = 0
	lim := d.limit()
	d.speedMu.Unlock()

	d.limiter.SetLimit(lim)
	d.logger.Debug("driver: speed changed",
		slog.Int("speed", d.Speed()),
		slog.Duration("interval", IntervalForSpeed(speed)),
	)
}

// Run steps the engine at the configured cadence until it completes.
// Ticks that arrive while the engine is paused are no-ops. On cancellation
// the engine is stopped and ctx.Err() is returned.
func (d *Driver) Run(ctx context.Context) error {
	d.mu.Lock()
	begun := d.engine.IsRunning() || d.engine.IsComplete()
	d.mu.Unlock()
	if !begun {
		return ErrNotRunning
	}

	d.logger.Debug("driver: run started",
		slog.Int("speed", d.Speed()),
		slog.Duration("interval", d.Interval()),
	)
	steps := 0
	for {
		d.mu.Lock()
		done := d.engine.IsComplete()
		d.mu.Unlock()
		if done {
			d.logger.Debug("driver: run finished", slog.Int("ticks", steps))
			return nil
		}

		if err := d.limiter.Wait(ctx); err != nil {
			d.Stop()
			if ctxErr := ctx.Err(); ctxErr != nil {
				d.logger.Info("driver: run cancelled", slog.Int("ticks", steps))
				return ctxErr
			}
			// Wait refuses when the deadline falls before the next token.
			d.logger.Info("driver: run cancelled", slog.Int("ticks", steps), slog.Any("err", err))
			return context.DeadlineExceeded
		}

		d.mu.Lock()
		d.engine.Step()
		d.mu.Unlock()
		steps++
	}
}

// Pause suspends the engine. Run keeps ticking without progress.
func (d *Driver) Pause() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.engine.Pause()
}

// Resume lifts a Pause.
func (d *Driver) Resume() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.engine.Resume()
}

// Stop terminates the run; Run returns on its next tick.
func (d *Driver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.engine.Stop()
}

// StepForward performs one step immediately, bypassing the limiter.
// On a paused engine it steps once and leaves the engine paused.
func (d *Driver) StepForward() search.StepResult {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.engine.State() == search.Paused {
		d.engine.Resume()
		defer d.engine.Pause()
	}
	return d.engine.Step()
}
