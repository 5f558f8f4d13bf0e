package driver

import (
	"log/slog"
	"time"

	"github.com/katalvlaran/pathviz/search"
)

// Option configures a Driver.
type Option func(*Options)

// Options holds Driver settings.
type Options struct {
	// Speed is clamped to [MinSpeed, MaxSpeed].
	Speed int
	// Interval, when positive, replaces the speed-derived cadence.
	Interval time.Duration
	Logger   *slog.Logger

	sinks []func(search.Snapshot)
}

// DefaultOptions returns DefaultSpeed and slog.Default().
func DefaultOptions() Options {
	return Options{
		Speed:  DefaultSpeed,
		Logger: slog.Default(),
	}
}

// WithSpeed sets the initial speed.
func WithSpeed(speed int) Option {
	return func(o *Options) { o.Speed = speed }
}

// WithInterval fixes the delay between steps, ignoring speed until the
// next SetSpeed. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(o *Options) {
		if d > 0 {
			o.Interval = d
		}
	}
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithFrameSink forwards every engine snapshot to fn.
func WithFrameSink(fn func(search.Snapshot)) Option {
	return func(o *Options) {
		if fn != nil {
			o.sinks = append(o.sinks, fn)
		}
	}
}
