package search

import (
	"log/slog"
	"time"
)

// Option configures an Engine via functional arguments.
type Option func(*Options)

// Options holds the engine's collaborators and its initial listeners.
type Options struct {
	// Logger receives Debug records at run start and completion.
	Logger *slog.Logger

	// Clock supplies timestamps for elapsed-time statistics.
	Clock func() time.Time

	onStep      []func(Snapshot)
	onPathFound []func(Results)
	onNoPath    []func(string)
	onComplete  []func(Results)
}

// DefaultOptions returns Options with slog.Default() and time.Now, and no
// listeners.
func DefaultOptions() Options {
	return Options{
		Logger: slog.Default(),
		Clock:  time.Now,
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

// WithClock replaces time.Now, mainly for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		if now != nil {
			o.Clock = now
		}
	}
}

// WithOnStep registers a listener fired after every effective Step.
func WithOnStep(fn func(Snapshot)) Option {
	return func(o *Options) {
		if fn != nil {
			o.onStep = append(o.onStep, fn)
		}
	}
}

// WithOnPathFound registers a listener fired once on successful completion.
func WithOnPathFound(fn func(Results)) Option {
	return func(o *Options) {
		if fn != nil {
			o.onPathFound = append(o.onPathFound, fn)
		}
	}
}

// WithOnNoPath registers a listener fired once when the search fails, and
// when Begin is called without both endpoints.
func WithOnNoPath(fn func(message string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.onNoPath = append(o.onNoPath, fn)
		}
	}
}

// WithOnComplete registers a listener fired once on any terminal step,
// after OnPathFound / OnNoPath.
func WithOnComplete(fn func(Results)) Option {
	return func(o *Options) {
		if fn != nil {
			o.onComplete = append(o.onComplete, fn)
		}
	}
}
