// Package driver paces a search.Engine at a user-chosen speed.
//
// What
//
//   - Driver calls Step once per tick of a golang.org/x/time/rate limiter
//     until the engine completes, the context is cancelled, or Stop is
//     called.
//   - Speed runs from 1 (slowest, 500ms per step) to 10 (fastest, 50ms per
//     step); IntervalForSpeed gives the exact cadence.
//   - Pause, Resume, Stop, StepForward and SetSpeed may be called from any
//     goroutine while Run is active.
//
// Why
//
//   - The engine never blocks or schedules itself. Every wait lives here.
//
// Concurrency
//
//	All engine calls made by the Driver are serialized by one mutex, so the
//	engine only ever sees one caller at a time. Listeners registered on the
//	engine run on the goroutine that called Run (or StepForward) while that
//	mutex is held, so they must not call back into the Driver.
//
// Errors
//
//   - ErrNilEngine   if New gets a nil engine.
//   - ErrNotRunning  from Run when the engine has not begun.
//   - ctx.Err()      from Run after cancellation; the engine is stopped.
package driver
