package core

import "time"

// DefaultIntervalMs is the tick interval used when none is configured.
const DefaultIntervalMs = 20.0

// FixedStep decouples the simulation tick rate from the frame rate. Every
// frame feeds its elapsed time in; once more than one interval has
// accumulated a single tick fires.
//
// In the default discard mode the accumulator resets to zero when a tick
// fires, so overshoot from a slow frame is dropped and the simulation never
// catches up. With carry enabled the interval is subtracted instead and the
// remainder counts toward the next tick. Either way at most one tick fires
// per frame.
type FixedStep struct {
	interval    float64
	accumulator float64
	carry       bool
	now         func() time.Time
	last        time.Time
}

// NewFixedStep constructs a FixedStep firing once per intervalMs virtual
// milliseconds.
func NewFixedStep(intervalMs float64) *FixedStep {
	f := &FixedStep{now: time.Now}
	f.SetInterval(intervalMs)
	return f
}

// SetInterval changes the tick interval. Non-positive values fall back to
// DefaultIntervalMs.
func (f *FixedStep) SetInterval(intervalMs float64) {
	if intervalMs <= 0 {
		intervalMs = DefaultIntervalMs
	}
	f.interval = intervalMs
}

// Interval returns the tick interval in milliseconds.
func (f *FixedStep) Interval() float64 { return f.interval }

// SetCarry selects carry-forward (true) or discard (false) overshoot handling.
func (f *FixedStep) SetCarry(carry bool) { f.carry = carry }

// Carry reports whether overshoot is carried into the next interval.
func (f *FixedStep) Carry() bool { return f.carry }

// Accumulator returns the unconsumed elapsed time in milliseconds.
func (f *FixedStep) Accumulator() float64 { return f.accumulator }

// SetClock replaces the wall clock ShouldStep reads. A nil now restores
// time.Now.
func (f *FixedStep) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	f.now = now
	f.last = time.Time{}
}

// Reset clears the accumulator and the wall-clock reference.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}

// Advance adds one frame's elapsed time, given in seconds, and reports
// whether a tick is due.
func (f *FixedStep) Advance(elapsedSeconds float64) bool {
	if elapsedSeconds > 0 {
		f.accumulator += elapsedSeconds * 1000
	}
	if f.accumulator <= f.interval {
		return false
	}
	if f.carry {
		f.accumulator -= f.interval
		if f.accumulator > f.interval {
			f.accumulator = f.interval
		}
	} else {
		f.accumulator = 0
	}
	return true
}

// ShouldStep measures the wall-clock time since the previous call and
// feeds it to Advance. The first call only establishes the reference.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	return f.Advance(delta.Seconds())
}
