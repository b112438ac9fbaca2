package sim

import "time"

// Gate decides whether the world runs another fixed tick this frame.
type Gate interface {
	ShouldStep() bool
}

// GateFunc adapts a plain function to Gate.
type GateFunc func() bool

// ShouldStep calls f.
func (f GateFunc) ShouldStep() bool {
	return f()
}

// Accumulator is a fixed-timestep gate fed with wall-clock time.
// It grants one tick per whole step of accumulated time and carries the
// remainder into the next frame. Durations are integers, so the number of
// ticks granted for a given total never drifts.
type Accumulator struct {
	step       time.Duration
	acc        time.Duration
	maxBacklog time.Duration
}

// NewAccumulator creates a gate for tickRate ticks per second.
func NewAccumulator(tickRate int) *Accumulator {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	return &Accumulator{step: time.Second / time.Duration(tickRate)}
}

// SetMaxBacklog caps how much unprocessed time may pile up after a stall.
// Zero disables the cap.
func (a *Accumulator) SetMaxBacklog(d time.Duration) {
	a.maxBacklog = d
}

// Step returns the tick length.
func (a *Accumulator) Step() time.Duration {
	return a.step
}

// Add banks elapsed wall-clock time. Negative durations are ignored.
func (a *Accumulator) Add(elapsed time.Duration) {
	if elapsed <= 0 {
		return
	}
	a.acc += elapsed
	if a.maxBacklog > 0 && a.acc > a.maxBacklog {
		a.acc = a.maxBacklog
	}
}

// ShouldStep consumes one step of banked time if available.
func (a *Accumulator) ShouldStep() bool {
	if a.acc < a.step {
		return false
	}
	a.acc -= a.step
	return true
}

// Pending returns the banked time not yet turned into ticks.
func (a *Accumulator) Pending() time.Duration {
	return a.acc
}

// Reset drops any banked time.
func (a *Accumulator) Reset() {
	a.acc = 0
}

// Steps returns a gate that grants exactly n ticks. Frontends whose own
// loop already runs at the tick rate use Steps(1).
func Steps(n int) Gate {
	left := n
	return GateFunc(func() bool {
		if left <= 0 {
			return false
		}
		left--
		return true
	})
}
