package timing

import "time"

// Limiter paces the display refresh loop.
type Limiter interface {
	// WaitForNextTick blocks until the next refresh tick is due.
	// Returns immediately if timing is behind schedule.
	WaitForNextTick()

	// Reset resets the timing state, useful after pauses.
	Reset()
}

// NewNoOpLimiter returns a limiter that doesn't limit (for headless mode).
func NewNoOpLimiter() Limiter {
	return &noOpLimiter{}
}

type noOpLimiter struct{}

func (n *noOpLimiter) WaitForNextTick() {}
func (n *noOpLimiter) Reset()           {}

// TickDuration returns the duration of one refresh tick at rate Hz.
func TickDuration(rate int) time.Duration {
	return time.Duration(float64(time.Second) / float64(rate))
}
