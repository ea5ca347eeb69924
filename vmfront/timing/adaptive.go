package timing

import (
	"log/slog"
	"time"
)

// AdaptiveLimiter uses precise timing with drift compensation.
// Combines sleep for efficiency with busy-waiting for accuracy.
type AdaptiveLimiter struct {
	targetTickTime time.Duration
	nextTickTime   time.Time
	tickCounter    int64
	rate           int
}

func NewAdaptiveLimiter(rate int) *AdaptiveLimiter {
	return &AdaptiveLimiter{
		targetTickTime: TickDuration(rate),
		nextTickTime:   time.Now(),
		rate:           rate,
	}
}

func (a *AdaptiveLimiter) WaitForNextTick() {
	now := time.Now()
	sleepTime := a.nextTickTime.Sub(now)

	if sleepTime > 0 {
		if sleepTime < 2*time.Millisecond {
			for time.Now().Before(a.nextTickTime) {
				// busy-wait for times under 2ms, higher accuracy.
			}
		} else {
			time.Sleep(sleepTime - time.Millisecond)
			for time.Now().Before(a.nextTickTime) {
			}
		}
	} else if sleepTime < -5*time.Millisecond {
		a.nextTickTime = now
	}

	a.nextTickTime = a.nextTickTime.Add(a.targetTickTime)
	a.tickCounter++

	if a.tickCounter%int64(a.rate) == 0 {
		drift := time.Now().Sub(a.nextTickTime)
		if drift.Abs() > 10*time.Millisecond {
			a.nextTickTime = a.nextTickTime.Add(drift / 10)
			slog.Debug("Refresh timing drift correction", "drift_ms", drift.Milliseconds())
		}
	}
}

func (a *AdaptiveLimiter) Reset() {
	a.nextTickTime = time.Now()
	a.tickCounter = 0
}
