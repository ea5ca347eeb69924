package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickDuration(t *testing.T) {
	assert.Equal(t, time.Second/60, TickDuration(60))
	assert.Equal(t, 10*time.Millisecond, TickDuration(100))
}

func TestNoOpLimiter_ReturnsImmediately(t *testing.T) {
	l := NewNoOpLimiter()

	start := time.Now()
	for i := 0; i < 100; i++ {
		l.WaitForNextTick()
	}
	l.Reset()

	assert.Less(t, time.Since(start), 50*time.Millisecond)
}

func TestTickerLimiter_PacesTicks(t *testing.T) {
	l := NewTickerLimiter(100)
	defer l.Stop()

	start := time.Now()
	l.WaitForNextTick()
	l.WaitForNextTick()
	elapsed := time.Since(start)

	// two ticks at 100 Hz; generous upper bound for slow CI schedulers
	assert.GreaterOrEqual(t, elapsed, 10*time.Millisecond)
	assert.Less(t, elapsed, 2*time.Second)
}

func TestTickerLimiter_ResetRestartsInterval(t *testing.T) {
	l := NewTickerLimiter(100)
	defer l.Stop()

	l.WaitForNextTick()
	l.Reset()

	start := time.Now()
	l.WaitForNextTick()
	assert.GreaterOrEqual(t, time.Since(start), 5*time.Millisecond)
}
