package timing

import "time"

// TickerLimiter uses time.Ticker for simple, consistent refresh timing.
// Less accurate than AdaptiveLimiter but simpler and good enough for most cases.
type TickerLimiter struct {
	ticker *time.Ticker
	ch     <-chan time.Time
	rate   int
}

func NewTickerLimiter(rate int) *TickerLimiter {
	ticker := time.NewTicker(TickDuration(rate))
	return &TickerLimiter{
		ticker: ticker,
		ch:     ticker.C,
		rate:   rate,
	}
}

func (t *TickerLimiter) WaitForNextTick() {
	<-t.ch
}

func (t *TickerLimiter) Reset() {
	t.ticker.Reset(TickDuration(t.rate))
}

func (t *TickerLimiter) Stop() {
	t.ticker.Stop()
}
