package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/valerio/go-vmfront/vmfront"
	"github.com/valerio/go-vmfront/vmfront/timing"
)

func TestNewLimiter(t *testing.T) {
	tests := []struct {
		name        string
		limiterName string
		backend     string
		want        interface{}
		wantErr     bool
	}{
		{"default paces with adaptive", "", vmfront.BackendSDL2, &timing.AdaptiveLimiter{}, false},
		{"headless default is unpaced", "", vmfront.BackendHeadless, timing.NewNoOpLimiter(), false},
		{"explicit adaptive", "adaptive", vmfront.BackendTerminal, &timing.AdaptiveLimiter{}, false},
		{"explicit ticker", "ticker", vmfront.BackendSDL2, &timing.TickerLimiter{}, false},
		{"ticker in headless", "ticker", vmfront.BackendHeadless, &timing.TickerLimiter{}, false},
		{"explicit none", "none", vmfront.BackendSDL2, timing.NewNoOpLimiter(), false},
		{"unknown name", "vsync", vmfront.BackendSDL2, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limiter, err := newLimiter(tt.limiterName, tt.backend)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.IsType(t, tt.want, limiter)
			if s, ok := limiter.(interface{ Stop() }); ok {
				s.Stop()
			}
		})
	}
}
