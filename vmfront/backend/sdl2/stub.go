//go:build !sdl2

package sdl2

import (
	"fmt"

	"github.com/valerio/go-vmfront/vmfront/backend"
	"github.com/valerio/go-vmfront/vmfront/machine"
)

// Backend stub for when SDL2 is not available
type Backend struct{}

// New creates a stub SDL2 backend that returns an error
func New() *Backend {
	return &Backend{}
}

// Init returns an error indicating SDL2 is not available
func (s *Backend) Init(config backend.Config) error {
	return fmt.Errorf("SDL2 backend not available - build with -tags sdl2 to enable")
}

// Refresh returns an error
func (s *Backend) Refresh(m machine.Machine) error {
	return fmt.Errorf("SDL2 backend not available")
}

// SetTone does nothing
func (s *Backend) SetTone(hz int) {
	// No-op
}

// Cleanup does nothing
func (s *Backend) Cleanup() error {
	return nil
}
