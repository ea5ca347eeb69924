// Package vmfront bridges a virtual machine's framebuffer, keyboard,
// mouse and speaker devices to a host display and audio subsystem.
//
// The VM runtime drives it with one Refresh call per display tick; the
// frontend repaints whatever the guest marked dirty and injects any
// pending host input back into the machine.
package vmfront

import (
	"fmt"

	"github.com/valerio/go-vmfront/vmfront/backend"
	"github.com/valerio/go-vmfront/vmfront/backend/headless"
	"github.com/valerio/go-vmfront/vmfront/backend/sdl2"
	"github.com/valerio/go-vmfront/vmfront/backend/terminal"
	"github.com/valerio/go-vmfront/vmfront/display"
	"github.com/valerio/go-vmfront/vmfront/machine"
)

// Backend names accepted by Config.Backend.
const (
	BackendSDL2     = "sdl2"
	BackendTerminal = "terminal"
	BackendHeadless = "headless"
)

// Config configures a Frontend.
type Config struct {
	// Backend selects the presentation backend; defaults to BackendSDL2.
	Backend string
	// Title of the host window, where the backend has one.
	Title string
	// Width and Height of the host display in pixels; defaults to
	// display.DefaultWidth x display.DefaultHeight.
	Width  int
	Height int
	// MaxTicks bounds a headless run; <= 0 means unlimited.
	MaxTicks int
	// DisableAudio skips opening the host audio device.
	DisableAudio bool
	// OnQuit fires when the host requests shutdown.
	OnQuit func()
}

// Frontend is the refresh driver: it owns a presentation backend and
// orchestrates the per-tick repaint and event drain.
type Frontend struct {
	backend backend.Backend
	config  Config
}

// New opens a frontend with the given display configuration.
func New(config Config) (*Frontend, error) {
	if config.Width <= 0 {
		config.Width = display.DefaultWidth
	}
	if config.Height <= 0 {
		config.Height = display.DefaultHeight
	}
	if config.Title == "" {
		config.Title = "vmfront"
	}

	var b backend.Backend
	switch config.Backend {
	case BackendSDL2, "":
		b = sdl2.New()
	case BackendTerminal:
		b = terminal.New()
	case BackendHeadless:
		b = headless.New(config.MaxTicks)
	default:
		return nil, fmt.Errorf("unknown backend: %q", config.Backend)
	}

	err := b.Init(backend.Config{
		Title:        config.Title,
		Width:        config.Width,
		Height:       config.Height,
		DisableAudio: config.DisableAudio,
		Callbacks:    backend.Callbacks{OnQuit: config.OnQuit},
	})
	if err != nil {
		return nil, err
	}

	return &Frontend{backend: b, config: config}, nil
}

// Refresh runs one display tick. While the guest has no framebuffer
// configured the tick is a no-op; once one appears, every tick ensures the
// render resources match its geometry, repaints the dirty rectangles and
// drains pending host input into m.
//
// Returns backend.ErrQuit once the host asked to close the display; any
// other error is an unrecoverable host resource failure.
func (f *Frontend) Refresh(m machine.Machine) error {
	return f.backend.Refresh(m)
}

// SetTone sets the speaker tone frequency in Hz; zero silences it.
func (f *Frontend) SetTone(hz int) {
	f.backend.SetTone(hz)
}

// Cleanup releases the backend's host resources.
func (f *Frontend) Cleanup() error {
	return f.backend.Cleanup()
}
