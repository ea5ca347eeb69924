package backend

import (
	"errors"

	"github.com/valerio/go-vmfront/vmfront/machine"
)

// ErrQuit is returned by Refresh once the host asked to close the display.
// Callers should stop ticking and exit cleanly.
var ErrQuit = errors.New("quit requested by host")

// Backend is a complete presentation platform (display + input + audio).
// Backends are responsible for:
// - Keeping host render resources consistent with the guest framebuffer
// - Repainting the regions the guest reports dirty
// - Translating host input events and injecting them into the machine
// - Playing the beep tone stream
type Backend interface {
	// Init opens the host-side resources. This is a required step before
	// calling Refresh.
	Init(config Config) error

	// Refresh performs one display tick: reconcile render resources with
	// the guest framebuffer geometry, repaint dirty rectangles, then drain
	// all pending host input events into m. A nil guest framebuffer makes
	// the tick a no-op. Returns ErrQuit when the host requested shutdown;
	// any other error is an unrecoverable host resource failure.
	Refresh(m machine.Machine) error

	// SetTone sets the beep frequency in Hz; zero silences it.
	SetTone(hz int)

	// Cleanup releases host resources when shutting down.
	Cleanup() error
}

// Config holds configuration common to all backends.
type Config struct {
	Title  string
	Width  int
	Height int

	// DisableAudio skips opening the host audio device.
	DisableAudio bool

	Callbacks Callbacks
}

// Callbacks allows backends to notify the embedding runtime.
type Callbacks struct {
	// OnQuit fires when the host requests shutdown (e.g. window close).
	// Refresh additionally returns ErrQuit for callers that poll.
	OnQuit func()
}
