//go:build sdl2

package sdl2

import (
	"fmt"
	"log/slog"

	"github.com/valerio/go-vmfront/vmfront/backend"
	"github.com/valerio/go-vmfront/vmfront/input"
	"github.com/valerio/go-vmfront/vmfront/machine"
	"github.com/veandco/go-sdl2/sdl"
)

// Backend implements the backend interface using SDL2 bindings.
// Note: building this requires SDL2 development libraries installed.
// Default builds skip this and use a stubbed backend, see build tags (sdl2)
type Backend struct {
	window       *sdl.Window
	cursorHidden *sdl.Cursor
	presenter    *presenter
	dispatcher   *input.Dispatcher
	beeper       *beeper
	running      bool
	callbacks    backend.Callbacks
	config       backend.Config
}

// New creates a new SDL2 backend
func New() *Backend {
	return &Backend{}
}

// Init initializes the SDL2 window, event handling and audio device
func (s *Backend) Init(config backend.Config) error {
	s.config = config
	s.callbacks = config.Callbacks

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("failed to initialize SDL2: %v", err)
	}

	window, err := sdl.CreateWindow(
		config.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(config.Width),
		int32(config.Height),
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("failed to create window: %v", err)
	}
	s.window = window

	s.hideCursor()
	s.presenter = &presenter{window: window}
	s.dispatcher = input.NewDispatcher(int32(config.Width), int32(config.Height))

	if !config.DisableAudio {
		bpr, err := openBeeper()
		if err != nil {
			window.Destroy()
			sdl.Quit()
			return fmt.Errorf("failed to open audio device: %v", err)
		}
		s.beeper = bpr
	}

	s.running = true
	slog.Info("SDL2 backend initialized", "width", config.Width, "height", config.Height)

	return nil
}

// Refresh performs one display tick: reconcile render resources, repaint
// dirty rectangles, then drain all pending host events
func (s *Backend) Refresh(m machine.Machine) error {
	if !s.running {
		return backend.ErrQuit
	}

	fb := m.Framebuffer()
	if fb == nil {
		return nil
	}

	if err := s.presenter.ensure(fb); err != nil {
		return err
	}
	fb.Refresh(s.presenter.presentRect)

	w, h := s.window.GetSize()
	s.dispatcher.SetWindowSize(w, h)

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if err := s.handleEvent(event, m); err != nil {
			return err
		}
	}

	return nil
}

// SetTone sets the beep frequency in Hz
func (s *Backend) SetTone(hz int) {
	if s.beeper != nil {
		s.beeper.tone.SetFrequency(hz)
	}
}

// Cleanup releases SDL2 resources
func (s *Backend) Cleanup() error {
	slog.Info("Cleaning up SDL2 backend")

	if s.beeper != nil {
		s.beeper.close()
	}
	if s.presenter != nil {
		s.presenter.release()
	}
	if s.cursorHidden != nil {
		sdl.FreeCursor(s.cursorHidden)
	}
	if s.window != nil {
		s.window.Destroy()
	}
	sdl.Quit()

	return nil
}

func (s *Backend) handleEvent(event sdl.Event, m machine.Machine) error {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		s.running = false
		if s.callbacks.OnQuit != nil {
			s.callbacks.OnQuit()
		}
		return backend.ErrQuit

	case *sdl.KeyboardEvent:
		s.dispatcher.HandleKey(m, uint32(e.Keysym.Scancode), e.Type == sdl.KEYDOWN)

	case *sdl.MouseMotionEvent:
		s.dispatcher.HandleMouseMotion(m, e.X, e.Y, e.XRel, e.YRel, e.State)

	case *sdl.MouseWheelEvent:
		_, _, state := sdl.GetMouseState()
		s.dispatcher.HandleMouseWheel(m, e.Y, state)

	case *sdl.MouseButtonEvent:
		s.dispatcher.HandleMouseButton(e.Button, e.State == sdl.PRESSED)
	}

	return nil
}

// hideCursor swaps in a blank 8x1 cursor so the host pointer does not draw
// over the guest's own.
func (s *Backend) hideCursor() {
	var data, mask uint8
	s.cursorHidden = sdl.CreateCursor(&data, &mask, 8, 1, 0, 0)
	sdl.ShowCursor(1)
	sdl.SetCursor(s.cursorHidden)
}
