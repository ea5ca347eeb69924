// Package terminal renders the guest framebuffer into a terminal using
// tcell, with half-block cells carrying two guest pixels each. It is a
// fallback presentation path for hosts without a display server; keyboard
// fidelity is limited by the terminal (no key-up events, no physical
// scancodes), so key events are delivered as press/release taps.
package terminal

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/valerio/go-vmfront/vmfront/backend"
	"github.com/valerio/go-vmfront/vmfront/display"
	"github.com/valerio/go-vmfront/vmfront/input"
	"github.com/valerio/go-vmfront/vmfront/machine"
)

// Backend implements the backend interface using tcell for terminal rendering
type Backend struct {
	screen     tcell.Screen
	dispatcher *input.Dispatcher
	running    bool
	config     backend.Config
	callbacks  backend.Callbacks

	// previous pointer cell, for relative mode deltas
	lastMouseX int
	lastMouseY int
}

// New creates a new terminal backend
func New() *Backend {
	return &Backend{}
}

// Init initializes the terminal backend
func (t *Backend) Init(config backend.Config) error {
	t.config = config
	t.callbacks = config.Callbacks

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %v", err)
	}

	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.EnableMouse()
	screen.Clear()

	t.screen = screen
	w, h := screen.Size()
	t.dispatcher = input.NewDispatcher(int32(w), int32(h))
	t.running = true

	slog.Info("Terminal backend initialized", "cols", w, "rows", h)
	return nil
}

// Refresh performs one display tick: draw the framebuffer, then drain all
// pending terminal events
func (t *Backend) Refresh(m machine.Machine) error {
	if !t.running {
		return backend.ErrQuit
	}

	fb := m.Framebuffer()
	if fb == nil {
		return nil
	}

	t.render(fb)
	t.screen.Show()

	w, h := t.screen.Size()
	t.dispatcher.SetWindowSize(int32(w), int32(h))

	for t.screen.HasPendingEvent() {
		ev := t.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC {
				t.running = false
				if t.callbacks.OnQuit != nil {
					t.callbacks.OnQuit()
				}
				return backend.ErrQuit
			}
			t.processKeyEvent(ev, m)
		case *tcell.EventMouse:
			t.processMouseEvent(ev, m)
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}

	return nil
}

// SetTone does nothing; terminals have no tone output.
func (t *Backend) SetTone(hz int) {
	slog.Debug("Beep requested on terminal backend", "hz", hz)
}

// Cleanup restores the terminal
func (t *Backend) Cleanup() error {
	slog.Info("Cleaning up terminal backend")
	if t.screen != nil {
		t.screen.Fini()
	}
	return nil
}

// processKeyEvent feeds one terminal key press through the dispatcher.
// Terminals report presses only, so a release is synthesized immediately.
func (t *Backend) processKeyEvent(ev *tcell.EventKey, m machine.Machine) {
	scancode, ok := translateKey(ev)
	if !ok {
		return
	}
	t.dispatcher.HandleKey(m, scancode, true)
	t.dispatcher.HandleKey(m, scancode, false)
}

func (t *Backend) processMouseEvent(ev *tcell.EventMouse, m machine.Machine) {
	x, y := ev.Position()
	state := translateButtons(ev.Buttons())

	switch {
	case ev.Buttons()&tcell.WheelUp != 0:
		t.dispatcher.HandleMouseWheel(m, 1, state)
	case ev.Buttons()&tcell.WheelDown != 0:
		t.dispatcher.HandleMouseWheel(m, -1, state)
	default:
		xrel := int32(x - t.lastMouseX)
		yrel := int32(y - t.lastMouseY)
		t.dispatcher.HandleMouseMotion(m, int32(x), int32(y), xrel, yrel, state)
	}

	t.lastMouseX = x
	t.lastMouseY = y
}

// render draws the guest framebuffer scaled into the terminal grid. Each
// cell holds two vertically stacked samples via the upper half block.
func (t *Backend) render(fb *machine.FramebufferDevice) {
	cols, rows := t.screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}

	for cy := 0; cy < rows; cy++ {
		topY := cy * 2 * fb.Height / (rows * 2)
		botY := (cy*2 + 1) * fb.Height / (rows * 2)
		for cx := 0; cx < cols; cx++ {
			srcX := cx * fb.Width / cols
			top := t.pixelColor(fb, srcX, topY)
			bot := t.pixelColor(fb, srcX, botY)
			style := tcell.StyleDefault.Foreground(top).Background(bot)
			t.screen.SetContent(cx, cy, '▀', nil, style)
		}
	}
}

func (t *Backend) pixelColor(fb *machine.FramebufferDevice, x, y int) tcell.Color {
	offset := y*fb.Stride + x*display.BytesPerPixel
	if offset+2 >= len(fb.Pixels) {
		return tcell.ColorBlack
	}
	b := fb.Pixels[offset]
	g := fb.Pixels[offset+1]
	r := fb.Pixels[offset+2]
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
