// Package input normalizes host keyboard and pointer events into the
// guest's key/mouse event stream.
package input

import (
	"github.com/valerio/go-vmfront/vmfront/display"
	"github.com/valerio/go-vmfront/vmfront/keymap"
	"github.com/valerio/go-vmfront/vmfront/machine"
)

// Host mouse button state bits as reported alongside motion events
// (SDL_BUTTON layout: left, middle, right from the low bit).
const (
	HostButtonLeft   uint32 = 1 << 0
	HostButtonMiddle uint32 = 1 << 1
	HostButtonRight  uint32 = 1 << 2
)

// Sink receives the normalized guest events. machine.Machine satisfies it.
type Sink interface {
	SendKeyEvent(down bool, keycode uint16)
	SendMouseEvent(x, y, wheel int32, buttons uint8)
	MouseIsAbsolute() bool
}

// Dispatcher tracks pressed-key state and converts host events into guest
// key and mouse events. It is not safe for concurrent use; all methods run
// on the main refresh context.
type Dispatcher struct {
	pressed [keymap.NumKeycodes]bool

	// last absolute pointer position in window coordinates, replayed on
	// wheel events so a scroll does not move the guest pointer
	lastX int32
	lastY int32

	// current host surface size, the denominator for absolute scaling
	winWidth  int32
	winHeight int32
}

func NewDispatcher(winWidth, winHeight int32) *Dispatcher {
	return &Dispatcher{
		winWidth:  winWidth,
		winHeight: winHeight,
	}
}

// SetWindowSize updates the surface dimensions used to scale absolute
// pointer coordinates.
func (d *Dispatcher) SetWindowSize(w, h int32) {
	if w > 0 {
		d.winWidth = w
	}
	if h > 0 {
		d.winHeight = h
	}
}

// IsPressed reports whether a key-down for keycode has been sent without a
// matching key-up.
func (d *Dispatcher) IsPressed(keycode uint16) bool {
	if int(keycode) >= len(d.pressed) {
		return false
	}
	return d.pressed[keycode]
}

// HandleKey translates one host keyboard event.
//
// Unmapped scancodes double as a keyboard reset: a key-up from an unknown
// position releases everything still marked pressed. Hosts swallow key-up
// events across desktop/VT switches and for lock keys, and without the
// reset those guest keys would stay stuck down.
func (d *Dispatcher) HandleKey(sink Sink, scancode uint32, down bool) {
	keycode := keymap.Translate(scancode)
	if keycode == keymap.KeyReserved {
		if !down {
			d.Reset(sink)
		}
		return
	}

	if keycode == keymap.KeyCapsLock || keycode == keymap.KeyNumLock {
		// some hosts never deliver key-up for the lock keys; a full
		// press/release pair keeps the guest's toggle state moving
		sink.SendKeyEvent(true, keycode)
		sink.SendKeyEvent(false, keycode)
		return
	}

	d.pressed[keycode] = down
	sink.SendKeyEvent(down, keycode)
}

// Reset releases every key currently marked pressed, in ascending keycode
// order, and clears the pressed state.
func (d *Dispatcher) Reset(sink Sink) {
	for k := 1; k < keymap.NumKeycodes; k++ {
		if d.pressed[k] {
			sink.SendKeyEvent(false, uint16(k))
			d.pressed[k] = false
		}
	}
}

// HandleMouseMotion translates one host pointer motion event. x and y are
// window-relative pixel coordinates, xrel/yrel the raw deltas, state the
// host button bitmask accompanying the motion.
func (d *Dispatcher) HandleMouseMotion(sink Sink, x, y, xrel, yrel int32, state uint32) {
	if sink.MouseIsAbsolute() {
		d.lastX, d.lastY = x, y
		d.sendMouse(sink, x, y, 0, state, true)
	} else {
		d.sendMouse(sink, xrel, yrel, 0, state, false)
	}
}

// HandleMouseWheel forwards a wheel tick as a motionless mouse event
// carrying the current button state: the cached absolute position when
// the guest pointer is absolute, zero deltas when it is relative.
func (d *Dispatcher) HandleMouseWheel(sink Sink, dy int32, state uint32) {
	if sink.MouseIsAbsolute() {
		d.sendMouse(sink, d.lastX, d.lastY, dy, state, true)
	} else {
		d.sendMouse(sink, 0, 0, dy, state, false)
	}
}

// HandleMouseButton observes a raw button transition. Button state reaches
// the guest inside motion and wheel events; transitions with no
// accompanying motion are not separately signaled.
func (d *Dispatcher) HandleMouseButton(button uint8, down bool) {
}

func (d *Dispatcher) sendMouse(sink Sink, x1, y1, dz int32, state uint32, absolute bool) {
	var buttons uint8
	if state&HostButtonLeft != 0 {
		buttons |= machine.MouseButtonLeft
	}
	if state&HostButtonRight != 0 {
		buttons |= machine.MouseButtonRight
	}
	if state&HostButtonMiddle != 0 {
		buttons |= machine.MouseButtonMiddle
	}

	x, y := x1, y1
	if absolute {
		x = x1 * display.AbsoluteRange / d.winWidth
		y = y1 * display.AbsoluteRange / d.winHeight
	}
	sink.SendMouseEvent(x, y, dz, buttons)
}
