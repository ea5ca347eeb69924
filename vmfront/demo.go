package vmfront

import (
	"log/slog"

	"github.com/valerio/go-vmfront/vmfront/display"
	"github.com/valerio/go-vmfront/vmfront/keymap"
	"github.com/valerio/go-vmfront/vmfront/machine"
)

// DemoMachine is a stand-in guest that animates test patterns and logs the
// input injected into it. It exercises the full frontend path without a
// real VM attached: geometry epochs, dirty rectangles, key and mouse
// injection.
type DemoMachine struct {
	fb          *machine.FramebufferDevice
	patternType int
	tick        int
	dirty       bool
	absolute    bool
}

var _ machine.Machine = (*DemoMachine)(nil)

// NewDemoMachine builds a demo guest with a BGRX framebuffer of the given
// size.
func NewDemoMachine(width, height int) *DemoMachine {
	d := &DemoMachine{absolute: true}
	d.fb = &machine.FramebufferDevice{
		Width:  width,
		Height: height,
		Stride: width * display.BytesPerPixel,
		Pixels: make([]byte, height*width*display.BytesPerPixel),
	}
	d.fb.RefreshFunc = d.refresh
	d.generatePattern()
	return d
}

// Framebuffer implements machine.Machine.
func (d *DemoMachine) Framebuffer() *machine.FramebufferDevice {
	return d.fb
}

// SendKeyEvent implements machine.Machine. The T key cycles the pattern.
func (d *DemoMachine) SendKeyEvent(down bool, keycode uint16) {
	slog.Debug("Guest key event", "down", down, "keycode", keycode)
	if down && keycode == keymap.KeyT {
		d.patternType = (d.patternType + 1) % display.TestPatternCount
		d.generatePattern()
	}
}

// SendMouseEvent implements machine.Machine.
func (d *DemoMachine) SendMouseEvent(x, y, wheel int32, buttons uint8) {
	slog.Debug("Guest mouse event", "x", x, "y", y, "wheel", wheel, "buttons", buttons)
}

// MouseIsAbsolute implements machine.Machine.
func (d *DemoMachine) MouseIsAbsolute() bool {
	return d.absolute
}

// SetMouseAbsolute switches the reported pointer mode.
func (d *DemoMachine) SetMouseAbsolute(absolute bool) {
	d.absolute = absolute
}

// Tick advances the animation one step.
func (d *DemoMachine) Tick() {
	d.tick++
	if d.tick%display.TestPatternAnimationFrames == 0 {
		d.generatePattern()
	}
}

// refresh reports the damaged region since the last refresh.
func (d *DemoMachine) refresh(fn machine.DirtyRectFunc) {
	if !d.dirty {
		return
	}
	d.dirty = false
	fn(0, 0, d.fb.Width, d.fb.Height)
}

func (d *DemoMachine) generatePattern() {
	phase := d.tick / display.TestPatternAnimationFrames
	switch d.patternType {
	case 0: // Checkerboard
		for y := 0; y < d.fb.Height; y++ {
			for x := 0; x < d.fb.Width; x++ {
				tile := (x/display.TestPatternTileSize + y/display.TestPatternTileSize + phase) % 2
				if tile == 0 {
					d.setPixel(x, y, 0xff, 0xff, 0xff)
				} else {
					d.setPixel(x, y, 0x20, 0x20, 0x20)
				}
			}
		}
	case 1: // Horizontal gradient, hue scrolls with phase
		for y := 0; y < d.fb.Height; y++ {
			for x := 0; x < d.fb.Width; x++ {
				v := byte((x*255/d.fb.Width + phase*8) % 256)
				d.setPixel(x, y, v, byte(y*255/d.fb.Height), 255-v)
			}
		}
	case 2: // Vertical stripes
		for y := 0; y < d.fb.Height; y++ {
			for x := 0; x < d.fb.Width; x++ {
				if ((x+phase*2)/display.TestPatternStripeWidth)%2 == 0 {
					d.setPixel(x, y, 0xe0, 0xe0, 0xe0)
				} else {
					d.setPixel(x, y, 0x40, 0x40, 0xa0)
				}
			}
		}
	}
	d.dirty = true
}

func (d *DemoMachine) setPixel(x, y int, r, g, b byte) {
	offset := y*d.fb.Stride + x*display.BytesPerPixel
	d.fb.Pixels[offset] = b
	d.fb.Pixels[offset+1] = g
	d.fb.Pixels[offset+2] = r
	d.fb.Pixels[offset+3] = 0
}
