package machine

// DirtyRectFunc is invoked by a framebuffer device for each region that
// changed since the last refresh. Coordinates are in guest pixels.
type DirtyRectFunc func(x, y, w, h int)

// FramebufferDevice describes the guest's active framebuffer. The pixel
// memory is owned by the guest device and laid out as 32-bit BGRX with
// Stride bytes per row (Stride may exceed Width*4 for alignment).
type FramebufferDevice struct {
	Width  int
	Height int
	Stride int
	Pixels []byte

	// RefreshFunc walks the regions modified since the previous call and
	// reports each one through fn. A nil RefreshFunc means the device
	// never reports damage.
	RefreshFunc func(fn DirtyRectFunc)
}

// Refresh reports all dirty rectangles to fn.
func (fb *FramebufferDevice) Refresh(fn DirtyRectFunc) {
	if fb.RefreshFunc != nil {
		fb.RefreshFunc(fn)
	}
}

// Machine is the guest-side contract the frontend drives. It mirrors the
// VM runtime's input-injection and framebuffer surfaces; everything else
// about the VM (CPU, memory, devices) is opaque to this module.
type Machine interface {
	// Framebuffer returns the active framebuffer device, or nil while the
	// guest has not configured a display yet.
	Framebuffer() *FramebufferDevice

	// SendKeyEvent injects a key transition. keycode is a Linux evdev
	// keycode as produced by the keymap package.
	SendKeyEvent(down bool, keycode uint16)

	// SendMouseEvent injects pointer state. In absolute mode x and y are
	// positions in the 0..32767 virtual space, otherwise raw deltas.
	// buttons is a mask of MouseButton* bits.
	SendMouseEvent(x, y, wheel int32, buttons uint8)

	// MouseIsAbsolute reports whether the guest pointing device expects
	// absolute coordinates.
	MouseIsAbsolute() bool
}

// Guest mouse button mask bits carried by SendMouseEvent.
const (
	MouseButtonLeft   uint8 = 1 << 0
	MouseButtonRight  uint8 = 1 << 1
	MouseButtonMiddle uint8 = 1 << 2
)
