package display

// Guest framebuffer pixel format constants. Rows are BGRX: blue in the
// lowest byte, the fourth byte unused.
const (
	// BytesPerPixel is the number of bytes per guest framebuffer pixel
	BytesPerPixel = 4
	// RedMask selects the red channel of a BGRX pixel word
	RedMask = 0x00ff0000
	// GreenMask selects the green channel of a BGRX pixel word
	GreenMask = 0x0000ff00
	// BlueMask selects the blue channel of a BGRX pixel word
	BlueMask = 0x000000ff
	// AlphaMask is zero: the fourth byte carries no data
	AlphaMask = 0x00000000
)

// Window and pointer-space constants
const (
	// DefaultWidth is the default display width in pixels
	DefaultWidth = 1024
	// DefaultHeight is the default display height in pixels
	DefaultHeight = 768
	// AbsoluteRange is the guest's absolute pointer coordinate space (0..32767)
	AbsoluteRange = 32768
	// RefreshRate is the display refresh cadence in ticks per second
	RefreshRate = 60
)

// Test pattern constants
const (
	// TestPatternCount is the number of available test patterns
	TestPatternCount = 3
	// TestPatternTileSize is the tile size for the checkerboard pattern
	TestPatternTileSize = 32
	// TestPatternStripeWidth is the width of stripes in the stripe pattern
	TestPatternStripeWidth = 16
	// TestPatternAnimationFrames is the number of ticks between animation steps
	TestPatternAnimationFrames = 4
)
