package headless

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-vmfront/vmfront/backend"
	"github.com/valerio/go-vmfront/vmfront/machine"
)

// stubMachine is a machine with a swappable framebuffer.
type stubMachine struct {
	fb *machine.FramebufferDevice
}

func (s *stubMachine) Framebuffer() *machine.FramebufferDevice { return s.fb }

func (s *stubMachine) SendKeyEvent(down bool, keycode uint16) {}

func (s *stubMachine) SendMouseEvent(x, y, wheel int32, buttons uint8) {}

func (s *stubMachine) MouseIsAbsolute() bool { return true }

func newFB(w, h int) *machine.FramebufferDevice {
	return &machine.FramebufferDevice{
		Width:  w,
		Height: h,
		Stride: w * 4,
		Pixels: make([]byte, h*w*4),
	}
}

func TestRefresh_IdleWithoutFramebuffer(t *testing.T) {
	b := New(0)
	require.NoError(t, b.Init(backend.Config{}))

	m := &stubMachine{}
	for i := 0; i < 5; i++ {
		assert.NoError(t, b.Refresh(m))
	}
	assert.Zero(t, b.Ticks())
	assert.Zero(t, b.Epochs())
}

func TestRefresh_GeometryEpochs(t *testing.T) {
	b := New(0)
	require.NoError(t, b.Init(backend.Config{}))

	m := &stubMachine{fb: newFB(640, 480)}
	require.NoError(t, b.Refresh(m))
	require.NoError(t, b.Refresh(m))
	assert.Equal(t, 1, b.Epochs(), "unchanged geometry must not start a new epoch")

	m.fb = newFB(800, 600)
	require.NoError(t, b.Refresh(m))
	assert.Equal(t, 2, b.Epochs())
	assert.Equal(t, Geometry{Width: 800, Height: 600, Stride: 3200}, b.LastGeometry())

	// stride-only change is a geometry change too
	m.fb.Stride = 4096
	require.NoError(t, b.Refresh(m))
	assert.Equal(t, 3, b.Epochs())
}

func TestRefresh_CountsDirtyRects(t *testing.T) {
	b := New(0)
	require.NoError(t, b.Init(backend.Config{}))

	fb := newFB(320, 200)
	fb.RefreshFunc = func(fn machine.DirtyRectFunc) {
		fn(0, 0, 320, 100)
		fn(0, 100, 320, 100)
	}
	m := &stubMachine{fb: fb}

	require.NoError(t, b.Refresh(m))
	assert.Equal(t, 2, b.RectCount())
}

func TestRefresh_QuitAfterMaxTicks(t *testing.T) {
	quits := 0
	b := New(3)
	require.NoError(t, b.Init(backend.Config{
		Callbacks: backend.Callbacks{OnQuit: func() { quits++ }},
	}))

	m := &stubMachine{fb: newFB(640, 480)}
	assert.NoError(t, b.Refresh(m))
	assert.NoError(t, b.Refresh(m))
	assert.ErrorIs(t, b.Refresh(m), backend.ErrQuit)
	assert.Equal(t, 1, quits)

	// further ticks keep reporting quit
	assert.ErrorIs(t, b.Refresh(m), backend.ErrQuit)
	assert.Equal(t, 3, b.Ticks())
}

func TestSetTone_Recorded(t *testing.T) {
	b := New(0)
	require.NoError(t, b.Init(backend.Config{}))

	b.SetTone(440)
	assert.Equal(t, 440, b.ToneFreq())
	b.SetTone(0)
	assert.Zero(t, b.ToneFreq())
}
