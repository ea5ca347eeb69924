package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/valerio/go-vmfront/vmfront/keymap"
	"github.com/valerio/go-vmfront/vmfront/machine"
)

type keyEvent struct {
	down    bool
	keycode uint16
}

type mouseEvent struct {
	x, y, wheel int32
	buttons     uint8
}

// recordingSink captures the guest events a dispatcher emits.
type recordingSink struct {
	keys     []keyEvent
	mice     []mouseEvent
	absolute bool
}

func (r *recordingSink) SendKeyEvent(down bool, keycode uint16) {
	r.keys = append(r.keys, keyEvent{down, keycode})
}

func (r *recordingSink) SendMouseEvent(x, y, wheel int32, buttons uint8) {
	r.mice = append(r.mice, mouseEvent{x, y, wheel, buttons})
}

func (r *recordingSink) MouseIsAbsolute() bool {
	return r.absolute
}

func TestHandleKey_PressAndRelease(t *testing.T) {
	d := NewDispatcher(640, 480)
	sink := &recordingSink{}

	d.HandleKey(sink, keymap.ScancodeA, true)
	assert.True(t, d.IsPressed(keymap.KeyA))
	d.HandleKey(sink, keymap.ScancodeA, false)
	assert.False(t, d.IsPressed(keymap.KeyA))

	assert.Equal(t, []keyEvent{
		{true, keymap.KeyA},
		{false, keymap.KeyA},
	}, sink.keys)
}

func TestHandleKey_UnmappedPressIgnored(t *testing.T) {
	d := NewDispatcher(640, 480)
	sink := &recordingSink{}

	// scancode 1 has no guest mapping
	d.HandleKey(sink, 1, true)
	assert.Empty(t, sink.keys)
}

func TestHandleKey_UnmappedReleaseResetsKeyboard(t *testing.T) {
	d := NewDispatcher(640, 480)
	sink := &recordingSink{}

	// press a few keys, deliberately out of keycode order
	d.HandleKey(sink, keymap.ScancodeZ, true) // keycode 44
	d.HandleKey(sink, keymap.ScancodeA, true) // keycode 30
	d.HandleKey(sink, keymap.ScancodeF1, true)
	sink.keys = nil

	d.HandleKey(sink, 1, false)

	// one release per pressed key, in ascending keycode order
	assert.Equal(t, []keyEvent{
		{false, keymap.KeyA},
		{false, keymap.KeyZ},
		{false, keymap.KeyF1},
	}, sink.keys)

	assert.False(t, d.IsPressed(keymap.KeyA))
	assert.False(t, d.IsPressed(keymap.KeyZ))
	assert.False(t, d.IsPressed(keymap.KeyF1))

	// a second reset releases nothing
	sink.keys = nil
	d.HandleKey(sink, 1, false)
	assert.Empty(t, sink.keys)
}

func TestHandleKey_LockKeysAlwaysTap(t *testing.T) {
	tests := []struct {
		name     string
		scancode uint32
		keycode  uint16
		down     bool
	}{
		{"caps lock press", keymap.ScancodeCapsLock, keymap.KeyCapsLock, true},
		{"caps lock release", keymap.ScancodeCapsLock, keymap.KeyCapsLock, false},
		{"num lock press", keymap.ScancodeNumLockClear, keymap.KeyNumLock, true},
		{"num lock release", keymap.ScancodeNumLockClear, keymap.KeyNumLock, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDispatcher(640, 480)
			sink := &recordingSink{}

			d.HandleKey(sink, tt.scancode, tt.down)

			assert.Equal(t, []keyEvent{
				{true, tt.keycode},
				{false, tt.keycode},
			}, sink.keys)
			assert.False(t, d.IsPressed(tt.keycode))
		})
	}
}

func TestHandleMouseMotion_AbsoluteScaling(t *testing.T) {
	tests := []struct {
		name         string
		winW, winH   int32
		x, y         int32
		wantX, wantY int32
	}{
		{"origin", 640, 480, 0, 0, 0, 0},
		{"far corner", 640, 480, 640, 480, 32768, 32768},
		{"center", 640, 480, 320, 240, 16384, 16384},
		{"non-square window", 1024, 768, 512, 192, 16384, 8192},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDispatcher(tt.winW, tt.winH)
			sink := &recordingSink{absolute: true}

			d.HandleMouseMotion(sink, tt.x, tt.y, 5, 5, 0)

			assert.Len(t, sink.mice, 1)
			assert.Equal(t, tt.wantX, sink.mice[0].x)
			assert.Equal(t, tt.wantY, sink.mice[0].y)
		})
	}
}

func TestHandleMouseMotion_RelativeUsesRawDeltas(t *testing.T) {
	d := NewDispatcher(640, 480)
	sink := &recordingSink{absolute: false}

	d.HandleMouseMotion(sink, 300, 200, -7, 3, 0)

	assert.Equal(t, []mouseEvent{{x: -7, y: 3}}, sink.mice)
}

func TestHandleMouseMotion_ButtonMask(t *testing.T) {
	tests := []struct {
		name  string
		state uint32
		want  uint8
	}{
		{"none", 0, 0},
		{"left", HostButtonLeft, machine.MouseButtonLeft},
		{"right", HostButtonRight, machine.MouseButtonRight},
		{"middle", HostButtonMiddle, machine.MouseButtonMiddle},
		{"left+right", HostButtonLeft | HostButtonRight, machine.MouseButtonLeft | machine.MouseButtonRight},
		{"all", HostButtonLeft | HostButtonMiddle | HostButtonRight,
			machine.MouseButtonLeft | machine.MouseButtonRight | machine.MouseButtonMiddle},
		{"other host buttons ignored", 1 << 4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDispatcher(640, 480)
			sink := &recordingSink{}

			d.HandleMouseMotion(sink, 0, 0, 1, 1, tt.state)

			assert.Len(t, sink.mice, 1)
			assert.Equal(t, tt.want, sink.mice[0].buttons)
		})
	}
}

func TestHandleMouseWheel_RelativeZeroDeltas(t *testing.T) {
	d := NewDispatcher(640, 480)
	sink := &recordingSink{}

	d.HandleMouseWheel(sink, -1, HostButtonLeft)

	assert.Equal(t, []mouseEvent{
		{x: 0, y: 0, wheel: -1, buttons: machine.MouseButtonLeft},
	}, sink.mice)
}

func TestHandleMouseWheel_AbsoluteKeepsPointerParked(t *testing.T) {
	d := NewDispatcher(640, 480)
	sink := &recordingSink{absolute: true}

	// park the pointer at the far corner, then scroll
	d.HandleMouseMotion(sink, 640, 480, 0, 0, 0)
	d.HandleMouseWheel(sink, -1, 0)

	assert.Equal(t, []mouseEvent{
		{x: 32768, y: 32768},
		{x: 32768, y: 32768, wheel: -1},
	}, sink.mice)
}

func TestHandleMouseWheel_AbsoluteBeforeAnyMotion(t *testing.T) {
	d := NewDispatcher(640, 480)
	sink := &recordingSink{absolute: true}

	d.HandleMouseWheel(sink, 1, 0)

	assert.Equal(t, []mouseEvent{{x: 0, y: 0, wheel: 1}}, sink.mice)
}

func TestHandleMouseButton_NoGuestEvent(t *testing.T) {
	d := NewDispatcher(640, 480)
	sink := &recordingSink{}

	d.HandleMouseButton(1, true)
	d.HandleMouseButton(1, false)

	assert.Empty(t, sink.mice)
	assert.Empty(t, sink.keys)
}

func TestSetWindowSize_RescalesSubsequentEvents(t *testing.T) {
	d := NewDispatcher(640, 480)
	sink := &recordingSink{absolute: true}

	d.SetWindowSize(1280, 960)
	d.HandleMouseMotion(sink, 1280, 960, 0, 0, 0)

	assert.Equal(t, int32(32768), sink.mice[0].x)
	assert.Equal(t, int32(32768), sink.mice[0].y)

	// zero dimensions are ignored, not adopted
	d.SetWindowSize(0, 0)
	d.HandleMouseMotion(sink, 640, 480, 0, 0, 0)
	assert.Equal(t, int32(16384), sink.mice[1].x)
}
