package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslate_KnownKeys(t *testing.T) {
	tests := []struct {
		name     string
		scancode uint32
		want     uint16
	}{
		{"letter A", ScancodeA, KeyA},
		{"letter Z", ScancodeZ, KeyZ},
		{"digit 1", Scancode1, Key1},
		{"digit 0", Scancode0, Key0},
		{"enter", ScancodeReturn, KeyEnter},
		{"escape", ScancodeEscape, KeyEsc},
		{"space", ScancodeSpace, KeySpace},
		{"caps lock", ScancodeCapsLock, KeyCapsLock},
		{"num lock", ScancodeNumLockClear, KeyNumLock},
		{"left ctrl", ScancodeLCtrl, KeyLeftCtrl},
		{"right alt", ScancodeRAlt, KeyRightAlt},
		{"left meta", ScancodeLGui, KeyLeftMeta},
		{"keypad enter", ScancodeKPEnter, KeyKPEnter},
		{"keypad 5", ScancodeKP5, KeyKP5},
		{"F1", ScancodeF1, KeyF1},
		{"F24", ScancodeF24, KeyF24},
		{"print screen", ScancodePrintScreen, KeyPrint},
		{"sysreq", ScancodeSysReq, KeySysRq},
		{"arrow up", ScancodeUp, KeyUp},
		{"page down", ScancodePageDown, KeyPageDown},
		{"volume up", ScancodeVolumeUp, KeyVolumeUp},
		{"select", ScancodeSelect, KeySelect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Translate(tt.scancode))
		})
	}
}

func TestTranslate_Collisions(t *testing.T) {
	// distinct physical keys that must land on the same guest key
	assert.Equal(t, KeyBackslash, Translate(ScancodeBackslash))
	assert.Equal(t, KeyBackslash, Translate(ScancodeNonUSHash))
	assert.Equal(t, KeyBackslash, Translate(ScancodeNonUSBackslash))

	assert.Equal(t, KeyKPEqual, Translate(ScancodeKPEquals))
	assert.Equal(t, KeyKPEqual, Translate(ScancodeKPEqualsAS400))

	assert.Equal(t, KeyEnter, Translate(ScancodeReturn))
	assert.Equal(t, KeyEnter, Translate(ScancodeReturn2))
}

func TestTranslate_Unmapped(t *testing.T) {
	tests := []struct {
		name     string
		scancode uint32
	}{
		{"zero", 0},
		{"reserved gap", 1},
		{"beyond table", NumScancodes},
		{"far out of range", 1 << 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, KeyReserved, Translate(tt.scancode))
		})
	}
}

func TestTranslate_Deterministic(t *testing.T) {
	for sc := uint32(0); sc < NumScancodes; sc++ {
		first := Translate(sc)
		assert.Equal(t, first, Translate(sc), "scancode %d", sc)
	}
}

func TestTranslate_KeycodesInRange(t *testing.T) {
	for sc := uint32(0); sc < NumScancodes; sc++ {
		kc := Translate(sc)
		assert.Less(t, kc, uint16(NumKeycodes), "scancode %d", sc)
	}
}
