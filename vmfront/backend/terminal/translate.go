package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/valerio/go-vmfront/vmfront/input"
	"github.com/valerio/go-vmfront/vmfront/keymap"
)

// specialKeys maps tcell function keys to host scancodes.
var specialKeys = map[tcell.Key]uint32{
	tcell.KeyEnter:      keymap.ScancodeReturn,
	tcell.KeyEscape:     keymap.ScancodeEscape,
	tcell.KeyBackspace:  keymap.ScancodeBackspace,
	tcell.KeyBackspace2: keymap.ScancodeBackspace,
	tcell.KeyTab:        keymap.ScancodeTab,
	tcell.KeyUp:         keymap.ScancodeUp,
	tcell.KeyDown:       keymap.ScancodeDown,
	tcell.KeyLeft:       keymap.ScancodeLeft,
	tcell.KeyRight:      keymap.ScancodeRight,
	tcell.KeyHome:       keymap.ScancodeHome,
	tcell.KeyEnd:        keymap.ScancodeEnd,
	tcell.KeyPgUp:       keymap.ScancodePageUp,
	tcell.KeyPgDn:       keymap.ScancodePageDown,
	tcell.KeyInsert:     keymap.ScancodeInsert,
	tcell.KeyDelete:     keymap.ScancodeDelete,
	tcell.KeyF1:         keymap.ScancodeF1,
	tcell.KeyF2:         keymap.ScancodeF2,
	tcell.KeyF3:         keymap.ScancodeF3,
	tcell.KeyF4:         keymap.ScancodeF4,
	tcell.KeyF5:         keymap.ScancodeF5,
	tcell.KeyF6:         keymap.ScancodeF6,
	tcell.KeyF7:         keymap.ScancodeF7,
	tcell.KeyF8:         keymap.ScancodeF8,
	tcell.KeyF9:         keymap.ScancodeF9,
	tcell.KeyF10:        keymap.ScancodeF10,
	tcell.KeyF11:        keymap.ScancodeF11,
	tcell.KeyF12:        keymap.ScancodeF12,
}

// runeKeys maps printable runes to the host scancode of the key that
// carries them on a US layout. The terminal cannot report physical
// positions, so the US legend is the best available approximation.
var runeKeys = map[rune]uint32{
	' ':  keymap.ScancodeSpace,
	'-':  keymap.ScancodeMinus,
	'_':  keymap.ScancodeMinus,
	'=':  keymap.ScancodeEquals,
	'+':  keymap.ScancodeEquals,
	'[':  keymap.ScancodeLeftBracket,
	'{':  keymap.ScancodeLeftBracket,
	']':  keymap.ScancodeRightBracket,
	'}':  keymap.ScancodeRightBracket,
	'\\': keymap.ScancodeBackslash,
	'|':  keymap.ScancodeBackslash,
	';':  keymap.ScancodeSemicolon,
	':':  keymap.ScancodeSemicolon,
	'\'': keymap.ScancodeApostrophe,
	'"':  keymap.ScancodeApostrophe,
	'`':  keymap.ScancodeGrave,
	'~':  keymap.ScancodeGrave,
	',':  keymap.ScancodeComma,
	'<':  keymap.ScancodeComma,
	'.':  keymap.ScancodePeriod,
	'>':  keymap.ScancodePeriod,
	'/':  keymap.ScancodeSlash,
	'?':  keymap.ScancodeSlash,
}

// translateKey converts a tcell key event into a host scancode.
func translateKey(ev *tcell.EventKey) (uint32, bool) {
	if sc, ok := specialKeys[ev.Key()]; ok {
		return sc, true
	}
	if ev.Key() != tcell.KeyRune {
		return 0, false
	}

	r := ev.Rune()
	switch {
	case r >= 'a' && r <= 'z':
		return keymap.ScancodeA + uint32(r-'a'), true
	case r >= 'A' && r <= 'Z':
		return keymap.ScancodeA + uint32(r-'A'), true
	case r >= '1' && r <= '9':
		return keymap.Scancode1 + uint32(r-'1'), true
	case r == '0':
		return keymap.Scancode0, true
	}
	if sc, ok := runeKeys[r]; ok {
		return sc, true
	}
	return 0, false
}

// translateButtons converts a tcell button mask into the host button
// state layout the dispatcher expects. tcell numbers the secondary
// (right) button 2 and the middle button 3.
func translateButtons(mask tcell.ButtonMask) uint32 {
	var state uint32
	if mask&tcell.ButtonPrimary != 0 {
		state |= input.HostButtonLeft
	}
	if mask&tcell.ButtonSecondary != 0 {
		state |= input.HostButtonRight
	}
	if mask&tcell.ButtonMiddle != 0 {
		state |= input.HostButtonMiddle
	}
	return state
}
