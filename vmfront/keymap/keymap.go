// Package keymap translates host physical scancodes into guest keycodes.
//
// The mapping is positional: a key is identified by where it sits on the
// board, not by the character its legend shows under the host layout. A
// few distinct physical keys deliberately collapse onto one guest key
// (the ISO extra-backslash pair, the two keypad-equals variants, the two
// enter keys); PC guests expect exactly these collisions.
package keymap

// NumScancodes bounds the host scancode domain (SDL_NUM_SCANCODES).
const NumScancodes = 512

// NumKeycodes bounds the guest keycode domain (Linux KEY_MAX+1).
const NumKeycodes = 768

var table = [NumScancodes]uint16{
	ScancodeA: KeyA,
	ScancodeB: KeyB,
	ScancodeC: KeyC,
	ScancodeD: KeyD,
	ScancodeE: KeyE,
	ScancodeF: KeyF,
	ScancodeG: KeyG,
	ScancodeH: KeyH,
	ScancodeI: KeyI,
	ScancodeJ: KeyJ,
	ScancodeK: KeyK,
	ScancodeL: KeyL,
	ScancodeM: KeyM,
	ScancodeN: KeyN,
	ScancodeO: KeyO,
	ScancodeP: KeyP,
	ScancodeQ: KeyQ,
	ScancodeR: KeyR,
	ScancodeS: KeyS,
	ScancodeT: KeyT,
	ScancodeU: KeyU,
	ScancodeV: KeyV,
	ScancodeW: KeyW,
	ScancodeX: KeyX,
	ScancodeY: KeyY,
	ScancodeZ: KeyZ,

	Scancode1: Key1,
	Scancode2: Key2,
	Scancode3: Key3,
	Scancode4: Key4,
	Scancode5: Key5,
	Scancode6: Key6,
	Scancode7: Key7,
	Scancode8: Key8,
	Scancode9: Key9,
	Scancode0: Key0,

	ScancodeReturn:       KeyEnter,
	ScancodeEscape:       KeyEsc,
	ScancodeBackspace:    KeyBackspace,
	ScancodeTab:          KeyTab,
	ScancodeSpace:        KeySpace,
	ScancodeMinus:        KeyMinus,
	ScancodeEquals:       KeyEqual,
	ScancodeLeftBracket:  KeyLeftBrace,
	ScancodeRightBracket: KeyRightBrace,
	ScancodeBackslash:    KeyBackslash,
	ScancodeNonUSHash:    KeyBackslash,
	ScancodeSemicolon:    KeySemicolon,
	ScancodeApostrophe:   KeyApostrophe,
	ScancodeGrave:        KeyGrave,
	ScancodeComma:        KeyComma,
	ScancodePeriod:       KeyDot,
	ScancodeSlash:        KeySlash,
	ScancodeCapsLock:     KeyCapsLock,

	ScancodeF1:  KeyF1,
	ScancodeF2:  KeyF2,
	ScancodeF3:  KeyF3,
	ScancodeF4:  KeyF4,
	ScancodeF5:  KeyF5,
	ScancodeF6:  KeyF6,
	ScancodeF7:  KeyF7,
	ScancodeF8:  KeyF8,
	ScancodeF9:  KeyF9,
	ScancodeF10: KeyF10,
	ScancodeF11: KeyF11,
	ScancodeF12: KeyF12,

	ScancodePrintScreen: KeyPrint,
	ScancodeScrollLock:  KeyScrollLock,
	ScancodePause:       KeyPause,
	ScancodeInsert:      KeyInsert,
	ScancodeHome:        KeyHome,
	ScancodePageUp:      KeyPageUp,
	ScancodeDelete:      KeyDelete,
	ScancodeEnd:         KeyEnd,
	ScancodePageDown:    KeyPageDown,
	ScancodeRight:       KeyRight,
	ScancodeLeft:        KeyLeft,
	ScancodeDown:        KeyDown,
	ScancodeUp:          KeyUp,

	ScancodeNumLockClear: KeyNumLock,
	ScancodeKPDivide:     KeyKPSlash,
	ScancodeKPMultiply:   KeyKPAsterisk,
	ScancodeKPMinus:      KeyKPMinus,
	ScancodeKPPlus:       KeyKPPlus,
	ScancodeKPEnter:      KeyKPEnter,
	ScancodeKP1:          KeyKP1,
	ScancodeKP2:          KeyKP2,
	ScancodeKP3:          KeyKP3,
	ScancodeKP4:          KeyKP4,
	ScancodeKP5:          KeyKP5,
	ScancodeKP6:          KeyKP6,
	ScancodeKP7:          KeyKP7,
	ScancodeKP8:          KeyKP8,
	ScancodeKP9:          KeyKP9,
	ScancodeKP0:          KeyKP0,
	ScancodeKPPeriod:     KeyKPDot,

	ScancodeNonUSBackslash: KeyBackslash,
	ScancodePower:          KeyPower,
	ScancodeKPEquals:       KeyKPEqual,

	ScancodeF13: KeyF13,
	ScancodeF14: KeyF14,
	ScancodeF15: KeyF15,
	ScancodeF16: KeyF16,
	ScancodeF17: KeyF17,
	ScancodeF18: KeyF18,
	ScancodeF19: KeyF19,
	ScancodeF20: KeyF20,
	ScancodeF21: KeyF21,
	ScancodeF22: KeyF22,
	ScancodeF23: KeyF23,
	ScancodeF24: KeyF24,

	ScancodeHelp:   KeyHelp,
	ScancodeMenu:   KeyMenu,
	ScancodeSelect: KeySelect,
	ScancodeStop:   KeyStop,
	ScancodeAgain:  KeyAgain,
	ScancodeUndo:   KeyUndo,
	ScancodeCut:    KeyCut,
	ScancodeCopy:   KeyCopy,
	ScancodePaste:  KeyPaste,
	ScancodeFind:   KeyFind,

	ScancodeMute:       KeyMute,
	ScancodeVolumeUp:   KeyVolumeUp,
	ScancodeVolumeDown: KeyVolumeDown,

	ScancodeKPComma:       KeyKPComma,
	ScancodeKPEqualsAS400: KeyKPEqual,

	ScancodeAltErase: KeyAltErase,
	ScancodeSysReq:   KeySysRq,
	ScancodeCancel:   KeyCancel,
	ScancodeClear:    KeyClear,
	ScancodeReturn2:  KeyEnter,

	ScancodeLCtrl:  KeyLeftCtrl,
	ScancodeLShift: KeyLeftShift,
	ScancodeLAlt:   KeyLeftAlt,
	ScancodeLGui:   KeyLeftMeta,
	ScancodeRCtrl:  KeyRightCtrl,
	ScancodeRShift: KeyRightShift,
	ScancodeRAlt:   KeyRightAlt,
}

// Translate maps a host scancode to a guest keycode. Scancodes outside the
// table's domain and positions with no guest equivalent return KeyReserved.
func Translate(scancode uint32) uint16 {
	if scancode >= NumScancodes {
		return KeyReserved
	}
	return table[scancode]
}
