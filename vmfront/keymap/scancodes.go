package keymap

// Host scancodes identify physical key positions independent of layout.
// Values follow the USB HID usage table, which is what SDL reports as
// SDL_Scancode; they are declared here so the table stays importable from
// packages built without cgo.
const (
	ScancodeUnknown uint32 = 0

	ScancodeA uint32 = 4
	ScancodeB uint32 = 5
	ScancodeC uint32 = 6
	ScancodeD uint32 = 7
	ScancodeE uint32 = 8
	ScancodeF uint32 = 9
	ScancodeG uint32 = 10
	ScancodeH uint32 = 11
	ScancodeI uint32 = 12
	ScancodeJ uint32 = 13
	ScancodeK uint32 = 14
	ScancodeL uint32 = 15
	ScancodeM uint32 = 16
	ScancodeN uint32 = 17
	ScancodeO uint32 = 18
	ScancodeP uint32 = 19
	ScancodeQ uint32 = 20
	ScancodeR uint32 = 21
	ScancodeS uint32 = 22
	ScancodeT uint32 = 23
	ScancodeU uint32 = 24
	ScancodeV uint32 = 25
	ScancodeW uint32 = 26
	ScancodeX uint32 = 27
	ScancodeY uint32 = 28
	ScancodeZ uint32 = 29

	Scancode1 uint32 = 30
	Scancode2 uint32 = 31
	Scancode3 uint32 = 32
	Scancode4 uint32 = 33
	Scancode5 uint32 = 34
	Scancode6 uint32 = 35
	Scancode7 uint32 = 36
	Scancode8 uint32 = 37
	Scancode9 uint32 = 38
	Scancode0 uint32 = 39

	ScancodeReturn       uint32 = 40
	ScancodeEscape       uint32 = 41
	ScancodeBackspace    uint32 = 42
	ScancodeTab          uint32 = 43
	ScancodeSpace        uint32 = 44
	ScancodeMinus        uint32 = 45
	ScancodeEquals       uint32 = 46
	ScancodeLeftBracket  uint32 = 47
	ScancodeRightBracket uint32 = 48
	ScancodeBackslash    uint32 = 49
	ScancodeNonUSHash    uint32 = 50
	ScancodeSemicolon    uint32 = 51
	ScancodeApostrophe   uint32 = 52
	ScancodeGrave        uint32 = 53
	ScancodeComma        uint32 = 54
	ScancodePeriod       uint32 = 55
	ScancodeSlash        uint32 = 56
	ScancodeCapsLock     uint32 = 57

	ScancodeF1  uint32 = 58
	ScancodeF2  uint32 = 59
	ScancodeF3  uint32 = 60
	ScancodeF4  uint32 = 61
	ScancodeF5  uint32 = 62
	ScancodeF6  uint32 = 63
	ScancodeF7  uint32 = 64
	ScancodeF8  uint32 = 65
	ScancodeF9  uint32 = 66
	ScancodeF10 uint32 = 67
	ScancodeF11 uint32 = 68
	ScancodeF12 uint32 = 69

	ScancodePrintScreen uint32 = 70
	ScancodeScrollLock  uint32 = 71
	ScancodePause       uint32 = 72
	ScancodeInsert      uint32 = 73
	ScancodeHome        uint32 = 74
	ScancodePageUp      uint32 = 75
	ScancodeDelete      uint32 = 76
	ScancodeEnd         uint32 = 77
	ScancodePageDown    uint32 = 78
	ScancodeRight       uint32 = 79
	ScancodeLeft        uint32 = 80
	ScancodeDown        uint32 = 81
	ScancodeUp          uint32 = 82

	ScancodeNumLockClear uint32 = 83
	ScancodeKPDivide     uint32 = 84
	ScancodeKPMultiply   uint32 = 85
	ScancodeKPMinus      uint32 = 86
	ScancodeKPPlus       uint32 = 87
	ScancodeKPEnter      uint32 = 88
	ScancodeKP1          uint32 = 89
	ScancodeKP2          uint32 = 90
	ScancodeKP3          uint32 = 91
	ScancodeKP4          uint32 = 92
	ScancodeKP5          uint32 = 93
	ScancodeKP6          uint32 = 94
	ScancodeKP7          uint32 = 95
	ScancodeKP8          uint32 = 96
	ScancodeKP9          uint32 = 97
	ScancodeKP0          uint32 = 98
	ScancodeKPPeriod     uint32 = 99

	ScancodeNonUSBackslash uint32 = 100
	ScancodePower          uint32 = 102
	ScancodeKPEquals       uint32 = 103

	ScancodeF13 uint32 = 104
	ScancodeF14 uint32 = 105
	ScancodeF15 uint32 = 106
	ScancodeF16 uint32 = 107
	ScancodeF17 uint32 = 108
	ScancodeF18 uint32 = 109
	ScancodeF19 uint32 = 110
	ScancodeF20 uint32 = 111
	ScancodeF21 uint32 = 112
	ScancodeF22 uint32 = 113
	ScancodeF23 uint32 = 114
	ScancodeF24 uint32 = 115

	ScancodeHelp   uint32 = 117
	ScancodeMenu   uint32 = 118
	ScancodeSelect uint32 = 119
	ScancodeStop   uint32 = 120
	ScancodeAgain  uint32 = 121
	ScancodeUndo   uint32 = 122
	ScancodeCut    uint32 = 123
	ScancodeCopy   uint32 = 124
	ScancodePaste  uint32 = 125
	ScancodeFind   uint32 = 126

	ScancodeMute       uint32 = 127
	ScancodeVolumeUp   uint32 = 128
	ScancodeVolumeDown uint32 = 129

	ScancodeKPComma       uint32 = 133
	ScancodeKPEqualsAS400 uint32 = 134

	ScancodeAltErase uint32 = 153
	ScancodeSysReq   uint32 = 154
	ScancodeCancel   uint32 = 155
	ScancodeClear    uint32 = 156
	ScancodeReturn2  uint32 = 158

	ScancodeLCtrl  uint32 = 224
	ScancodeLShift uint32 = 225
	ScancodeLAlt   uint32 = 226
	ScancodeLGui   uint32 = 227
	ScancodeRCtrl  uint32 = 228
	ScancodeRShift uint32 = 229
	ScancodeRAlt   uint32 = 230
)
