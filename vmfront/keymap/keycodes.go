package keymap

// Guest keycodes follow the Linux input-event namespace, which is what the
// VM's virtio input device consumes.
const (
	KeyReserved uint16 = 0

	KeyEsc       uint16 = 1
	Key1         uint16 = 2
	Key2         uint16 = 3
	Key3         uint16 = 4
	Key4         uint16 = 5
	Key5         uint16 = 6
	Key6         uint16 = 7
	Key7         uint16 = 8
	Key8         uint16 = 9
	Key9         uint16 = 10
	Key0         uint16 = 11
	KeyMinus     uint16 = 12
	KeyEqual     uint16 = 13
	KeyBackspace uint16 = 14
	KeyTab       uint16 = 15

	KeyQ          uint16 = 16
	KeyW          uint16 = 17
	KeyE          uint16 = 18
	KeyR          uint16 = 19
	KeyT          uint16 = 20
	KeyY          uint16 = 21
	KeyU          uint16 = 22
	KeyI          uint16 = 23
	KeyO          uint16 = 24
	KeyP          uint16 = 25
	KeyLeftBrace  uint16 = 26
	KeyRightBrace uint16 = 27
	KeyEnter      uint16 = 28
	KeyLeftCtrl   uint16 = 29

	KeyA          uint16 = 30
	KeyS          uint16 = 31
	KeyD          uint16 = 32
	KeyF          uint16 = 33
	KeyG          uint16 = 34
	KeyH          uint16 = 35
	KeyJ          uint16 = 36
	KeyK          uint16 = 37
	KeyL          uint16 = 38
	KeySemicolon  uint16 = 39
	KeyApostrophe uint16 = 40
	KeyGrave      uint16 = 41
	KeyLeftShift  uint16 = 42
	KeyBackslash  uint16 = 43

	KeyZ          uint16 = 44
	KeyX          uint16 = 45
	KeyC          uint16 = 46
	KeyV          uint16 = 47
	KeyB          uint16 = 48
	KeyN          uint16 = 49
	KeyM          uint16 = 50
	KeyComma      uint16 = 51
	KeyDot        uint16 = 52
	KeySlash      uint16 = 53
	KeyRightShift uint16 = 54
	KeyKPAsterisk uint16 = 55
	KeyLeftAlt    uint16 = 56
	KeySpace      uint16 = 57
	KeyCapsLock   uint16 = 58

	KeyF1  uint16 = 59
	KeyF2  uint16 = 60
	KeyF3  uint16 = 61
	KeyF4  uint16 = 62
	KeyF5  uint16 = 63
	KeyF6  uint16 = 64
	KeyF7  uint16 = 65
	KeyF8  uint16 = 66
	KeyF9  uint16 = 67
	KeyF10 uint16 = 68

	KeyNumLock    uint16 = 69
	KeyScrollLock uint16 = 70

	KeyKP7     uint16 = 71
	KeyKP8     uint16 = 72
	KeyKP9     uint16 = 73
	KeyKPMinus uint16 = 74
	KeyKP4     uint16 = 75
	KeyKP5     uint16 = 76
	KeyKP6     uint16 = 77
	KeyKPPlus  uint16 = 78
	KeyKP1     uint16 = 79
	KeyKP2     uint16 = 80
	KeyKP3     uint16 = 81
	KeyKP0     uint16 = 82
	KeyKPDot   uint16 = 83

	KeyF11        uint16 = 87
	KeyF12        uint16 = 88
	KeyKPEnter    uint16 = 96
	KeyRightCtrl  uint16 = 97
	KeyKPSlash    uint16 = 98
	KeySysRq      uint16 = 99
	KeyRightAlt   uint16 = 100
	KeyHome       uint16 = 102
	KeyUp         uint16 = 103
	KeyPageUp     uint16 = 104
	KeyLeft       uint16 = 105
	KeyRight      uint16 = 106
	KeyEnd        uint16 = 107
	KeyDown       uint16 = 108
	KeyPageDown   uint16 = 109
	KeyInsert     uint16 = 110
	KeyDelete     uint16 = 111
	KeyMute       uint16 = 113
	KeyVolumeDown uint16 = 114
	KeyVolumeUp   uint16 = 115
	KeyPower      uint16 = 116
	KeyKPEqual    uint16 = 117
	KeyPause      uint16 = 119
	KeyKPComma    uint16 = 121
	KeyLeftMeta   uint16 = 125
	KeyStop       uint16 = 128
	KeyAgain      uint16 = 129
	KeyUndo       uint16 = 131
	KeyCopy       uint16 = 133
	KeyPaste      uint16 = 135
	KeyFind       uint16 = 136
	KeyCut        uint16 = 137
	KeyHelp       uint16 = 138
	KeyMenu       uint16 = 139

	KeyF13 uint16 = 183
	KeyF14 uint16 = 184
	KeyF15 uint16 = 185
	KeyF16 uint16 = 186
	KeyF17 uint16 = 187
	KeyF18 uint16 = 188
	KeyF19 uint16 = 189
	KeyF20 uint16 = 190
	KeyF21 uint16 = 191
	KeyF22 uint16 = 192
	KeyF23 uint16 = 193
	KeyF24 uint16 = 194

	KeyPrint    uint16 = 210
	KeyAltErase uint16 = 222
	KeyCancel   uint16 = 223
	KeySelect   uint16 = 353
	KeyClear    uint16 = 355
)
