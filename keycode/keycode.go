package keycode

// VirtualKey is a normalized virtual-key code in the Windows VKEY
// numeric space, which is what the engine's keyboard events carry
// regardless of host platform.
type VirtualKey uint32

// Unknown is the sentinel for symbols with no mapping.
const Unknown VirtualKey = 0

const (
	Back    VirtualKey = 0x08
	Tab     VirtualKey = 0x09
	Clear   VirtualKey = 0x0C
	Return  VirtualKey = 0x0D
	Shift   VirtualKey = 0x10
	Control VirtualKey = 0x11
	Menu    VirtualKey = 0x12 // ALT
	Pause   VirtualKey = 0x13
	Capital VirtualKey = 0x14 // caps lock

	// IME composition keys. Kana/Hangul and Hanja/Kanji share codes.
	Kana       VirtualKey = 0x15
	Hangul     VirtualKey = 0x15
	Junja      VirtualKey = 0x17
	Final      VirtualKey = 0x18
	Hanja      VirtualKey = 0x19
	Kanji      VirtualKey = 0x19
	Escape     VirtualKey = 0x1B
	Convert    VirtualKey = 0x1C
	NonConvert VirtualKey = 0x1D
	Accept     VirtualKey = 0x1E
	ModeChange VirtualKey = 0x1F

	Space    VirtualKey = 0x20
	Prior    VirtualKey = 0x21 // page up
	Next     VirtualKey = 0x22 // page down
	End      VirtualKey = 0x23
	Home     VirtualKey = 0x24
	Left     VirtualKey = 0x25
	Up       VirtualKey = 0x26
	Right    VirtualKey = 0x27
	Down     VirtualKey = 0x28
	Select   VirtualKey = 0x29
	Print    VirtualKey = 0x2A
	Execute  VirtualKey = 0x2B
	Snapshot VirtualKey = 0x2C
	Insert   VirtualKey = 0x2D
	Delete   VirtualKey = 0x2E
	Help     VirtualKey = 0x2F

	Digit0 VirtualKey = 0x30
	Digit1 VirtualKey = 0x31
	Digit2 VirtualKey = 0x32
	Digit3 VirtualKey = 0x33
	Digit4 VirtualKey = 0x34
	Digit5 VirtualKey = 0x35
	Digit6 VirtualKey = 0x36
	Digit7 VirtualKey = 0x37
	Digit8 VirtualKey = 0x38
	Digit9 VirtualKey = 0x39

	A VirtualKey = 0x41
	B VirtualKey = 0x42
	C VirtualKey = 0x43
	D VirtualKey = 0x44
	E VirtualKey = 0x45
	F VirtualKey = 0x46
	G VirtualKey = 0x47
	H VirtualKey = 0x48
	I VirtualKey = 0x49
	J VirtualKey = 0x4A
	K VirtualKey = 0x4B
	L VirtualKey = 0x4C
	M VirtualKey = 0x4D
	N VirtualKey = 0x4E
	O VirtualKey = 0x4F
	P VirtualKey = 0x50
	Q VirtualKey = 0x51
	R VirtualKey = 0x52
	S VirtualKey = 0x53
	T VirtualKey = 0x54
	U VirtualKey = 0x55
	V VirtualKey = 0x56
	W VirtualKey = 0x57
	X VirtualKey = 0x58
	Y VirtualKey = 0x59
	Z VirtualKey = 0x5A

	LWin VirtualKey = 0x5B
	RWin VirtualKey = 0x5C
	Apps VirtualKey = 0x5D

	Numpad0   VirtualKey = 0x60
	Numpad1   VirtualKey = 0x61
	Numpad2   VirtualKey = 0x62
	Numpad3   VirtualKey = 0x63
	Numpad4   VirtualKey = 0x64
	Numpad5   VirtualKey = 0x65
	Numpad6   VirtualKey = 0x66
	Numpad7   VirtualKey = 0x67
	Numpad8   VirtualKey = 0x68
	Numpad9   VirtualKey = 0x69
	Multiply  VirtualKey = 0x6A
	Add       VirtualKey = 0x6B
	Separator VirtualKey = 0x6C
	Subtract  VirtualKey = 0x6D
	Decimal   VirtualKey = 0x6E
	Divide    VirtualKey = 0x6F

	F1  VirtualKey = 0x70
	F2  VirtualKey = 0x71
	F3  VirtualKey = 0x72
	F4  VirtualKey = 0x73
	F5  VirtualKey = 0x74
	F6  VirtualKey = 0x75
	F7  VirtualKey = 0x76
	F8  VirtualKey = 0x77
	F9  VirtualKey = 0x78
	F10 VirtualKey = 0x79
	F11 VirtualKey = 0x7A
	F12 VirtualKey = 0x7B
	F13 VirtualKey = 0x7C
	F14 VirtualKey = 0x7D
	F15 VirtualKey = 0x7E
	F16 VirtualKey = 0x7F
	F17 VirtualKey = 0x80
	F18 VirtualKey = 0x81
	F19 VirtualKey = 0x82
	F20 VirtualKey = 0x83
	F21 VirtualKey = 0x84
	F22 VirtualKey = 0x85
	F23 VirtualKey = 0x86
	F24 VirtualKey = 0x87

	NumLock VirtualKey = 0x90
	Scroll  VirtualKey = 0x91

	// POSIX extensions occupying codes unassigned by the Windows SDK.
	WLAN              VirtualKey = 0x97
	Power             VirtualKey = 0x98
	BrightnessDown    VirtualKey = 0xD8
	BrightnessUp      VirtualKey = 0xD9
	KbdBrightnessDown VirtualKey = 0xDA
	KbdBrightnessUp   VirtualKey = 0xE8

	BrowserBack      VirtualKey = 0xA6
	BrowserForward   VirtualKey = 0xA7
	BrowserRefresh   VirtualKey = 0xA8
	BrowserStop      VirtualKey = 0xA9
	BrowserSearch    VirtualKey = 0xAA
	BrowserFavorites VirtualKey = 0xAB
	BrowserHome      VirtualKey = 0xAC
	VolumeMute       VirtualKey = 0xAD
	VolumeDown       VirtualKey = 0xAE
	VolumeUp         VirtualKey = 0xAF
	MediaNextTrack   VirtualKey = 0xB0
	MediaPrevTrack   VirtualKey = 0xB1
	MediaStop        VirtualKey = 0xB2
	MediaPlayPause   VirtualKey = 0xB3
	MediaLaunchMail  VirtualKey = 0xB4
	MediaLaunchApp1  VirtualKey = 0xB6
	MediaLaunchApp2  VirtualKey = 0xB7

	// OEM punctuation, US-layout reference glyphs in comments.
	OEM1      VirtualKey = 0xBA // ;:
	OEMPlus   VirtualKey = 0xBB
	OEMComma  VirtualKey = 0xBC
	OEMMinus  VirtualKey = 0xBD
	OEMPeriod VirtualKey = 0xBE
	OEM2      VirtualKey = 0xBF // /?
	OEM3      VirtualKey = 0xC0 // `~
	OEM4      VirtualKey = 0xDB // [{
	OEM5      VirtualKey = 0xDC // \|
	OEM6      VirtualKey = 0xDD // ]}
	OEM7      VirtualKey = 0xDE // '"
	OEM8      VirtualKey = 0xDF
	OEM102    VirtualKey = 0xE2 // 102-key angle bracket / backslash

	// AltGr and Compose have no Windows codes; the unassigned OEM slots
	// 0xE1 and 0xE6 stand in for them, matching Firefox on Linux.
	AltGr   VirtualKey = 0xE1
	Compose VirtualKey = 0xE6

	ProcessKey VirtualKey = 0xE5
)
