package keycode

// Translator maps a native platform key symbol to a VirtualKey.
type Translator func(native uint32) VirtualKey

// Passthrough returns the native code unchanged. Used on platforms whose
// input system already speaks the normalized code space.
func Passthrough(native uint32) VirtualKey {
	return VirtualKey(native)
}

// NewTranslator resolves the translator for the capability flag once, at
// startup, instead of branching per event.
func NewTranslator(nativeNormalized bool) Translator {
	if nativeNormalized {
		return Passthrough
	}
	return FromKeysym
}

// FromKeysym maps an X11 keysym to its VirtualKey. Total: unmapped
// symbols yield Unknown.
func FromKeysym(sym uint32) VirtualKey {
	switch {
	case sym >= '0' && sym <= '9':
		return Digit0 + VirtualKey(sym-'0')
	case sym >= 'A' && sym <= 'Z':
		return A + VirtualKey(sym-'A')
	case sym >= 'a' && sym <= 'z':
		return A + VirtualKey(sym-'a')
	case sym >= xkKP0 && sym <= xkKP9:
		return Numpad0 + VirtualKey(sym-xkKP0)
	case sym >= xkF1 && sym <= xkF24:
		return F1 + VirtualKey(sym-xkF1)
	case sym >= xkKPF1 && sym <= xkKPF4:
		return F1 + VirtualKey(sym-xkKPF1)
	}
	if vk, ok := keysymTable[sym]; ok {
		return vk
	}
	return Unknown
}

var keysymTable = map[uint32]VirtualKey{
	xkBackSpace: Back,
	xkDelete:    Delete,
	xkKPDelete:  Delete,

	xkTab:         Tab,
	xkKPTab:       Tab,
	xkISOLeftTab:  Tab,
	xk3270BackTab: Tab,

	xkLinefeed: Return,
	xkReturn:   Return,
	xkKPEnter:  Return,
	xkISOEnter: Return,

	xkClear:   Clear,
	xkKPBegin: Clear, // numpad 5 without num lock

	xkKPSpace: Space,
	' ':       Space,

	xkHome:       Home,
	xkKPHome:     Home,
	xkEnd:        End,
	xkKPEnd:      End,
	xkPageUp:     Prior,
	xkKPPageUp:   Prior,
	xkPageDown:   Next,
	xkKPPageDown: Next,
	xkLeft:       Left,
	xkKPLeft:     Left,
	xkRight:      Right,
	xkKPRight:    Right,
	xkDown:       Down,
	xkKPDown:     Down,
	xkUp:         Up,
	xkKPUp:       Up,
	xkEscape:     Escape,

	xkKanaLock:    Kana,
	xkKanaShift:   Kana,
	xkHangul:      Hangul,
	xkHangulHanja: Hanja,
	xkKanji:       Kanji,
	xkHenkan:      Convert,
	xkMuhenkan:    NonConvert,

	// Shifted digit glyphs alias their digit's code.
	')': Digit0,
	'!': Digit1,
	'@': Digit2,
	'#': Digit3,
	'$': Digit4,
	'%': Digit5,
	'^': Digit6,
	'&': Digit7,
	'*': Digit8,
	'(': Digit9,

	0xd7:          Multiply, // multiplication sign
	xkKPMultiply:  Multiply,
	xkKPAdd:       Add,
	xkKPSeparator: Separator,
	xkKPSubtract:  Subtract,
	xkKPDecimal:   Decimal,
	xkKPDivide:    Divide,

	xkKPEqual: OEMPlus,
	'=':       OEMPlus,
	'+':       OEMPlus,
	',':       OEMComma,
	'<':       OEMComma,
	'-':       OEMMinus,
	'_':       OEMMinus,
	'>':       OEMPeriod,
	'.':       OEMPeriod,
	':':       OEM1,
	';':       OEM1,
	'?':       OEM2,
	'/':       OEM2,
	'~':       OEM3,
	'`':       OEM3,
	'[':       OEM4,
	'{':       OEM4,
	'\\':      OEM5,
	'|':       OEM5,
	']':       OEM6,
	'}':       OEM6,
	'\'':      OEM7,
	'"':       OEM7,

	xkISOLevel5Sft: OEM8,
	xkShiftL:       Shift,
	xkShiftR:       Shift,
	xkControlL:     Control,
	xkControlR:     Control,
	xkMetaL:        Menu,
	xkMetaR:        Menu,
	xkAltL:         Menu,
	xkAltR:         Menu,
	xkISOLevel3Sft: AltGr,
	xkMultiKey:     Compose,

	xkPause:      Pause,
	xkCapsLock:   Capital,
	xkNumLock:    NumLock,
	xkScrollLock: Scroll,
	xkSelect:     Select,
	xkPrint:      Print,
	xkExecute:    Execute,
	xkInsert:     Insert,
	xkKPInsert:   Insert,
	xkHelp:       Help,
	xkSuperL:     LWin,
	xkSuperR:     RWin,
	xkMenu:       Apps,

	// International backslash key on 102-key keyboards. The Canadian
	// multilingual layout puts OEM_102 on the ugrave key.
	0xab: OEM102, // guillemotleft
	0xbb: OEM102, // guillemotright
	0xb0: OEM102, // degree
	0xf9: OEM102, // ugrave
	0xd9: OEM102, // Ugrave
	0xa6: OEM102, // brokenbar

	// evdev maps F13-F18 to these XF86 symbols for Microsoft Ergonomic
	// keyboards; map them back since there are no codes for the symbols.
	xf86Tools:   F13,
	xf86Launch5: F14,
	xf86Launch6: F15,
	xf86Launch7: F16,
	xf86Launch8: F17,
	xf86Launch9: F18,

	// USB keyboard multimedia buttons.
	xf86Back:              BrowserBack,
	xf86Forward:           BrowserForward,
	xf86Refresh:           BrowserRefresh,
	xf86Stop:              BrowserStop,
	xf86Search:            BrowserSearch,
	xf86Favorites:         BrowserFavorites,
	xf86HomePage:          BrowserHome,
	xf86AudioMute:         VolumeMute,
	xf86AudioLowerVolume:  VolumeDown,
	xf86AudioRaiseVolume:  VolumeUp,
	xf86AudioNext:         MediaNextTrack,
	xf86AudioPrev:         MediaPrevTrack,
	xf86AudioStop:         MediaStop,
	xf86AudioPlay:         MediaPlayPause,
	xf86Mail:              MediaLaunchMail,
	xf86LaunchA:           MediaLaunchApp1, // F3 on an Apple keyboard
	xf86LaunchB:           MediaLaunchApp2, // F4 on an Apple keyboard
	xf86Calculator:        MediaLaunchApp2,
	xf86WLAN:              WLAN,
	xf86PowerOff:          Power,
	xf86MonBrightnessDown: BrightnessDown,
	xf86MonBrightnessUp:   BrightnessUp,
	xf86KbdBrightnessDown: KbdBrightnessDown,
	xf86KbdBrightnessUp:   KbdBrightnessUp,
}
