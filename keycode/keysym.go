package keycode

// X11 keysym values referenced by the translation table, from
// X11/keysymdef.h and X11/XF86keysym.h. Latin-1 symbols equal their
// character codes and are written inline in the table instead.
const (
	xkBackSpace    = 0xff08
	xkTab          = 0xff09
	xkLinefeed     = 0xff0a
	xkClear        = 0xff0b
	xkReturn       = 0xff0d
	xkPause        = 0xff13
	xkScrollLock   = 0xff14
	xkEscape       = 0xff1b
	xkMultiKey     = 0xff20
	xkKanji        = 0xff21
	xkMuhenkan     = 0xff22
	xkHenkan       = 0xff23
	xkKanaLock     = 0xff2d
	xkKanaShift    = 0xff2e
	xkHangul       = 0xff31
	xkHangulHanja  = 0xff34
	xkHome         = 0xff50
	xkLeft         = 0xff51
	xkUp           = 0xff52
	xkRight        = 0xff53
	xkDown         = 0xff54
	xkPageUp       = 0xff55
	xkPageDown     = 0xff56
	xkEnd          = 0xff57
	xkSelect       = 0xff60
	xkPrint        = 0xff61
	xkExecute      = 0xff62
	xkInsert       = 0xff63
	xkMenu         = 0xff67
	xkHelp         = 0xff6a
	xkNumLock      = 0xff7f
	xkKPSpace      = 0xff80
	xkKPTab        = 0xff89
	xkKPEnter      = 0xff8d
	xkKPF1         = 0xff91
	xkKPF4         = 0xff94
	xkKPHome       = 0xff95
	xkKPLeft       = 0xff96
	xkKPUp         = 0xff97
	xkKPRight      = 0xff98
	xkKPDown       = 0xff99
	xkKPPageUp     = 0xff9a
	xkKPPageDown   = 0xff9b
	xkKPEnd        = 0xff9c
	xkKPBegin      = 0xff9d
	xkKPInsert     = 0xff9e
	xkKPDelete     = 0xff9f
	xkKPMultiply   = 0xffaa
	xkKPAdd        = 0xffab
	xkKPSeparator  = 0xffac
	xkKPSubtract   = 0xffad
	xkKPDecimal    = 0xffae
	xkKPDivide     = 0xffaf
	xkKP0          = 0xffb0
	xkKP9          = 0xffb9
	xkKPEqual      = 0xffbd
	xkF1           = 0xffbe
	xkF24          = 0xffd5
	xkShiftL       = 0xffe1
	xkShiftR       = 0xffe2
	xkControlL     = 0xffe3
	xkControlR     = 0xffe4
	xkCapsLock     = 0xffe5
	xkMetaL        = 0xffe7
	xkMetaR        = 0xffe8
	xkAltL         = 0xffe9
	xkAltR         = 0xffea
	xkSuperL       = 0xffeb
	xkSuperR       = 0xffec
	xkDelete       = 0xffff
	xkISOLevel3Sft = 0xfe03
	xkISOLevel5Sft = 0xfe11
	xkISOLeftTab   = 0xfe20
	xkISOEnter     = 0xfe34
	xk3270BackTab  = 0xfd05

	xf86MonBrightnessUp   = 0x1008ff02
	xf86MonBrightnessDown = 0x1008ff03
	xf86KbdBrightnessUp   = 0x1008ff05
	xf86KbdBrightnessDown = 0x1008ff06
	xf86AudioLowerVolume  = 0x1008ff11
	xf86AudioMute         = 0x1008ff12
	xf86AudioRaiseVolume  = 0x1008ff13
	xf86AudioPlay         = 0x1008ff14
	xf86AudioStop         = 0x1008ff15
	xf86AudioPrev         = 0x1008ff16
	xf86AudioNext         = 0x1008ff17
	xf86HomePage          = 0x1008ff18
	xf86Mail              = 0x1008ff19
	xf86Search            = 0x1008ff1b
	xf86Calculator        = 0x1008ff1d
	xf86Back              = 0x1008ff26
	xf86Forward           = 0x1008ff27
	xf86Stop              = 0x1008ff28
	xf86Refresh           = 0x1008ff29
	xf86PowerOff          = 0x1008ff2a
	xf86Favorites         = 0x1008ff30
	xf86History           = 0x1008ff37
	xf86OpenURL           = 0x1008ff38
	xf86AddFavorite       = 0x1008ff39
	xf86Launch0           = 0x1008ff40
	xf86Launch5           = 0x1008ff45
	xf86Launch6           = 0x1008ff46
	xf86Launch7           = 0x1008ff47
	xf86Launch8           = 0x1008ff48
	xf86Launch9           = 0x1008ff49
	xf86LaunchA           = 0x1008ff4a
	xf86LaunchB           = 0x1008ff4b
	xf86Go                = 0x1008ff5f
	xf86Tools             = 0x1008ff81
	xf86ZoomIn            = 0x1008ff8b
	xf86ZoomOut           = 0x1008ff8c
	xf86WLAN              = 0x1008ff95
)
