package webrender

// EventModifiers is a bitmask of modifier keys and buttons attached to an
// input event, in the engine's encoding.
type EventModifiers uint32

const (
	ModifierCapsLock EventModifiers = 1 << iota
	ModifierShift
	ModifierControl
	ModifierAlt
	ModifierLeftButton
	ModifierMiddleButton
	ModifierRightButton
	ModifierCommand
	ModifierNumLock
	ModifierIsKeyPad
	ModifierAltGr
)

// MouseButton identifies which button a click event refers to.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonMiddle
	MouseButtonRight
)

// MouseEvent is a normalized mouse position event in surface coordinates.
type MouseEvent struct {
	X         int
	Y         int
	Modifiers EventModifiers
}

// KeyEventType distinguishes the three kinds of key events the engine
// understands.
type KeyEventType int

const (
	// KeyRawDown is a raw key press carrying the virtual-key code.
	KeyRawDown KeyEventType = iota
	// KeyUp is a key release.
	KeyUp
	// KeyChar is a synthesized character-input event following a raw
	// key-down that produced printable text.
	KeyChar
)

// KeyEvent is a normalized keyboard event in the engine's model.
type KeyEvent struct {
	Type KeyEventType

	// WindowsKeyCode is the normalized virtual-key code (keycode.VirtualKey
	// numeric space). For KeyChar events it carries the translated code of
	// the character itself.
	WindowsKeyCode uint32

	// NativeKeyCode is the platform scancode, passed through untouched.
	NativeKeyCode uint32

	Modifiers EventModifiers

	// Character is the first UTF-16 code unit of the event's text, set on
	// KeyChar events.
	Character rune
}
