package source

import (
	"unicode/utf16"

	"github.com/vidpipe/webrender"
	"github.com/vidpipe/webrender/dispatch"
)

// KeyInput is the host pipeline's raw keyboard event before translation
// into the engine's model.
type KeyInput struct {
	// Text is the printable text produced by the key, if any.
	Text string

	// NativeVKey is the platform key symbol. Translated through the
	// keycode table unless the platform already speaks normalized codes.
	NativeVKey uint32

	// NativeScancode passes through to the engine untouched.
	NativeScancode uint32

	NativeModifiers uint32
}

// SendMouseClick injects a button press or release. Fire-and-forget.
func (s *Source) SendMouseClick(ev webrender.MouseEvent, button webrender.MouseButton, up bool, clicks int) {
	dispatch.RunAsync(s.deps.Loop, s, func(b webrender.Browser) {
		b.SendMouseClick(ev, button, up, clicks)
	})
}

// SendMouseMove injects a pointer move, or a leave event.
func (s *Source) SendMouseMove(ev webrender.MouseEvent, leave bool) {
	dispatch.RunAsync(s.deps.Loop, s, func(b webrender.Browser) {
		b.SendMouseMove(ev, leave)
	})
}

// SendMouseWheel injects a scroll event.
func (s *Source) SendMouseWheel(ev webrender.MouseEvent, dx, dy int) {
	dispatch.RunAsync(s.deps.Loop, s, func(b webrender.Browser) {
		b.SendMouseWheel(ev, dx, dy)
	})
}

// SendFocus injects a focus change.
func (s *Source) SendFocus(focus bool) {
	dispatch.RunAsync(s.deps.Loop, s, func(b webrender.Browser) {
		b.SendFocus(focus)
	})
}

// SendKeyClick injects a keyboard event. A key-down carrying printable
// text produces two engine events: the raw key event followed by a
// character event whose code is the translation of the text's first
// code unit. A key-up produces exactly one event.
func (s *Source) SendKeyClick(in KeyInput, keyUp bool) {
	vkey := s.trans(in.NativeVKey)

	var char rune
	if in.Text != "" {
		if units := utf16.Encode([]rune(in.Text)); len(units) > 0 {
			char = rune(units[0])
		}
	}

	dispatch.RunAsync(s.deps.Loop, s, func(b webrender.Browser) {
		ev := webrender.KeyEvent{
			Type:           webrender.KeyRawDown,
			WindowsKeyCode: uint32(vkey),
			NativeKeyCode:  in.NativeScancode,
			Modifiers:      webrender.EventModifiers(in.NativeModifiers),
			Character:      char,
		}
		if keyUp {
			ev.Type = webrender.KeyUp
		}
		b.SendKeyEvent(ev)

		if char != 0 && !keyUp {
			ev.Type = webrender.KeyChar
			ev.WindowsKeyCode = uint32(s.trans(uint32(char)))
			ev.NativeKeyCode = in.NativeScancode
			b.SendKeyEvent(ev)
		}
	})
}
