// Package keycode defines the normalized virtual-key code space used by
// the rendering engine's keyboard events and the translation from X11
// keysyms into it.
//
// Translation is a total function: symbols without a mapping yield
// Unknown, never an error. Platforms whose input system already delivers
// normalized codes use the passthrough translator instead of the table.
package keycode
