package webrender

// WindowInfo describes the windowless render surface requested from the
// engine when a browser is created.
type WindowInfo struct {
	Width  int
	Height int

	// SharedTexture requests GPU shared-texture output instead of
	// software paint buffers.
	SharedTexture bool

	// ExternalBeginFrame makes the engine render only when the host
	// signals a begin-frame, instead of on its own timer.
	ExternalBeginFrame bool
}

// BrowserSettings carries per-browser configuration applied at creation.
type BrowserSettings struct {
	URL        string
	Stylesheet string

	// FrameRate is the windowless frame rate. Zero is valid and means
	// the engine renders only on external begin-frame signals.
	FrameRate int

	// DisableWebSecurity allows file:// content to reach remote APIs.
	DisableWebSecurity bool

	// Mute starts the browser with engine-side audio output muted, used
	// when audio is rerouted through the host pipeline instead.
	Mute bool
}

// ProcessTarget selects which engine process receives a process message.
type ProcessTarget int

const (
	// TargetRenderer delivers to the renderer process hosting the page.
	TargetRenderer ProcessTarget = iota
	// TargetBrowser delivers to the engine's browser process.
	TargetBrowser
)

// ProcessMessage is a structured message sent into an engine process.
// Args hold positional values; only bools and strings are used by this
// library.
type ProcessMessage struct {
	Name string
	Args []any
}

// NewMessage builds a process message from positional arguments.
func NewMessage(name string, args ...any) ProcessMessage {
	return ProcessMessage{Name: name, Args: args}
}

// Bool returns the bool argument at i, or false if absent or mistyped.
func (m ProcessMessage) Bool(i int) bool {
	if i < 0 || i >= len(m.Args) {
		return false
	}
	b, _ := m.Args[i].(bool)
	return b
}

// Str returns the string argument at i, or "" if absent or mistyped.
func (m ProcessMessage) Str(i int) string {
	if i < 0 || i >= len(m.Args) {
		return ""
	}
	s, _ := m.Args[i].(string)
	return s
}

// Browser is an engine-owned render object. Implementations are NOT safe
// for concurrent use: every method must be called from the engine loop
// goroutine, which the dispatch package guarantees.
type Browser interface {
	// Close destroys the underlying render object.
	Close()

	// DetachClient severs the callback linkage from the browser back to
	// its host-side client before teardown, so in-flight engine callbacks
	// no longer reach a dying source.
	DetachClient()

	// SendProcessMessage posts a structured message to an engine process.
	SendProcessMessage(target ProcessTarget, msg ProcessMessage)

	// WasHidden notifies the engine that the render surface became hidden
	// or visible again. Hiding stops rendering entirely.
	WasHidden(hidden bool)

	// Invalidate forces a repaint of the view after it becomes visible.
	Invalidate()

	// SendExternalBeginFrame triggers one frame of rendering when the
	// browser was created with ExternalBeginFrame.
	SendExternalBeginFrame()

	// ReloadIgnoreCache reloads the current content bypassing caches.
	ReloadIgnoreCache()

	// SetAudioMuted mutes or unmutes engine-side audio output.
	SetAudioMuted(mute bool)

	SendMouseClick(ev MouseEvent, button MouseButton, up bool, clicks int)
	SendMouseMove(ev MouseEvent, leave bool)
	SendMouseWheel(ev MouseEvent, dx, dy int)
	SendKeyEvent(ev KeyEvent)
	SendFocus(focus bool)
}

// Engine is the embedded web rendering engine. CreateSync is only ever
// called from the engine loop goroutine.
type Engine interface {
	// CreateSync builds a new browser synchronously and returns its handle.
	CreateSync(info WindowInfo, settings BrowserSettings) (Browser, error)

	// Capabilities reports what this engine build supports. Resolved once
	// at startup; the result must not change over the engine's lifetime.
	Capabilities() Capabilities
}

// Graphics is the host pipeline's graphics-context scoped acquisition,
// used for capability queries that must run under the graphics lock.
type Graphics interface {
	Enter()
	Leave()

	// SharedTextureAvailable reports whether the graphics backend can
	// share textures with the engine. Only valid between Enter and Leave.
	SharedTextureAvailable() bool
}

// AudioSink receives the audio-reroute state for a source, letting the
// host pipeline enable or disable its audio output for that source.
type AudioSink interface {
	SetAudioActive(active bool)
}

// Frame is one decoded video frame produced by the engine. The texture
// payload is owned by the host's render thread; Release returns it to
// the producer.
type Frame struct {
	Width   int
	Height  int
	Texture any

	release func()
}

// NewFrame wraps a texture payload with an optional release hook.
func NewFrame(width, height int, texture any, release func()) *Frame {
	return &Frame{Width: width, Height: height, Texture: texture, release: release}
}

// Release returns the frame's texture to its producer. Safe to call on a
// nil frame and idempotent.
func (f *Frame) Release() {
	if f == nil || f.release == nil {
		return
	}
	r := f.release
	f.release = nil
	r()
}
