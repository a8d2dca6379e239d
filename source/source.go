package source

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/tidwall/sjson"
	"go.uber.org/zap"

	"github.com/vidpipe/webrender"
	"github.com/vidpipe/webrender/dispatch"
	"github.com/vidpipe/webrender/errors"
	"github.com/vidpipe/webrender/keycode"
	"github.com/vidpipe/webrender/registry"
)

// Process message names understood by embedded content.
const (
	MsgVisibility = "Visibility"
	MsgActive     = "Active"
)

// Notification events dispatched into embedded content.
const (
	EventVisibilityChanged = "visibilityChanged"
	EventActiveChanged     = "activeChanged"
)

// Deps are the collaborators a source is wired to. Engine, Loop and
// Registry are required; the rest are optional.
type Deps struct {
	Engine   webrender.Engine
	Loop     *dispatch.Loop
	Registry *registry.Registry

	// Graphics is used for shared-texture capability queries under the
	// pipeline's graphics lock. Nil disables hardware acceleration.
	Graphics webrender.Graphics

	// Audio receives the audio-reroute state on configuration updates.
	Audio webrender.AudioSink

	Logger *zap.Logger

	// WindowsPathStyle selects drive-letter file URI normalization
	// (file:///C:/...). Hosts set it from the target platform.
	WindowsPathStyle bool
}

// Source is one live render source. All exported methods are safe to
// call from any pipeline goroutine.
type Source struct {
	id    uuid.UUID
	deps  Deps
	caps  webrender.Capabilities
	trans keycode.Translator
	log   *zap.Logger

	regHandle registry.Handle

	// mu guards the configuration snapshot and firstUpdateDone.
	mu              sync.Mutex
	cfg             Config
	firstUpdateDone bool

	handleMu sync.RWMutex
	browser  webrender.Browser

	pendingCreate atomic.Bool
	showing       atomic.Bool
	active        atomic.Bool
	resetFrame    atomic.Bool
	closed        atomic.Bool

	frameMu sync.Mutex
	frame   *webrender.Frame

	audioMu sync.Mutex
	audio   map[string]AudioStream
}

// New creates a source, registers it, and issues the deferred first
// update. The source has no browser until a settings update and a tick.
func New(deps Deps) (*Source, error) {
	if deps.Engine == nil {
		return nil, errors.NotReady(errors.PhaseCreate, "engine")
	}
	if deps.Loop == nil {
		return nil, errors.NotReady(errors.PhaseCreate, "engine loop")
	}
	if deps.Registry == nil {
		return nil, errors.NotReady(errors.PhaseCreate, "registry")
	}
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	caps := deps.Engine.Capabilities()
	s := &Source{
		id:    uuid.New(),
		deps:  deps,
		caps:  caps,
		trans: keycode.NewTranslator(caps.NativeKeycodes),
		audio: make(map[string]AudioStream),
	}
	s.log = log.With(zap.String("source", s.id.String()))
	s.regHandle = deps.Registry.Add(s)

	// Deferred first update: bootstrap path, keeps prior (zero) state.
	s.Update(nil)
	return s, nil
}

// ID returns the source's stable identity.
func (s *Source) ID() string {
	return s.id.String()
}

// Browser returns the current engine handle, or nil. Implements
// dispatch.Target; the handle must only be dereferenced on the engine
// loop.
func (s *Source) Browser() webrender.Browser {
	s.handleMu.RLock()
	defer s.handleMu.RUnlock()
	return s.browser
}

// PostAsync implements registry.Member.
func (s *Source) PostAsync(fn dispatch.BrowserFunc) {
	dispatch.RunAsync(s.deps.Loop, s, fn)
}

func (s *Source) setBrowser(b webrender.Browser) {
	s.handleMu.Lock()
	s.browser = b
	s.handleMu.Unlock()
}

// swapBrowser nulls the handle slot and returns the previous handle.
// New submissions capture nil from here on; the returned reference stays
// valid for the teardown task.
func (s *Source) swapBrowser() webrender.Browser {
	s.handleMu.Lock()
	b := s.browser
	s.browser = nil
	s.handleMu.Unlock()
	return b
}

// staticTarget adapts an already-captured handle to dispatch.Target for
// teardown, where the source's own slot has been nulled first.
type staticTarget struct{ b webrender.Browser }

func (t staticTarget) Browser() webrender.Browser { return t.b }

func teardown(b webrender.Browser) {
	b.DetachClient()
	// Hiding before close stops rendering immediately.
	b.WasHidden(true)
	b.Close()
}

func (s *Source) destroyBrowserAsync() {
	b := s.swapBrowser()
	if b == nil {
		return
	}
	s.deps.Loop.Submit(func(context.Context) { teardown(b) })
}

func (s *Source) destroyBrowserSync(ctx context.Context) {
	b := s.swapBrowser()
	if b == nil {
		return
	}
	dispatch.RunSync(ctx, s.deps.Loop, staticTarget{b}, teardown)
}

// Tick is invoked once per pipeline frame. It submits the pending
// creation task, and re-arms the begin-frame signal on the
// shared-texture path.
func (s *Source) Tick() {
	if s.pendingCreate.Load() && s.createBrowser() {
		s.pendingCreate.Store(false)
	}
	s.mu.Lock()
	fpsCustom := s.cfg.FPSCustom
	s.mu.Unlock()
	if s.caps.SupportsSharedTextures() && !fpsCustom {
		s.resetFrame.Store(true)
	}
}

// createBrowser submits the single creation task. Returns whether the
// submission was accepted.
func (s *Source) createBrowser() bool {
	return s.deps.Loop.Submit(func(ctx context.Context) {
		s.mu.Lock()
		cfg := s.cfg
		s.mu.Unlock()

		hwaccel := false
		if s.caps.SupportsSharedTextures() && s.deps.Graphics != nil {
			s.deps.Graphics.Enter()
			hwaccel = s.deps.Graphics.SharedTextureAvailable()
			s.deps.Graphics.Leave()
		}

		info := webrender.WindowInfo{
			Width:         cfg.Width,
			Height:        cfg.Height,
			SharedTexture: hwaccel,
		}
		settings := webrender.BrowserSettings{
			URL:        cfg.URL,
			Stylesheet: cfg.Stylesheet,
			FrameRate:  cfg.FPS,
		}
		if hwaccel && !cfg.FPSCustom && s.caps.SupportsExternalBeginFrame() {
			info.ExternalBeginFrame = true
			settings.FrameRate = 0
		}
		if cfg.IsLocalFile && s.caps.FileURLScheme {
			// file:// content needs web security off to reach remote APIs.
			settings.DisableWebSecurity = true
		}
		reroute := cfg.RerouteAudio && s.caps.AudioRerouting

		b, err := s.deps.Engine.CreateSync(info, settings)
		if err != nil {
			s.log.Warn("browser creation failed", zap.Error(err))
			return
		}
		if s.closed.Load() {
			teardown(b)
			return
		}
		if reroute && s.caps.SupportsAudioControl() {
			b.SetAudioMuted(true)
		}
		s.setBrowser(b)
		sendVisibility(b, s.showing.Load())
	})
}

// sendVisibility applies the visibility flag to a browser on the engine
// loop: hide stops rendering, show forces a repaint.
func sendVisibility(b webrender.Browser, visible bool) {
	if b == nil {
		return
	}
	if visible {
		b.WasHidden(false)
		b.Invalidate()
	} else {
		b.WasHidden(true)
	}
	b.SendProcessMessage(webrender.TargetRenderer, webrender.NewMessage(MsgVisibility, visible))
}

// SetShowing updates the visibility flag. Sources configured to shut
// down while hidden recreate their browser on show and tear it down on
// hide; everyone else just gets notified.
func (s *Source) SetShowing(showing bool) {
	s.showing.Store(showing)

	s.mu.Lock()
	shutdownHidden := s.cfg.ShutdownWhenHidden
	fpsCustom := s.cfg.FPSCustom
	s.mu.Unlock()

	if shutdownHidden {
		if showing {
			s.Update(nil)
		} else {
			s.destroyBrowserAsync()
		}
		return
	}

	dispatch.RunAsync(s.deps.Loop, s, func(b webrender.Browser) {
		b.SendProcessMessage(webrender.TargetRenderer, webrender.NewMessage(MsgVisibility, showing))
	})
	payload, _ := sjson.SetBytes([]byte("{}"), "visible", showing)
	s.deps.Registry.DispatchEvent(EventVisibilityChanged, payload, s)

	if showing && s.caps.SupportsSharedTextures() && !fpsCustom {
		s.resetFrame.Store(false)
	}
	dispatch.RunAsync(s.deps.Loop, s, func(b webrender.Browser) {
		sendVisibility(b, showing)
	})
}

// SetActive notifies the browser and embedded content about activity
// changes. Does not affect the browser lifecycle.
func (s *Source) SetActive(active bool) {
	s.active.Store(active)
	dispatch.RunAsync(s.deps.Loop, s, func(b webrender.Browser) {
		b.SendProcessMessage(webrender.TargetRenderer, webrender.NewMessage(MsgActive, active))
	})
	payload, _ := sjson.SetBytes([]byte("{}"), "active", active)
	s.deps.Registry.DispatchEvent(EventActiveChanged, payload, s)

	s.mu.Lock()
	restart := s.cfg.RestartWhenActive
	s.mu.Unlock()
	if active && restart {
		s.Refresh()
	}
}

// Showing reports the current visibility flag.
func (s *Source) Showing() bool {
	return s.showing.Load()
}

// Active reports the current activity flag.
func (s *Source) Active() bool {
	return s.active.Load()
}

// Refresh reloads the browser's content bypassing caches.
func (s *Source) Refresh() {
	dispatch.RunAsync(s.deps.Loop, s, func(b webrender.Browser) {
		b.ReloadIgnoreCache()
	})
}

// Config returns the current configuration snapshot.
func (s *Source) Config() Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// Close tears the source down: synchronous browser destruction, frame
// and audio release, and unregistration. Idempotent; closing a source
// that never created a browser is a no-op beyond bookkeeping.
func (s *Source) Close() {
	if s.closed.Swap(true) {
		return
	}
	s.destroyBrowserSync(context.Background())
	s.releaseFrame()
	s.closeAudioStreams()
	s.deps.Registry.Remove(s.regHandle)
}

// SetFrame installs the latest decoded frame from the engine's paint
// callback, releasing the one it replaces.
func (s *Source) SetFrame(f *webrender.Frame) {
	s.frameMu.Lock()
	old := s.frame
	s.frame = f
	s.frameMu.Unlock()
	old.Release()
}

// Frame returns the current decoded frame, or nil. The frame remains
// owned by the source.
func (s *Source) Frame() *webrender.Frame {
	s.frameMu.Lock()
	defer s.frameMu.Unlock()
	return s.frame
}

// Render is called from the host's render thread. It signals an
// external begin-frame when one is armed and returns the frame to draw.
func (s *Source) Render() *webrender.Frame {
	if s.resetFrame.CompareAndSwap(true, false) {
		dispatch.RunAsync(s.deps.Loop, s, func(b webrender.Browser) {
			b.SendExternalBeginFrame()
		})
	}
	return s.Frame()
}

func (s *Source) releaseFrame() {
	s.frameMu.Lock()
	f := s.frame
	s.frame = nil
	s.frameMu.Unlock()
	f.Release()
}
