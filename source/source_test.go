package source

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/coreos/go-semver/semver"

	"github.com/vidpipe/webrender"
	"github.com/vidpipe/webrender/config"
	"github.com/vidpipe/webrender/dispatch"
	"github.com/vidpipe/webrender/registry"
)

type fakeBrowser struct {
	mu   sync.Mutex
	ops  []string
	keys []webrender.KeyEvent
	msgs []webrender.ProcessMessage
}

func (b *fakeBrowser) record(op string) {
	b.mu.Lock()
	b.ops = append(b.ops, op)
	b.mu.Unlock()
}

func (b *fakeBrowser) Close()        { b.record("close") }
func (b *fakeBrowser) DetachClient() { b.record("detach") }
func (b *fakeBrowser) SendProcessMessage(_ webrender.ProcessTarget, msg webrender.ProcessMessage) {
	b.mu.Lock()
	b.msgs = append(b.msgs, msg)
	b.ops = append(b.ops, "msg:"+msg.Name)
	b.mu.Unlock()
}
func (b *fakeBrowser) WasHidden(hidden bool)   { b.record(fmt.Sprintf("hidden(%v)", hidden)) }
func (b *fakeBrowser) Invalidate()             { b.record("invalidate") }
func (b *fakeBrowser) SendExternalBeginFrame() { b.record("beginFrame") }
func (b *fakeBrowser) ReloadIgnoreCache()      { b.record("reload") }
func (b *fakeBrowser) SetAudioMuted(mute bool) { b.record(fmt.Sprintf("mute(%v)", mute)) }
func (b *fakeBrowser) SendMouseClick(_ webrender.MouseEvent, _ webrender.MouseButton, up bool, _ int) {
	b.record(fmt.Sprintf("mouseClick(up=%v)", up))
}
func (b *fakeBrowser) SendMouseMove(_ webrender.MouseEvent, leave bool) {
	b.record(fmt.Sprintf("mouseMove(leave=%v)", leave))
}
func (b *fakeBrowser) SendMouseWheel(_ webrender.MouseEvent, dx, dy int) {
	b.record(fmt.Sprintf("mouseWheel(%d,%d)", dx, dy))
}
func (b *fakeBrowser) SendKeyEvent(ev webrender.KeyEvent) {
	b.mu.Lock()
	b.keys = append(b.keys, ev)
	b.ops = append(b.ops, "keyEvent")
	b.mu.Unlock()
}
func (b *fakeBrowser) SendFocus(focus bool) { b.record(fmt.Sprintf("focus(%v)", focus)) }

func (b *fakeBrowser) opCount(op string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, o := range b.ops {
		if o == op {
			n++
		}
	}
	return n
}

func (b *fakeBrowser) hasOp(op string) bool { return b.opCount(op) > 0 }

func (b *fakeBrowser) keyEvents() []webrender.KeyEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]webrender.KeyEvent(nil), b.keys...)
}

type createCall struct {
	info     webrender.WindowInfo
	settings webrender.BrowserSettings
}

type fakeEngine struct {
	caps webrender.Capabilities

	mu       sync.Mutex
	calls    []createCall
	browsers []*fakeBrowser
	err      error
}

func (e *fakeEngine) CreateSync(info webrender.WindowInfo, settings webrender.BrowserSettings) (webrender.Browser, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.err != nil {
		return nil, e.err
	}
	b := &fakeBrowser{}
	e.calls = append(e.calls, createCall{info: info, settings: settings})
	e.browsers = append(e.browsers, b)
	return b, nil
}

func (e *fakeEngine) Capabilities() webrender.Capabilities { return e.caps }

func (e *fakeEngine) createCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.calls)
}

func (e *fakeEngine) browser(i int) *fakeBrowser {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.browsers[i]
}

func (e *fakeEngine) call(i int) createCall {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.calls[i]
}

type fakeGraphics struct{ available bool }

func (fakeGraphics) Enter()                          {}
func (fakeGraphics) Leave()                          {}
func (g fakeGraphics) SharedTextureAvailable() bool  { return g.available }

type fakeAudioSink struct {
	mu     sync.Mutex
	states []bool
}

func (a *fakeAudioSink) SetAudioActive(active bool) {
	a.mu.Lock()
	a.states = append(a.states, active)
	a.mu.Unlock()
}

func (a *fakeAudioSink) last() (bool, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.states) == 0 {
		return false, false
	}
	return a.states[len(a.states)-1], true
}

func fullCaps() webrender.Capabilities {
	return webrender.Capabilities{
		Version:        semver.New("5.0.0"),
		SharedTextures: true,
		FileURLScheme:  true,
		AudioRerouting: true,
	}
}

func softwareCaps() webrender.Capabilities {
	c := fullCaps()
	c.SharedTextures = false
	return c
}

type env struct {
	loop *dispatch.Loop
	reg  *registry.Registry
	eng  *fakeEngine
	sink *fakeAudioSink
}

func newEnv(t *testing.T, caps webrender.Capabilities) *env {
	t.Helper()
	loop := dispatch.NewLoop(64)
	ctx, cancel := context.WithCancel(context.Background())
	go loop.Run(ctx)
	t.Cleanup(func() {
		loop.Close()
		<-loop.Done()
		cancel()
	})
	return &env{
		loop: loop,
		reg:  registry.New(),
		eng:  &fakeEngine{caps: caps},
		sink: &fakeAudioSink{},
	}
}

func (e *env) newSource(t *testing.T) *Source {
	t.Helper()
	s, err := New(Deps{
		Engine:           e.eng,
		Loop:             e.loop,
		Registry:         e.reg,
		Graphics:         fakeGraphics{available: true},
		Audio:            e.sink,
		WindowsPathStyle: true,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(s.Close)
	return s
}

// flush waits for every previously submitted loop task to complete.
func (e *env) flush(t *testing.T) {
	t.Helper()
	done := make(chan struct{})
	if !e.loop.Submit(func(context.Context) { close(done) }) {
		t.Fatal("flush: loop rejected barrier task")
	}
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("flush: loop stalled")
	}
}

func (e *env) update(t *testing.T, s *Source, doc string) {
	t.Helper()
	settings, err := config.FromJSON([]byte(doc))
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	s.Update(&settings)
}

func (e *env) tickAndFlush(t *testing.T, s *Source) {
	t.Helper()
	s.Tick()
	e.flush(t)
}

func TestNew_RequiresCollaborators(t *testing.T) {
	e := newEnv(t, softwareCaps())
	for _, deps := range []Deps{
		{Loop: e.loop, Registry: e.reg},
		{Engine: e.eng, Registry: e.reg},
		{Engine: e.eng, Loop: e.loop},
	} {
		if _, err := New(deps); err == nil {
			t.Fatalf("New(%+v) succeeded, want error", deps)
		}
	}
}

func TestNew_DefersFirstUpdate(t *testing.T) {
	e := newEnv(t, softwareCaps())
	s := e.newSource(t)

	if e.reg.Len() != 1 {
		t.Fatalf("registry has %d members, want 1", e.reg.Len())
	}
	if s.Browser() != nil {
		t.Fatal("fresh source already has a browser")
	}

	// No settings ever applied: ticking must not create anything.
	e.tickAndFlush(t, s)
	if got := e.eng.createCount(); got != 0 {
		t.Fatalf("created %d browsers before first settings, want 0", got)
	}
}

func TestSource_UpdateThenTickCreatesOnce(t *testing.T) {
	e := newEnv(t, softwareCaps())
	s := e.newSource(t)

	e.update(t, s, `{"url":"https://example.com","width":1280,"height":720,"fps":30}`)
	e.tickAndFlush(t, s)

	if got := e.eng.createCount(); got != 1 {
		t.Fatalf("created %d browsers, want 1", got)
	}
	if s.Browser() == nil {
		t.Fatal("source has no browser after create")
	}
	call := e.eng.call(0)
	if call.settings.URL != "https://example.com" {
		t.Fatalf("created with URL %q", call.settings.URL)
	}
	if call.info.Width != 1280 || call.info.Height != 720 {
		t.Fatalf("created with size %dx%d", call.info.Width, call.info.Height)
	}
	if call.settings.FrameRate != 30 {
		t.Fatalf("created with fps %d", call.settings.FrameRate)
	}

	// Further ticks are idle.
	e.tickAndFlush(t, s)
	e.tickAndFlush(t, s)
	if got := e.eng.createCount(); got != 1 {
		t.Fatalf("idle ticks created browsers: %d", got)
	}
}

func TestSource_IdenticalUpdateIsNoOp(t *testing.T) {
	e := newEnv(t, softwareCaps())
	s := e.newSource(t)

	doc := `{"url":"https://example.com","width":640,"height":480}`
	e.update(t, s, doc)
	e.tickAndFlush(t, s)
	first := s.Browser()

	e.update(t, s, doc)
	e.tickAndFlush(t, s)

	if got := e.eng.createCount(); got != 1 {
		t.Fatalf("identical update caused %d creates, want 1", got)
	}
	if s.Browser() != first {
		t.Fatal("identical update replaced the browser")
	}
	if e.eng.browser(0).hasOp("close") {
		t.Fatal("identical update closed the browser")
	}
}

func TestSource_ChangedUpdateRecreates(t *testing.T) {
	e := newEnv(t, softwareCaps())
	s := e.newSource(t)

	e.update(t, s, `{"url":"https://example.com/a"}`)
	e.tickAndFlush(t, s)

	e.update(t, s, `{"url":"https://example.com/b"}`)
	e.flush(t)

	old := e.eng.browser(0)
	if !old.hasOp("detach") || !old.hasOp("close") {
		t.Fatal("old browser was not torn down")
	}
	if s.Browser() != nil {
		t.Fatal("browser slot not nulled before recreate")
	}

	e.tickAndFlush(t, s)
	if got := e.eng.createCount(); got != 2 {
		t.Fatalf("created %d browsers, want 2", got)
	}
	if got := e.eng.call(1).settings.URL; got != "https://example.com/b" {
		t.Fatalf("recreated with URL %q", got)
	}
}

func TestSource_TeardownOrder(t *testing.T) {
	e := newEnv(t, softwareCaps())
	s := e.newSource(t)

	e.update(t, s, `{"url":"https://example.com"}`)
	e.tickAndFlush(t, s)
	s.Close()

	b := e.eng.browser(0)
	b.mu.Lock()
	defer b.mu.Unlock()
	var seq []string
	for _, op := range b.ops {
		switch op {
		case "detach", "hidden(true)", "close":
			seq = append(seq, op)
		}
	}
	if len(seq) != 3 || seq[0] != "detach" || seq[1] != "hidden(true)" || seq[2] != "close" {
		t.Fatalf("teardown order = %v", seq)
	}
}

func TestSource_ShutdownWhenHiddenLifecycle(t *testing.T) {
	e := newEnv(t, softwareCaps())
	s := e.newSource(t)

	// Hidden at update time: creation is withheld.
	e.update(t, s, `{"url":"https://example.com","shutdown":true}`)
	e.tickAndFlush(t, s)
	if got := e.eng.createCount(); got != 0 {
		t.Fatalf("hidden source created %d browsers, want 0", got)
	}

	// Showing brings it up.
	s.SetShowing(true)
	e.tickAndFlush(t, s)
	if got := e.eng.createCount(); got != 1 {
		t.Fatalf("after show created %d browsers, want 1", got)
	}
	if s.Browser() == nil {
		t.Fatal("no browser after show")
	}

	// Hiding tears it down.
	s.SetShowing(false)
	e.flush(t)
	if s.Browser() != nil {
		t.Fatal("browser survived hide")
	}
	if !e.eng.browser(0).hasOp("close") {
		t.Fatal("hidden browser was not closed")
	}

	// And showing again recreates.
	s.SetShowing(true)
	e.tickAndFlush(t, s)
	if got := e.eng.createCount(); got != 2 {
		t.Fatalf("after re-show created %d browsers total, want 2", got)
	}
}

func TestSource_SetShowingNotifies(t *testing.T) {
	e := newEnv(t, softwareCaps())
	s := e.newSource(t)

	e.update(t, s, `{"url":"https://example.com"}`)
	e.tickAndFlush(t, s)
	b := e.eng.browser(0)

	s.SetShowing(true)
	e.flush(t)
	if !s.Showing() {
		t.Fatal("Showing() = false")
	}
	if !b.hasOp("hidden(false)") || !b.hasOp("invalidate") {
		t.Fatal("show did not unhide and repaint")
	}
	if !b.hasOp("msg:" + MsgVisibility) {
		t.Fatal("no visibility message sent")
	}
	if !b.hasOp("msg:" + registry.MsgDispatchEvent) {
		t.Fatal("no visibilityChanged event dispatched")
	}

	s.SetShowing(false)
	e.flush(t)
	if !b.hasOp("hidden(true)") {
		t.Fatal("hide did not stop rendering")
	}
}

func TestSource_SetActiveNotifiesAndRestarts(t *testing.T) {
	e := newEnv(t, softwareCaps())
	s := e.newSource(t)

	e.update(t, s, `{"url":"https://example.com","restart_when_active":true}`)
	e.tickAndFlush(t, s)
	b := e.eng.browser(0)

	s.SetActive(true)
	e.flush(t)
	if !s.Active() {
		t.Fatal("Active() = false")
	}
	if !b.hasOp("msg:" + MsgActive) {
		t.Fatal("no active message sent")
	}
	if !b.hasOp("reload") {
		t.Fatal("restart-when-active source did not reload on activation")
	}

	// Deactivation never reloads.
	s.SetActive(false)
	e.flush(t)
	if got := b.opCount("reload"); got != 1 {
		t.Fatalf("reloaded %d times, want 1", got)
	}
}

func TestSource_AudioReroute(t *testing.T) {
	e := newEnv(t, softwareCaps())
	s := e.newSource(t)

	e.update(t, s, `{"url":"https://example.com","reroute_audio":true}`)
	e.tickAndFlush(t, s)

	if active, ok := e.sink.last(); !ok || !active {
		t.Fatalf("audio sink state = (%v, %v), want active", active, ok)
	}
	if !e.eng.browser(0).hasOp("mute(true)") {
		t.Fatal("rerouted browser was not muted engine-side")
	}
}

func TestSource_SharedTextureCreation(t *testing.T) {
	e := newEnv(t, fullCaps())
	s := e.newSource(t)

	e.update(t, s, `{"url":"https://example.com","fps":60}`)
	e.tickAndFlush(t, s)

	call := e.eng.call(0)
	if !call.info.SharedTexture {
		t.Fatal("hardware path not requested")
	}
	if !call.info.ExternalBeginFrame {
		t.Fatal("external begin-frame not requested")
	}
	if call.settings.FrameRate != 0 {
		t.Fatalf("frame rate %d with external begin-frame, want 0", call.settings.FrameRate)
	}
}

func TestSource_RenderSignalsBeginFrame(t *testing.T) {
	e := newEnv(t, fullCaps())
	s := e.newSource(t)

	e.update(t, s, `{"url":"https://example.com"}`)
	e.tickAndFlush(t, s)
	b := e.eng.browser(0)

	s.Render()
	e.flush(t)
	if got := b.opCount("beginFrame"); got != 1 {
		t.Fatalf("begin-frame signaled %d times, want 1", got)
	}

	// Signal is one-shot until the next tick re-arms it.
	s.Render()
	e.flush(t)
	if got := b.opCount("beginFrame"); got != 1 {
		t.Fatalf("disarmed render signaled again: %d", got)
	}

	e.tickAndFlush(t, s)
	s.Render()
	e.flush(t)
	if got := b.opCount("beginFrame"); got != 2 {
		t.Fatalf("re-armed render signaled %d times total, want 2", got)
	}
}

func TestSource_LocalFileCreation(t *testing.T) {
	e := newEnv(t, softwareCaps())
	s := e.newSource(t)

	e.update(t, s, `{"is_local_file":true,"local_file":"C:\\clip.webm"}`)
	e.tickAndFlush(t, s)

	call := e.eng.call(0)
	if call.settings.URL != "file:///C:/clip.webm" {
		t.Fatalf("local file URL = %q", call.settings.URL)
	}
	if !call.settings.DisableWebSecurity {
		t.Fatal("local file content created with web security on")
	}
}

func TestSource_CloseIdempotent(t *testing.T) {
	e := newEnv(t, softwareCaps())
	s := e.newSource(t)

	e.update(t, s, `{"url":"https://example.com"}`)
	e.tickAndFlush(t, s)

	s.Close()
	s.Close()

	if e.reg.Len() != 0 {
		t.Fatalf("registry still has %d members", e.reg.Len())
	}
	if got := e.eng.browser(0).opCount("close"); got != 1 {
		t.Fatalf("browser closed %d times, want 1", got)
	}

	// Post-close operations are inert.
	s.Refresh()
	s.SendFocus(true)
	e.flush(t)
	if e.eng.browser(0).hasOp("reload") || e.eng.browser(0).hasOp("focus(true)") {
		t.Fatal("closed source still reached the browser")
	}
}

func TestSource_FrameOwnership(t *testing.T) {
	e := newEnv(t, softwareCaps())
	s := e.newSource(t)

	released := 0
	f1 := webrender.NewFrame(2, 2, nil, func() { released++ })
	f2 := webrender.NewFrame(2, 2, nil, func() { released++ })

	s.SetFrame(f1)
	if s.Frame() != f1 {
		t.Fatal("Frame() did not return the installed frame")
	}
	s.SetFrame(f2)
	if released != 1 {
		t.Fatalf("replaced frame released %d times, want 1", released)
	}
	s.Close()
	if released != 2 {
		t.Fatalf("close released %d frames total, want 2", released)
	}
	if s.Frame() != nil {
		t.Fatal("Frame() non-nil after close")
	}
}

type fakeAudioStream struct{ closed int }

func (a *fakeAudioStream) Close() { a.closed++ }

func TestSource_AudioStreams(t *testing.T) {
	e := newEnv(t, softwareCaps())
	s := e.newSource(t)

	a := &fakeAudioStream{}
	b := &fakeAudioStream{}
	s.AttachAudioStream("one", a)
	s.AttachAudioStream("two", b)
	if got := s.AudioStreamCount(); got != 2 {
		t.Fatalf("AudioStreamCount() = %d, want 2", got)
	}

	// Attaching under an existing ID closes the displaced stream.
	c := &fakeAudioStream{}
	s.AttachAudioStream("one", c)
	if a.closed != 1 {
		t.Fatal("displaced stream not closed")
	}
	if got := s.AudioStreamCount(); got != 2 {
		t.Fatalf("AudioStreamCount() = %d after displace, want 2", got)
	}

	s.DetachAudioStream("two")
	if b.closed != 1 {
		t.Fatal("detached stream not closed")
	}

	s.Close()
	if c.closed != 1 {
		t.Fatal("close did not release remaining streams")
	}
	if got := s.AudioStreamCount(); got != 0 {
		t.Fatalf("AudioStreamCount() = %d after close, want 0", got)
	}
}
