package main

import (
	"fmt"
	"sync"

	"github.com/coreos/go-semver/semver"

	"github.com/vidpipe/webrender"
)

// opLog collects engine operations so batch and interactive modes can
// show what the pipeline did to the engine.
type opLog struct {
	mu  sync.Mutex
	ops []string
}

func (l *opLog) add(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ops = append(l.ops, fmt.Sprintf(format, args...))
}

func (l *opLog) snapshot() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.ops...)
}

// stubEngine is a recording engine implementation used by the CLI. It
// creates stubBrowser handles that log every call.
type stubEngine struct {
	log     *opLog
	caps    webrender.Capabilities
	mu      sync.Mutex
	created int
}

func newStubEngine(version string, sharedTextures bool) *stubEngine {
	return &stubEngine{
		log: &opLog{},
		caps: webrender.Capabilities{
			Version:        semver.New(version),
			SharedTextures: sharedTextures,
			FileURLScheme:  true,
			AudioRerouting: true,
		},
	}
}

func (e *stubEngine) Capabilities() webrender.Capabilities {
	return e.caps
}

func (e *stubEngine) CreateSync(info webrender.WindowInfo, settings webrender.BrowserSettings) (webrender.Browser, error) {
	e.mu.Lock()
	e.created++
	id := e.created
	e.mu.Unlock()
	e.log.add("create browser #%d %dx%d fps=%d url=%s", id, info.Width, info.Height, settings.FrameRate, settings.URL)
	return &stubBrowser{id: id, log: e.log}, nil
}

type stubBrowser struct {
	id  int
	log *opLog
}

func (b *stubBrowser) Close()        { b.log.add("browser #%d: close", b.id) }
func (b *stubBrowser) DetachClient() { b.log.add("browser #%d: detach client", b.id) }

func (b *stubBrowser) SendProcessMessage(_ webrender.ProcessTarget, msg webrender.ProcessMessage) {
	b.log.add("browser #%d: message %s %v", b.id, msg.Name, msg.Args)
}

func (b *stubBrowser) WasHidden(hidden bool) { b.log.add("browser #%d: hidden=%v", b.id, hidden) }
func (b *stubBrowser) Invalidate()           { b.log.add("browser #%d: invalidate", b.id) }
func (b *stubBrowser) SendExternalBeginFrame() {
	b.log.add("browser #%d: begin frame", b.id)
}
func (b *stubBrowser) ReloadIgnoreCache() { b.log.add("browser #%d: reload", b.id) }
func (b *stubBrowser) SetAudioMuted(mute bool) {
	b.log.add("browser #%d: audio muted=%v", b.id, mute)
}

func (b *stubBrowser) SendMouseClick(ev webrender.MouseEvent, button webrender.MouseButton, up bool, clicks int) {
	b.log.add("browser #%d: mouse click btn=%d up=%v at %d,%d", b.id, button, up, ev.X, ev.Y)
}

func (b *stubBrowser) SendMouseMove(ev webrender.MouseEvent, leave bool) {
	b.log.add("browser #%d: mouse move %d,%d leave=%v", b.id, ev.X, ev.Y, leave)
}

func (b *stubBrowser) SendMouseWheel(ev webrender.MouseEvent, dx, dy int) {
	b.log.add("browser #%d: mouse wheel %d,%d", b.id, dx, dy)
}

func (b *stubBrowser) SendKeyEvent(ev webrender.KeyEvent) {
	b.log.add("browser #%d: key type=%d code=0x%02X char=%q", b.id, ev.Type, ev.WindowsKeyCode, ev.Character)
}

func (b *stubBrowser) SendFocus(focus bool) {
	b.log.add("browser #%d: focus=%v", b.id, focus)
}
