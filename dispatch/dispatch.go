package dispatch

import (
	"context"

	"github.com/vidpipe/webrender"
)

// BrowserFunc is a closure run against a live browser handle on the
// engine loop.
type BrowserFunc func(b webrender.Browser)

// Target is the nullable engine-handle slot of a render source. Browser
// may return nil at any time; teardown nulls the slot before the browser
// is closed, so already-captured references stay usable while new
// submissions see nil.
type Target interface {
	Browser() webrender.Browser
}

// RunSync executes fn against t's browser on the engine loop and waits
// for completion. Called from the loop goroutine itself it runs fn
// inline, so self-submission never deadlocks. The handle is re-checked
// at execution time; if it is nil, or the submission is rejected because
// the loop is shutting down, RunSync returns without running fn.
//
// Callers must not hold locks that loop tasks also take.
func RunSync(ctx context.Context, l *Loop, t Target, fn BrowserFunc) {
	if OnLoop(ctx, l) {
		if b := t.Browser(); b != nil {
			fn(b)
		}
		return
	}

	done := make(chan struct{})
	ok := l.Submit(func(context.Context) {
		defer close(done)
		if b := t.Browser(); b != nil {
			fn(b)
		}
	})
	if !ok {
		return
	}
	select {
	case <-done:
	case <-l.closed:
		// Loop shut down before the task ran; it never will.
	}
}

// RunAsync captures t's current browser handle and enqueues fn against
// it, returning immediately. With no handle at capture time the call is
// a silent no-op. Submissions from one goroutine execute in submission
// order; no ordering holds across goroutines.
func RunAsync(l *Loop, t Target, fn BrowserFunc) {
	b := t.Browser()
	if b == nil {
		return
	}
	l.Submit(func(context.Context) { fn(b) })
}
