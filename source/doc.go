// Package source implements the full lifecycle of one embedded web
// render source: configuration updates, browser creation and teardown,
// visibility and activity transitions, input injection, and the frame
// and audio state shared with the host pipeline.
//
// A source moves between four states: idle (no browser), creating
// (creation task submitted), active (browser live on the engine loop)
// and destroying (teardown task submitted). Every engine interaction is
// routed through the dispatch package; the browser handle slot is nulled
// before teardown is submitted, so tasks already holding a captured
// reference finish against it while new submissions see no handle.
package source
