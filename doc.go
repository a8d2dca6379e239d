// Package webrender hosts embedded web render instances inside a video
// production pipeline.
//
// The rendering engine itself is an external component: it is driven through
// the opaque Engine and Browser interfaces defined here, and every Browser
// object may only be touched from one dedicated goroutine (the engine loop).
// This library provides the machinery around that constraint.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	webrender/         Root package with engine/host interfaces and the event model
//	├── dispatch/      Engine loop and cross-goroutine task submission
//	├── registry/      Process-wide registry of live sources, broadcast dispatch
//	├── source/        Render source lifecycle: update, tick, visibility, input
//	├── keycode/       Virtual-key codes and the X11 keysym translation table
//	├── config/        Typed settings documents and persistent settings storage
//	├── host/          Composition root wiring loop, registry, engine and store
//	└── errors/        Structured error types for the non-silent surfaces
//
// # Quick Start
//
// Create a host around an engine implementation and add a source:
//
//	h, err := host.New(eng, host.WithLogger(logger))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer h.Close()
//
//	src, err := h.CreateSource(settings)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer src.Close()
//
//	for range pipelineTicks {
//	    src.Tick()
//	}
//
// # Threading Model
//
// Browser objects are owned by the engine loop goroutine. Sources never
// dereference a Browser directly from pipeline goroutines; all engine
// interaction goes through dispatch.RunSync and dispatch.RunAsync, which
// re-check handle validity so that a source whose browser has been torn
// down degrades to a silent no-op rather than an error.
//
// Host, registry and source methods are safe to call from any goroutine.
package webrender
