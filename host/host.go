package host

import (
	"context"
	"runtime"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/vidpipe/webrender"
	"github.com/vidpipe/webrender/config"
	"github.com/vidpipe/webrender/dispatch"
	"github.com/vidpipe/webrender/errors"
	"github.com/vidpipe/webrender/registry"
	"github.com/vidpipe/webrender/source"
)

// Host composes an engine, the engine loop, the registry and optional
// settings persistence. Safe for concurrent use.
type Host struct {
	engine   webrender.Engine
	loop     *dispatch.Loop
	reg      *registry.Registry
	store    *config.Store
	graphics webrender.Graphics
	audio    webrender.AudioSink
	log      *zap.Logger

	queueSize    int
	windowsPaths bool

	cancel context.CancelFunc

	mu      sync.Mutex
	sources map[string]*source.Source
	closed  bool
}

// Option configures a Host.
type Option func(*Host)

// WithLogger installs the logger used by the host and its sources.
func WithLogger(log *zap.Logger) Option {
	return func(h *Host) { h.log = log }
}

// WithStore enables settings persistence.
func WithStore(store *config.Store) Option {
	return func(h *Host) { h.store = store }
}

// WithGraphics provides the pipeline graphics context for shared-texture
// negotiation.
func WithGraphics(g webrender.Graphics) Option {
	return func(h *Host) { h.graphics = g }
}

// WithAudioSink provides the pipeline audio sink that receives per-source
// reroute state.
func WithAudioSink(a webrender.AudioSink) Option {
	return func(h *Host) { h.audio = a }
}

// WithQueueSize overrides the engine loop's task buffer size.
func WithQueueSize(n int) Option {
	return func(h *Host) { h.queueSize = n }
}

// WithWindowsPathStyle forces drive-letter file URI normalization
// regardless of the build platform.
func WithWindowsPathStyle(on bool) Option {
	return func(h *Host) { h.windowsPaths = on }
}

// New creates a host around an engine and starts the engine loop
// goroutine.
func New(engine webrender.Engine, opts ...Option) (*Host, error) {
	if engine == nil {
		return nil, errors.NotReady(errors.PhaseHost, "engine")
	}
	h := &Host{
		engine:       engine,
		reg:          registry.New(),
		sources:      make(map[string]*source.Source),
		windowsPaths: runtime.GOOS == "windows",
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.log == nil {
		h.log = zap.NewNop()
	}
	dispatch.SetLogger(h.log.Named("dispatch"))

	h.loop = dispatch.NewLoop(h.queueSize)
	ctx, cancel := context.WithCancel(context.Background())
	h.cancel = cancel
	go h.loop.Run(ctx)

	h.log.Info("webrender host started",
		zap.Bool("file_url_scheme", engine.Capabilities().FileURLScheme),
		zap.Bool("shared_textures", engine.Capabilities().SharedTextures))
	return h, nil
}

// Loop exposes the engine loop for callers that submit their own tasks.
func (h *Host) Loop() *dispatch.Loop {
	return h.loop
}

// Registry exposes the live-source registry.
func (h *Host) Registry() *registry.Registry {
	return h.reg
}

// CreateSource builds a render source and applies its initial settings.
// A nil settings document leaves the source idle until the first update.
func (h *Host) CreateSource(settings *config.Settings) (*source.Source, error) {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil, errors.NotReady(errors.PhaseHost, "host")
	}
	h.mu.Unlock()

	src, err := source.New(source.Deps{
		Engine:           h.engine,
		Loop:             h.loop,
		Registry:         h.reg,
		Graphics:         h.graphics,
		Audio:            h.audio,
		Logger:           h.log,
		WindowsPathStyle: h.windowsPaths,
	})
	if err != nil {
		return nil, err
	}
	if settings != nil {
		src.Update(settings)
		if h.store != nil {
			if err := h.store.Save(src.ID(), *settings); err != nil {
				h.log.Warn("persist source settings", zap.Error(err))
			}
		}
	}

	h.mu.Lock()
	h.sources[src.ID()] = src
	h.mu.Unlock()
	return src, nil
}

// UpdateSource applies new settings to a live source and persists them.
func (h *Host) UpdateSource(src *source.Source, settings config.Settings) {
	src.Update(&settings)
	if h.store != nil {
		if err := h.store.Save(src.ID(), settings); err != nil {
			h.log.Warn("persist source settings", zap.Error(err))
		}
	}
}

// RemoveSource destroys a source and removes its persisted settings.
func (h *Host) RemoveSource(src *source.Source) error {
	h.mu.Lock()
	delete(h.sources, src.ID())
	h.mu.Unlock()

	src.Close()
	if h.store != nil {
		return h.store.Delete(src.ID())
	}
	return nil
}

// RestoreSources recreates one source per stored settings document.
func (h *Host) RestoreSources() ([]*source.Source, error) {
	if h.store == nil {
		return nil, nil
	}
	stored, err := h.store.All()
	if err != nil {
		return nil, err
	}
	out := make([]*source.Source, 0, len(stored))
	for id, settings := range stored {
		src, err := h.CreateSource(&settings)
		if err != nil {
			return out, err
		}
		h.log.Info("restored source", zap.String("stored_id", id), zap.String("source", src.ID()))
		out = append(out, src)
	}
	return out, nil
}

// Sources returns the live sources in unspecified order.
func (h *Host) Sources() []*source.Source {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]*source.Source, 0, len(h.sources))
	for _, s := range h.sources {
		out = append(out, s)
	}
	return out
}

// TickAll runs one pipeline tick across every live source.
func (h *Host) TickAll() {
	for _, s := range h.Sources() {
		s.Tick()
	}
}

// DispatchEvent sends a named event with a JSON payload to one source,
// or to all when target is nil.
func (h *Host) DispatchEvent(name string, payload []byte, target *source.Source) {
	if target != nil {
		h.reg.DispatchEvent(name, payload, target)
		return
	}
	h.reg.DispatchEvent(name, payload, nil)
}

// Close destroys every source, stops the engine loop and closes the
// settings store. Idempotent.
func (h *Host) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	sources := make([]*source.Source, 0, len(h.sources))
	for _, s := range h.sources {
		sources = append(sources, s)
	}
	h.sources = make(map[string]*source.Source)
	h.mu.Unlock()

	// Sources need the loop for synchronous teardown; close them first.
	for _, s := range sources {
		s.Close()
	}

	h.loop.Close()
	h.cancel()
	<-h.loop.Done()

	var err error
	if h.store != nil {
		err = multierr.Append(err, h.store.Close())
	}
	h.log.Info("webrender host stopped")
	return err
}
