package dispatch

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// DefaultQueueSize is the task buffer used when NewLoop is given a
// non-positive size.
const DefaultQueueSize = 256

// Task is a unit of work executed on the engine loop goroutine. The
// context passed to it is marked as on-loop, so nested RunSync calls
// execute inline instead of deadlocking.
type Task func(ctx context.Context)

// Loop is a single-consumer task queue pumped by one goroutine. That
// goroutine is the engine loop: the only place Browser objects may be
// touched.
type Loop struct {
	tasks    chan Task
	closed   chan struct{}
	finished chan struct{}
	once     sync.Once
}

// NewLoop creates a loop with the given task buffer size. The loop does
// not process tasks until Run is called.
func NewLoop(queueSize int) *Loop {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &Loop{
		tasks:    make(chan Task, queueSize),
		closed:   make(chan struct{}),
		finished: make(chan struct{}),
	}
}

type loopKey struct{}

// OnLoop reports whether the calling goroutine is executing a task on l.
// Task contexts carry the marker; contexts from pipeline goroutines do not.
func OnLoop(ctx context.Context, l *Loop) bool {
	got, _ := ctx.Value(loopKey{}).(*Loop)
	return got == l
}

// Run pumps the loop until ctx is cancelled or Close is called. It must
// be called at most once, from the goroutine that is to own the engine.
func (l *Loop) Run(ctx context.Context) {
	defer close(l.finished)
	ctx = context.WithValue(ctx, loopKey{}, l)
	for {
		select {
		case <-l.closed:
			return
		case <-ctx.Done():
			return
		case fn := <-l.tasks:
			fn(ctx)
		}
	}
}

// Submit enqueues fn for execution on the loop goroutine. It never
// blocks: false is returned when the loop is shutting down or the queue
// is full, and fn will not run.
func (l *Loop) Submit(fn Task) bool {
	if fn == nil {
		return false
	}
	select {
	case <-l.closed:
		return false
	default:
	}
	select {
	case l.tasks <- fn:
		return true
	case <-l.closed:
		return false
	default:
		logger().Warn("engine loop queue full, task dropped")
		return false
	}
}

// Close stops the loop. Queued tasks that have not started are discarded.
// Idempotent.
func (l *Loop) Close() {
	l.once.Do(func() { close(l.closed) })
}

// Done is closed when Run has returned.
func (l *Loop) Done() <-chan struct{} {
	return l.finished
}

var (
	loggerMu  sync.RWMutex
	loopLog   *zap.Logger
	loggerSet bool
)

// SetLogger installs the logger used for loop diagnostics. A nop logger
// is used until one is set.
func SetLogger(log *zap.Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	loopLog = log
	loggerSet = log != nil
}

func logger() *zap.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	if !loggerSet {
		return zap.NewNop()
	}
	return loopLog
}
