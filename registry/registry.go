package registry

import (
	"sync"

	"github.com/vidpipe/webrender/dispatch"
)

// Handle is a stable slot reference for a registered member. Handle 0 is
// reserved and always invalid.
type Handle uint32

// Member is a registered render source. PostAsync submits a closure
// against the member's current browser handle on the engine loop,
// silently skipping members with no handle.
type Member interface {
	PostAsync(fn dispatch.BrowserFunc)
}

type entry struct {
	member Member
	valid  bool
}

// Registry is a slot arena of live members with a free list, giving
// O(1) add/remove without scanning.
type Registry struct {
	mu       sync.Mutex
	entries  []entry
	freeList []Handle
	count    int
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		entries:  make([]entry, 0, 16),
		freeList: make([]Handle, 0, 8),
	}
}

// Add registers m and returns its slot handle.
func (r *Registry) Add(m Member) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.count++
	e := entry{member: m, valid: true}
	if n := len(r.freeList); n > 0 {
		h := r.freeList[n-1]
		r.freeList = r.freeList[:n-1]
		r.entries[h-1] = e
		return h
	}
	r.entries = append(r.entries, e)
	return Handle(len(r.entries))
}

// Remove unregisters the member at h. Invalid or already-removed handles
// are ignored.
func (r *Registry) Remove(h Handle) {
	if h == 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := int(h) - 1
	if idx >= len(r.entries) || !r.entries[idx].valid {
		return
	}
	r.entries[idx] = entry{}
	r.freeList = append(r.freeList, h)
	r.count--
}

// Len returns the number of live members.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Each calls fn for every live member under the registry lock. fn must
// not block and must not call back into the registry.
func (r *Registry) Each(fn func(Member)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if e.valid {
			fn(e.member)
		}
	}
}
