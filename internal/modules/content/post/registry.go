package post

import (
	"sync"
	"time"
)

const registryIdleTTL = 2 * time.Hour

type registryEntry struct {
	ctrl     *Controller
	token    string
	lastUsed time.Time
}

// Registry keeps one list controller per browser session.
type Registry struct {
	factory func(token string) *Controller
	now     func() time.Time

	mu      sync.Mutex
	entries map[string]*registryEntry
}

// NewRegistry builds controllers with factory, which receives the session's
// access token.
func NewRegistry(factory func(token string) *Controller) *Registry {
	return &Registry{factory: factory, now: time.Now, entries: make(map[string]*registryEntry)}
}

// Get returns the session's controller, replacing it when the token changed.
func (r *Registry) Get(sid, token string) *Controller {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if e, ok := r.entries[sid]; ok {
		if e.token == token {
			e.lastUsed = now
			return e.ctrl
		}
		e.ctrl.Close()
	}
	e := &registryEntry{ctrl: r.factory(token), token: token, lastUsed: now}
	r.entries[sid] = e
	return e.ctrl
}

// Drop closes and forgets the session's controller.
func (r *Registry) Drop(sid string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[sid]; ok {
		e.ctrl.Close()
		delete(r.entries, sid)
	}
}

// Sweep closes controllers of sessions idle for longer than the idle TTL and
// returns how many were evicted.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	evicted := 0
	for k, e := range r.entries {
		if now.Sub(e.lastUsed) > registryIdleTTL {
			e.ctrl.Close()
			delete(r.entries, k)
			evicted++
		}
	}
	return evicted
}

// Len reports how many sessions hold a controller.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
