// Package debounce provides a keyed trailing-edge debouncer: repeated
// triggers for the same key within the wait window collapse into a single
// callback invocation after the window elapses.
package debounce

import (
	"sync"
	"time"
)

// Group debounces function calls per key. The zero value is not usable;
// construct with NewGroup.
type Group struct {
	wait time.Duration

	mu      sync.Mutex
	timers  map[string]*time.Timer
	stopped bool
}

// NewGroup returns a Group with the given wait window.
func NewGroup(wait time.Duration) *Group {
	return &Group{
		wait:   wait,
		timers: make(map[string]*time.Timer),
	}
}

// Trigger schedules fn to run once the key has been quiet for the wait
// window. A trigger for a key with a pending timer resets that timer and
// replaces its callback. Calls after Stop are no-ops.
func (g *Group) Trigger(key string, fn func()) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.stopped {
		return
	}
	if t, ok := g.timers[key]; ok {
		t.Stop()
	}
	g.timers[key] = time.AfterFunc(g.wait, func() {
		g.mu.Lock()
		delete(g.timers, key)
		stopped := g.stopped
		g.mu.Unlock()

		if !stopped {
			fn()
		}
	})
}

// Stop cancels all pending timers. Pending callbacks are dropped, not
// flushed.
func (g *Group) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.stopped = true
	for key, t := range g.timers {
		t.Stop()
		delete(g.timers, key)
	}
}
