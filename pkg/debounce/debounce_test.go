package debounce

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestTriggerCoalescesBursts(t *testing.T) {
	g := NewGroup(30 * time.Millisecond)
	defer g.Stop()

	var calls int64
	for i := 0; i < 5; i++ {
		g.Trigger("owner-1", func() { atomic.AddInt64(&calls, 1) })
	}

	time.Sleep(100 * time.Millisecond)
	if got := atomic.LoadInt64(&calls); got != 1 {
		t.Fatalf("expected 1 call after burst, got %d", got)
	}
}

func TestTriggerKeysAreIndependent(t *testing.T) {
	g := NewGroup(20 * time.Millisecond)
	defer g.Stop()

	var calls int64
	g.Trigger("a", func() { atomic.AddInt64(&calls, 1) })
	g.Trigger("b", func() { atomic.AddInt64(&calls, 1) })

	time.Sleep(80 * time.Millisecond)
	if got := atomic.LoadInt64(&calls); got != 2 {
		t.Fatalf("expected 2 calls for distinct keys, got %d", got)
	}
}

func TestStopDropsPending(t *testing.T) {
	g := NewGroup(30 * time.Millisecond)

	var calls int64
	g.Trigger("a", func() { atomic.AddInt64(&calls, 1) })
	g.Stop()

	time.Sleep(80 * time.Millisecond)
	if got := atomic.LoadInt64(&calls); got != 0 {
		t.Fatalf("expected pending callback to be dropped, got %d calls", got)
	}

	// Triggers after Stop are ignored.
	g.Trigger("a", func() { atomic.AddInt64(&calls, 1) })
	time.Sleep(80 * time.Millisecond)
	if got := atomic.LoadInt64(&calls); got != 0 {
		t.Fatalf("expected trigger after Stop to be ignored, got %d calls", got)
	}
}
