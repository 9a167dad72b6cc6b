package notify

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/offmarket/listing-api/pkg/debounce"
)

func TestNotifyCoalescesPerOwner(t *testing.T) {
	n := NewDebouncedNotifier(debounce.NewGroup(20*time.Millisecond), zerolog.Nop())
	defer n.Stop()

	n.Notify("owner-1", "prop-1")
	n.Notify("owner-1", "prop-2")
	n.Notify("owner-2", "prop-1")

	time.Sleep(80 * time.Millisecond)

	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.pending) != 0 {
		t.Fatalf("expected pending map to be drained, got %v", n.pending)
	}
}

func TestStopDropsPendingDeliveries(t *testing.T) {
	n := NewDebouncedNotifier(debounce.NewGroup(50*time.Millisecond), zerolog.Nop())

	n.Notify("owner-1", "prop-1")
	n.Stop()

	time.Sleep(100 * time.Millisecond)

	n.mu.Lock()
	defer n.mu.Unlock()
	if got := len(n.pending["owner-1"]); got != 1 {
		t.Fatalf("expected pending matches to remain after Stop, got %d", got)
	}
}
