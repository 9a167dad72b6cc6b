// Package notify delivers alert-match notifications to members. Bursts of
// matches for the same member are coalesced so a single new listing hitting
// several of their alerts produces one notification.
package notify

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/offmarket/listing-api/pkg/debounce"
)

// DebouncedNotifier batches match notifications per owner. Delivery is a
// structured log line; an email or push channel would hang off flush.
type DebouncedNotifier struct {
	group *debounce.Group
	log   zerolog.Logger

	mu      sync.Mutex
	pending map[string][]string
}

func NewDebouncedNotifier(group *debounce.Group, log zerolog.Logger) *DebouncedNotifier {
	return &DebouncedNotifier{
		group:   group,
		log:     log,
		pending: make(map[string][]string),
	}
}

// Notify records a match for the owner and schedules a coalesced delivery.
func (n *DebouncedNotifier) Notify(ownerID, propertyID string) {
	n.mu.Lock()
	n.pending[ownerID] = append(n.pending[ownerID], propertyID)
	n.mu.Unlock()

	n.group.Trigger(ownerID, func() { n.flush(ownerID) })
}

func (n *DebouncedNotifier) flush(ownerID string) {
	n.mu.Lock()
	properties := n.pending[ownerID]
	delete(n.pending, ownerID)
	n.mu.Unlock()

	if len(properties) == 0 {
		return
	}
	n.log.Info().
		Str("owner_id", ownerID).
		Strs("property_ids", properties).
		Int("matches", len(properties)).
		Msg("alert match notification")
}

// Stop cancels pending deliveries.
func (n *DebouncedNotifier) Stop() {
	n.group.Stop()
}
