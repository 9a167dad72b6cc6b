package ports

import (
	"context"

	"github.com/offmarket/listing-api/internal/core/domain"
)

// PropertyStore owns the authoritative in-process property collection and
// mirrors it to a durable key-value slot on every mutation. Read methods
// return copies; missing ids yield domain.ErrPropertyNotFound, never a panic.
type PropertyStore interface {
	// All returns a snapshot of the collection in insertion order
	// (newest first).
	All() []domain.Property
	Get(id string) (domain.Property, error)
	// Create assigns a fresh id, zeroes the view/inquiry counters, and
	// prepends the property to the collection.
	Create(ctx context.Context, p domain.Property) (domain.Property, error)
	// Update merges the patch onto the stored record field by field; the
	// merged result is validated before it replaces the original.
	Update(ctx context.Context, id string, patch domain.PropertyPatch) (domain.Property, error)
	Delete(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) (int64, error)
	IncrementInquiries(ctx context.Context, id string) (int64, error)
}
