package ports

import (
	"context"

	"github.com/offmarket/listing-api/internal/core/domain"
)

// AlertRepository persists property alerts and their match records.
type AlertRepository interface {
	Insert(ctx context.Context, alert *domain.PropertyAlert) error
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.PropertyAlert, error)
	// ListActive returns every active alert across all owners, for matching
	// newly created listings.
	ListActive(ctx context.Context) ([]*domain.PropertyAlert, error)
	// Delete removes the alert only when it belongs to ownerID.
	Delete(ctx context.Context, id, ownerID string) error
	InsertMatch(ctx context.Context, match *domain.AlertMatch) error
}
