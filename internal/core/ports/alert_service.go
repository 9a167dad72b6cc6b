package ports

import (
	"context"

	"github.com/offmarket/listing-api/internal/core/domain"
)

// CreateAlertInput carries a member's saved-search submission.
type CreateAlertInput struct {
	OwnerID  string
	Label    string
	Criteria domain.AlertCriteria
}

// AlertService manages members' standing searches and matches new listings
// against them.
type AlertService interface {
	Create(ctx context.Context, input CreateAlertInput) (*domain.PropertyAlert, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.PropertyAlert, error)
	Delete(ctx context.Context, id, ownerID string) error
	// Match evaluates every active alert against the property and records a
	// match row per hit. Returns the number of alerts matched.
	Match(ctx context.Context, p domain.Property) (int, error)
}
