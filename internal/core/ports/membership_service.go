package ports

import (
	"context"

	"github.com/offmarket/listing-api/internal/core/domain"
)

// SubmitApplicationInput is a become-a-member form submission.
type SubmitApplicationInput struct {
	FullName    string
	Email       string
	Phone       string
	Budget      int64
	SearchNotes string
}

// MembershipService handles the public application form and admin review.
type MembershipService interface {
	Submit(ctx context.Context, input SubmitApplicationInput) (*domain.MembershipApplication, error)
	List(ctx context.Context, filter ApplicationFilter) ([]*domain.MembershipApplication, error)
	// Review approves or rejects a pending application.
	Review(ctx context.Context, id string, status domain.ApplicationStatus, notes string) (*domain.MembershipApplication, error)
	Delete(ctx context.Context, id string) error
}

// ProfileService is the back-office surface over member accounts.
type ProfileService interface {
	List(ctx context.Context, filter ProfileFilter) ([]*domain.User, error)
	Update(ctx context.Context, id string, patch ProfilePatch) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
