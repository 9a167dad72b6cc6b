package ports

import (
	"context"

	"github.com/offmarket/listing-api/internal/core/domain"
)

// ApplicationFilter carries the admin table's filters and ordering for
// membership applications.
type ApplicationFilter struct {
	Status  domain.ApplicationStatus // optional
	OrderBy string                   // empty = submitted_at
	Desc    bool
}

// ApplicationRepository persists membership applications.
type ApplicationRepository interface {
	Insert(ctx context.Context, app *domain.MembershipApplication) error
	FindByID(ctx context.Context, id string) (*domain.MembershipApplication, error)
	List(ctx context.Context, filter ApplicationFilter) ([]*domain.MembershipApplication, error)
	Update(ctx context.Context, app *domain.MembershipApplication) error
	Delete(ctx context.Context, id string) error
}
