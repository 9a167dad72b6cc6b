package ports

import (
	"context"
	"time"

	"github.com/offmarket/listing-api/internal/core/domain"
)

// UserRepository covers the authentication reads and writes against the
// profiles table.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// ProfileFilter carries the admin table's equality filters and ordering.
type ProfileFilter struct {
	Role     string // optional: "member" or "admin"
	IsActive *bool  // optional
	OrderBy  string // column name understood by the repository; empty = created_at
	Desc     bool
}

// ProfilePatch is a partial profile update applied by the back office.
type ProfilePatch struct {
	Username           *string
	Role               *string
	SubscriptionType   *string
	SubscriptionExpiry *time.Time
	IsActive           *bool
}

// ProfileRepository is the admin-facing surface over the same profiles table.
type ProfileRepository interface {
	List(ctx context.Context, filter ProfileFilter) ([]*domain.User, error)
	Update(ctx context.Context, id string, patch ProfilePatch) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
