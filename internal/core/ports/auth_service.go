package ports

import (
	"context"

	"github.com/offmarket/listing-api/internal/core/domain"
)

// AuthService implements registration, login, and session restore. Login and
// CurrentUser both reject members whose subscription expiry is not strictly
// in the future.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// CurrentUser restores a session from a token's subject id, re-checking
	// the subscription expiry against the current time.
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
}
