package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrSubscriptionExpired = errors.New("subscription expired")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")

// User models a member or back-office admin. Contact details on listings are
// gated behind an active subscription.
type User struct {
	ID                 string    `json:"id"`
	Username           string    `json:"username"`
	Email              string    `json:"email"`
	PasswordHash       string    `json:"-"`
	Role               string    `json:"role"`
	SubscriptionType   string    `json:"subscription_type,omitempty"`
	SubscriptionExpiry time.Time `json:"subscription_expiry"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// SubscriptionActive reports whether the user's subscription is valid at the
// given instant. A session counts as authenticated only while the expiry is
// strictly in the future. Admins are not subscription-bound.
func (u *User) SubscriptionActive(at time.Time) bool {
	if u.Role == RoleAdmin {
		return true
	}
	return u.SubscriptionExpiry.After(at)
}
