package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/offmarket/listing-api/internal/core/domain"
	"github.com/offmarket/listing-api/internal/core/ports"
)

// trialSubscription is granted to self-registered members until an admin
// upgrades the profile.
const trialSubscription = 30 * 24 * time.Hour

// AuthService implements registration, login, and session restore.
type AuthService struct {
	repo      ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	now       func() time.Time
}

func NewAuthService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, now: time.Now}
}

func (s *AuthService) Register(ctx context.Context, username, email, password string) (*domain.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	user := &domain.User{
		Username:           username,
		Email:              email,
		PasswordHash:       string(hash),
		Role:               domain.RoleMember,
		SubscriptionType:   "trial",
		SubscriptionExpiry: now.Add(trialSubscription),
		IsActive:           true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	return s.repo.Create(ctx, user)
}

// Login authenticates by email and password. Members with a lapsed
// subscription or a deactivated account are rejected even when the password
// is correct.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	now := s.now().UTC()
	if !user.IsActive {
		return "", nil, domain.ErrInvalidCredentials
	}
	if !user.SubscriptionActive(now) {
		return "", nil, domain.ErrSubscriptionExpired
	}

	token, err := s.generateToken(user, now)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// CurrentUser restores a session, re-checking the subscription expiry so a
// token issued before a lapse stops working at the next restore.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.SubscriptionActive(s.now().UTC()) {
		return nil, domain.ErrSubscriptionExpired
	}
	return user, nil
}

// generateToken issues an HS256 JWT. A member token never outlives the
// subscription: exp is the earlier of now+TTL and the subscription expiry.
func (s *AuthService) generateToken(user *domain.User, now time.Time) (string, error) {
	exp := now.Add(s.tokenTTL)
	if user.Role != domain.RoleAdmin && user.SubscriptionExpiry.Before(exp) {
		exp = user.SubscriptionExpiry
	}

	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  user.Role,
		"exp":   exp.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
