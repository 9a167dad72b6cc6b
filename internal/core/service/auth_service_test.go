package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/offmarket/listing-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub user repository
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byEmail map[string]*domain.User
	byID    map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byEmail: make(map[string]*domain.User),
		byID:    make(map[string]*domain.User),
	}
}

func (r *stubUserRepo) add(u *domain.User) {
	r.byEmail[u.Email] = u
	r.byID[u.ID] = u
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	if _, exists := r.byEmail[u.Email]; exists {
		return nil, domain.ErrUserExists
	}
	clone := *u
	clone.ID = "user-" + u.Email
	r.add(&clone)
	return &clone, nil
}

func seedMember(t *testing.T, repo *stubUserRepo, email, password string, expiry time.Time) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	u := &domain.User{
		ID:                 "user-" + email,
		Username:           "member",
		Email:              email,
		PasswordHash:       string(hash),
		Role:               domain.RoleMember,
		SubscriptionType:   "annual",
		SubscriptionExpiry: expiry,
		IsActive:           true,
	}
	repo.add(u)
	return u
}

// ---------------------------------------------------------------------------
// Login tests
// ---------------------------------------------------------------------------

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	seedMember(t, repo, "m@example.com", "secret", time.Now().Add(365*24*time.Hour))
	svc := NewAuthService(repo, "test-secret", time.Hour)

	token, user, err := svc.Login(context.Background(), "m@example.com", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}
	if user.Email != "m@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	seedMember(t, repo, "m@example.com", "secret", time.Now().Add(time.Hour))
	svc := NewAuthService(repo, "test-secret", time.Hour)

	_, _, err := svc.Login(context.Background(), "m@example.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), "test-secret", time.Hour)

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "secret")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_Login_ExpiredSubscription(t *testing.T) {
	repo := newStubUserRepo()
	// Expiry in the past: the password is right but the session must not open.
	seedMember(t, repo, "m@example.com", "secret", time.Now().Add(-time.Minute))
	svc := NewAuthService(repo, "test-secret", time.Hour)

	_, _, err := svc.Login(context.Background(), "m@example.com", "secret")
	if !errors.Is(err, domain.ErrSubscriptionExpired) {
		t.Fatalf("expected ErrSubscriptionExpired, got %v", err)
	}
}

func TestAuthService_Login_ExpiryExactlyNowIsNotActive(t *testing.T) {
	repo := newStubUserRepo()
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	seedMember(t, repo, "m@example.com", "secret", now)
	svc := NewAuthService(repo, "test-secret", time.Hour)
	svc.now = func() time.Time { return now }

	// A session is authenticated only while expiry is strictly in the future.
	_, _, err := svc.Login(context.Background(), "m@example.com", "secret")
	if !errors.Is(err, domain.ErrSubscriptionExpired) {
		t.Fatalf("expected ErrSubscriptionExpired at exact expiry, got %v", err)
	}
}

func TestAuthService_Login_InactiveAccount(t *testing.T) {
	repo := newStubUserRepo()
	u := seedMember(t, repo, "m@example.com", "secret", time.Now().Add(time.Hour))
	u.IsActive = false
	svc := NewAuthService(repo, "test-secret", time.Hour)

	_, _, err := svc.Login(context.Background(), "m@example.com", "secret")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for deactivated account, got %v", err)
	}
}

func TestAuthService_TokenNeverOutlivesSubscription(t *testing.T) {
	repo := newStubUserRepo()
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	expiry := now.Add(30 * time.Minute)
	seedMember(t, repo, "m@example.com", "secret", expiry)

	svc := NewAuthService(repo, "test-secret", 24*time.Hour)
	svc.now = func() time.Time { return now }

	token, _, err := svc.Login(context.Background(), "m@example.com", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	}, jwt.WithTimeFunc(func() time.Time { return now })); err != nil {
		t.Fatalf("parse token: %v", err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		t.Fatalf("exp claim: %v", err)
	}
	if !exp.Time.Equal(expiry) {
		t.Fatalf("token exp %v must be capped at subscription expiry %v", exp.Time, expiry)
	}
}

// ---------------------------------------------------------------------------
// Register / CurrentUser tests
// ---------------------------------------------------------------------------

func TestAuthService_Register_DefaultsToTrialMember(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "test-secret", time.Hour)

	user, err := svc.Register(context.Background(), "alice", "alice@example.com", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Role != domain.RoleMember {
		t.Errorf("expected member role, got %q", user.Role)
	}
	if user.SubscriptionType != "trial" {
		t.Errorf("expected trial subscription, got %q", user.SubscriptionType)
	}
	if !user.SubscriptionExpiry.After(time.Now()) {
		t.Error("trial expiry must be in the future")
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, "test-secret", time.Hour)

	if _, err := svc.Register(context.Background(), "alice", "alice@example.com", "secret"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "alice2", "alice@example.com", "secret"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_CurrentUser_RechecksExpiry(t *testing.T) {
	repo := newStubUserRepo()
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	u := seedMember(t, repo, "m@example.com", "secret", now.Add(time.Minute))

	svc := NewAuthService(repo, "test-secret", time.Hour)
	svc.now = func() time.Time { return now }

	if _, err := svc.CurrentUser(context.Background(), u.ID); err != nil {
		t.Fatalf("restore before expiry failed: %v", err)
	}

	// Advance past the expiry: the same id must now be rejected.
	svc.now = func() time.Time { return now.Add(2 * time.Minute) }
	if _, err := svc.CurrentUser(context.Background(), u.ID); !errors.Is(err, domain.ErrSubscriptionExpired) {
		t.Fatalf("expected ErrSubscriptionExpired after lapse, got %v", err)
	}
}

func TestAuthService_CurrentUser_AdminIgnoresExpiry(t *testing.T) {
	repo := newStubUserRepo()
	admin := &domain.User{ID: "admin-1", Email: "a@example.com", Role: domain.RoleAdmin, IsActive: true}
	repo.add(admin)
	svc := NewAuthService(repo, "test-secret", time.Hour)

	if _, err := svc.CurrentUser(context.Background(), "admin-1"); err != nil {
		t.Fatalf("admin restore must not depend on subscription expiry: %v", err)
	}
}
