package service

import (
	"context"
	"errors"
	"testing"

	"github.com/offmarket/listing-api/internal/core/domain"
	"github.com/offmarket/listing-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub alert repository
// ---------------------------------------------------------------------------

type stubAlertRepo struct {
	alerts    []*domain.PropertyAlert
	matches   []*domain.AlertMatch
	listErr   error
	insertErr error
}

func (r *stubAlertRepo) Insert(_ context.Context, a *domain.PropertyAlert) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	clone := *a
	r.alerts = append(r.alerts, &clone)
	return nil
}

func (r *stubAlertRepo) ListByOwner(_ context.Context, ownerID string) ([]*domain.PropertyAlert, error) {
	var out []*domain.PropertyAlert
	for _, a := range r.alerts {
		if a.OwnerID == ownerID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *stubAlertRepo) ListActive(_ context.Context) ([]*domain.PropertyAlert, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*domain.PropertyAlert
	for _, a := range r.alerts {
		if a.Active {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *stubAlertRepo) Delete(_ context.Context, id, ownerID string) error {
	for i, a := range r.alerts {
		if a.ID == id && a.OwnerID == ownerID {
			r.alerts = append(r.alerts[:i], r.alerts[i+1:]...)
			return nil
		}
	}
	return domain.ErrAlertNotFound
}

func (r *stubAlertRepo) InsertMatch(_ context.Context, m *domain.AlertMatch) error {
	clone := *m
	r.matches = append(r.matches, &clone)
	return nil
}

type recordingNotifier struct {
	calls []string
}

func (n *recordingNotifier) Notify(ownerID, propertyID string) {
	n.calls = append(n.calls, ownerID+"/"+propertyID)
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestAlertService_Create(t *testing.T) {
	repo := &stubAlertRepo{}
	svc := NewAlertService(repo, nil, discardLogger)

	alert, err := svc.Create(context.Background(), ports.CreateAlertInput{
		OwnerID: "member-1",
		Label:   "Villa rive gauche",
		Criteria: domain.AlertCriteria{
			Type:     domain.TypeVilla,
			MinRooms: 6,
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if alert.ID == "" {
		t.Fatal("expected a generated alert id")
	}
	if !alert.Active {
		t.Fatal("new alerts must start active")
	}
	if len(repo.alerts) != 1 {
		t.Fatalf("expected 1 stored alert, got %d", len(repo.alerts))
	}
}

func TestAlertService_Match_RecordsHitsAndNotifies(t *testing.T) {
	repo := &stubAlertRepo{alerts: []*domain.PropertyAlert{
		{ID: "a1", OwnerID: "member-1", Active: true, Criteria: domain.AlertCriteria{Type: domain.TypeVilla}},
		{ID: "a2", OwnerID: "member-2", Active: true, Criteria: domain.AlertCriteria{MinRooms: 10}},
		{ID: "a3", OwnerID: "member-3", Active: true, Criteria: domain.AlertCriteria{ListingType: domain.ListingRent}},
	}}
	notifier := &recordingNotifier{}
	svc := NewAlertService(repo, notifier, discardLogger)

	villa := domain.Property{
		ID: "p9", Title: "Villa - Anières", City: "Anières",
		Type: domain.TypeVilla, Rooms: 7, Surface: 220,
		Status: domain.StatusAvailable, ListingType: domain.ListingSale,
	}

	matched, err := svc.Match(context.Background(), villa)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// a1 matches on type; a2 wants 10+ rooms; a3 wants rentals.
	if matched != 1 {
		t.Fatalf("expected 1 match, got %d", matched)
	}
	if len(repo.matches) != 1 || repo.matches[0].AlertID != "a1" || repo.matches[0].PropertyID != "p9" {
		t.Fatalf("unexpected match rows: %+v", repo.matches)
	}
	if len(notifier.calls) != 1 || notifier.calls[0] != "member-1/p9" {
		t.Fatalf("unexpected notifications: %v", notifier.calls)
	}
}

func TestAlertService_Match_SkipsInactiveAlerts(t *testing.T) {
	repo := &stubAlertRepo{alerts: []*domain.PropertyAlert{
		{ID: "a1", OwnerID: "member-1", Active: false, Criteria: domain.AlertCriteria{}},
	}}
	svc := NewAlertService(repo, nil, discardLogger)

	matched, err := svc.Match(context.Background(), domain.Property{ID: "p1", Type: domain.TypeHouse})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if matched != 0 {
		t.Fatalf("inactive alert must not match, got %d", matched)
	}
}

func TestAlertService_Match_RepoErrorSurfaces(t *testing.T) {
	repo := &stubAlertRepo{listErr: errors.New("backend unreachable")}
	svc := NewAlertService(repo, nil, discardLogger)

	if _, err := svc.Match(context.Background(), domain.Property{ID: "p1"}); err == nil {
		t.Fatal("expected error when the alert table is unreachable")
	}
}

func TestAlertService_Delete_EnforcesOwnership(t *testing.T) {
	repo := &stubAlertRepo{alerts: []*domain.PropertyAlert{
		{ID: "a1", OwnerID: "member-1", Active: true},
	}}
	svc := NewAlertService(repo, nil, discardLogger)

	if err := svc.Delete(context.Background(), "a1", "member-2"); !errors.Is(err, domain.ErrAlertNotFound) {
		t.Fatalf("expected ErrAlertNotFound for foreign owner, got %v", err)
	}
	if err := svc.Delete(context.Background(), "a1", "member-1"); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
}
