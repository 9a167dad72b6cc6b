package store

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/offmarket/listing-api/internal/core/domain"
)

func newTestStore(t *testing.T) (*Store, *MemoryPersister) {
	t.Helper()
	p := NewMemoryPersister()
	s := New(p, domain.SeedProperties(), zerolog.Nop())
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return s, p
}

func draft() domain.Property {
	return domain.Property{
		Title:       "Maison de maître - Vésenaz",
		City:        "Collonge-Bellerive",
		Type:        domain.TypeHouse,
		Rooms:       9,
		Surface:     320,
		Status:      domain.StatusAvailable,
		ListingType: domain.ListingSale,
		Price:       domain.Price{Amount: 3_900_000, Currency: "CHF", Display: "CHF 3'900'000.-"},
		Features:    []string{"parc", "pool house"},
	}
}

func TestStore_Load_SeedsWhenSlotEmpty(t *testing.T) {
	s, _ := newTestStore(t)

	all := s.All()
	if len(all) != 6 {
		t.Fatalf("expected 6 seeded listings, got %d", len(all))
	}
	if all[0].ID != "1" {
		t.Fatalf("expected seed order, got first id %s", all[0].ID)
	}
}

func TestStore_Load_SeedsWhenSlotCorrupt(t *testing.T) {
	p := NewMemoryPersister()
	p.Corrupt()

	s := New(p, domain.SeedProperties(), zerolog.Nop())
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("corrupt slot must not fail load: %v", err)
	}
	if len(s.All()) != 6 {
		t.Fatalf("expected seed fallback, got %d items", len(s.All()))
	}
}

func TestStore_RoundTrip(t *testing.T) {
	s, p := newTestStore(t)
	created, err := s.Create(context.Background(), draft())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// A second store over the same slot must see an identical collection.
	reloaded := New(p, nil, zerolog.Nop())
	if err := reloaded.Load(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}

	before, after := s.All(), reloaded.All()
	if len(before) != len(after) {
		t.Fatalf("round trip changed length: %d != %d", len(before), len(after))
	}
	for i := range before {
		if !reflect.DeepEqual(before[i], after[i]) {
			t.Fatalf("round trip diverged at %d:\n%+v\n%+v", i, before[i], after[i])
		}
	}
	if after[0].ID != created.ID {
		t.Fatalf("newest-first order lost on reload: first id %s", after[0].ID)
	}
}

func TestStore_Create_AssignsIDAndZeroCounters(t *testing.T) {
	s, _ := newTestStore(t)

	in := draft()
	in.ID = "ignored"
	in.Views = 42
	in.Inquiries = 7

	created, err := s.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if created.ID == "" || created.ID == "ignored" {
		t.Fatalf("expected a fresh id, got %q", created.ID)
	}
	if created.Views != 0 || created.Inquiries != 0 {
		t.Fatalf("counters must start at zero: views=%d inquiries=%d", created.Views, created.Inquiries)
	}

	got, err := s.Get(created.ID)
	if err != nil {
		t.Fatalf("get after create: %v", err)
	}
	if got.Title != in.Title || got.Surface != in.Surface {
		t.Fatalf("stored record differs from input: %+v", got)
	}

	// Newest-first contract.
	if s.All()[0].ID != created.ID {
		t.Fatal("create must prepend to the collection")
	}
}

func TestStore_Create_RejectsInvalid(t *testing.T) {
	s, _ := newTestStore(t)

	in := draft()
	in.Rooms = 0
	if _, err := s.Create(context.Background(), in); !errors.Is(err, domain.ErrInvalidProperty) {
		t.Fatalf("expected ErrInvalidProperty, got %v", err)
	}
	if len(s.All()) != 6 {
		t.Fatal("failed create must not touch the collection")
	}
}

func TestStore_Update_ChangesOnlyPatchedField(t *testing.T) {
	s, _ := newTestStore(t)
	before, _ := s.Get("3")

	status := domain.StatusRented
	updated, err := s.Update(context.Background(), "3", domain.PropertyPatch{Status: &status})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Status != domain.StatusRented {
		t.Fatalf("status not updated: %q", updated.Status)
	}

	// Everything except status and UpdatedAt must be bit-for-bit unchanged.
	after := updated
	after.Status = before.Status
	after.UpdatedAt = before.UpdatedAt
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("update touched unrelated fields:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestStore_Update_NotFound(t *testing.T) {
	s, _ := newTestStore(t)

	title := "x"
	if _, err := s.Update(context.Background(), "missing", domain.PropertyPatch{Title: &title}); !errors.Is(err, domain.ErrPropertyNotFound) {
		t.Fatalf("expected ErrPropertyNotFound, got %v", err)
	}
}

func TestStore_Delete(t *testing.T) {
	s, _ := newTestStore(t)

	if err := s.Delete(context.Background(), "4"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(s.All()) != 5 {
		t.Fatalf("expected 5 listings after delete, got %d", len(s.All()))
	}
	if _, err := s.Get("4"); !errors.Is(err, domain.ErrPropertyNotFound) {
		t.Fatalf("expected ErrPropertyNotFound after delete, got %v", err)
	}

	// Deleting again reports not found, it does not panic or corrupt.
	if err := s.Delete(context.Background(), "4"); !errors.Is(err, domain.ErrPropertyNotFound) {
		t.Fatalf("expected ErrPropertyNotFound on double delete, got %v", err)
	}
}

func TestStore_IncrementCounters(t *testing.T) {
	s, _ := newTestStore(t)

	for i := 0; i < 3; i++ {
		if _, err := s.IncrementViews(context.Background(), "1"); err != nil {
			t.Fatalf("increment views: %v", err)
		}
	}
	if _, err := s.IncrementInquiries(context.Background(), "1"); err != nil {
		t.Fatalf("increment inquiries: %v", err)
	}

	got, _ := s.Get("1")
	if got.Views != 3 || got.Inquiries != 1 {
		t.Fatalf("expected views=3 inquiries=1, got views=%d inquiries=%d", got.Views, got.Inquiries)
	}

	if _, err := s.IncrementViews(context.Background(), "missing"); !errors.Is(err, domain.ErrPropertyNotFound) {
		t.Fatalf("expected ErrPropertyNotFound, got %v", err)
	}
}

func TestStore_MutationsPersistSynchronously(t *testing.T) {
	s, p := newTestStore(t)

	if err := s.Delete(context.Background(), "6"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	reloaded := New(p, nil, zerolog.Nop())
	if err := reloaded.Load(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if _, err := reloaded.Get("6"); !errors.Is(err, domain.ErrPropertyNotFound) {
		t.Fatal("delete was not mirrored to the slot")
	}
	_ = s
}

func TestStore_AllReturnsCopy(t *testing.T) {
	s, _ := newTestStore(t)

	snapshot := s.All()
	snapshot[0].Title = "mutated"

	got, _ := s.Get(snapshot[0].ID)
	if got.Title == "mutated" {
		t.Fatal("All must return a copy, not shared state")
	}
}
