package query

import (
	"testing"
	"time"

	"github.com/offmarket/listing-api/internal/core/domain"
)

func TestSort_SurfaceDescending(t *testing.T) {
	got := Sort(domain.SeedProperties(), SortBySurface, Descending)
	// Surfaces 800, 300, 250, 180, 165, 120.
	equalIDs(t, got, "5", "4", "2", "3", "6", "1")
}

func TestSort_SurfaceAscending(t *testing.T) {
	got := Sort(domain.SeedProperties(), SortBySurface, Ascending)
	equalIDs(t, got, "1", "6", "3", "2", "4", "5")
}

func TestSort_DirectionToggleIsInvolution(t *testing.T) {
	seed := domain.SeedProperties()

	once := Sort(seed, SortByRooms, Ascending)
	flipped := Sort(once, SortByRooms, Descending)
	back := Sort(flipped, SortByRooms, Ascending)

	wantIDs := ids(once)
	gotIDs := ids(back)
	for i := range wantIDs {
		if wantIDs[i] != gotIDs[i] {
			t.Fatalf("toggling direction twice changed the order: %v → %v", wantIDs, gotIDs)
		}
	}
}

func TestSort_TiesKeepInsertionOrder(t *testing.T) {
	items := []domain.Property{
		{ID: "a", Title: "x", Rooms: 4},
		{ID: "b", Title: "x", Rooms: 4},
		{ID: "c", Title: "x", Rooms: 4},
	}

	for _, dir := range []Direction{Ascending, Descending} {
		got := Sort(items, SortByRooms, dir)
		equalIDs(t, got, "a", "b", "c")
	}
}

func TestSort_TextIsCaseSensitiveLexicographic(t *testing.T) {
	items := []domain.Property{
		{ID: "1", Title: "alpha"},
		{ID: "2", Title: "Beta"},
	}

	// Uppercase sorts before lowercase in byte order.
	got := Sort(items, SortByTitle, Ascending)
	equalIDs(t, got, "2", "1")
}

func TestSort_ZeroTimeSortsOldest(t *testing.T) {
	now := time.Now().UTC()
	items := []domain.Property{
		{ID: "new", CreatedAt: now},
		{ID: "unknown"}, // zero time: compares as the oldest possible value
		{ID: "old", CreatedAt: now.Add(-time.Hour)},
	}

	got := Sort(items, SortByCreatedAt, Ascending)
	equalIDs(t, got, "unknown", "old", "new")
}

func TestSort_UndisclosedPriceSortsFirstAscending(t *testing.T) {
	got := Sort(domain.SeedProperties(), SortByPrice, Ascending)
	// Ids 4 and 5 are "on request" (amount 0), then 4'200, 5'800, 1.85M, 4.5M.
	equalIDs(t, got, "4", "5", "6", "3", "1", "2")
}

func TestSort_EmptyKeyLeavesOrderUntouched(t *testing.T) {
	got := Sort(domain.SeedProperties(), "", Descending)
	equalIDs(t, got, "1", "2", "3", "4", "5", "6")
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	seed := domain.SeedProperties()
	_ = Sort(seed, SortBySurface, Descending)
	equalIDs(t, seed, "1", "2", "3", "4", "5", "6")
}

func TestSortState_Select(t *testing.T) {
	cases := []struct {
		name  string
		state SortState
		click SortKey
		want  SortState
	}{
		{"fresh key starts ascending", SortState{}, SortBySurface, SortState{SortBySurface, Ascending}},
		{"new key resets to ascending", SortState{SortBySurface, Descending}, SortByTitle, SortState{SortByTitle, Ascending}},
		{"same key flips to descending", SortState{SortBySurface, Ascending}, SortBySurface, SortState{SortBySurface, Descending}},
		{"same key flips back", SortState{SortBySurface, Descending}, SortBySurface, SortState{SortBySurface, Ascending}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.state.Select(tc.click); got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}
