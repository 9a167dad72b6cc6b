package query

import (
	"testing"

	"github.com/offmarket/listing-api/internal/core/domain"
)

func ids(items []domain.Property) []string {
	out := make([]string, len(items))
	for i, p := range items {
		out[i] = p.ID
	}
	return out
}

func equalIDs(t *testing.T, got []domain.Property, want ...string) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("expected ids %v, got %v", want, gotIDs)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("expected ids %v, got %v", want, gotIDs)
		}
	}
}

func TestFilter_NoCriteriaMatchesEverything(t *testing.T) {
	seed := domain.SeedProperties()
	got := Filter(seed, Criteria{})
	if len(got) != len(seed) {
		t.Fatalf("expected all %d listings, got %d", len(seed), len(got))
	}
	equalIDs(t, got, "1", "2", "3", "4", "5", "6")
}

func TestFilter_QueryAllSentinelBypasses(t *testing.T) {
	seed := domain.SeedProperties()
	if got := Filter(seed, Criteria{Query: QueryAll}); len(got) != len(seed) {
		t.Fatalf("sentinel query must match everything, got %d of %d", len(got), len(seed))
	}
}

func TestFilter_TextQuery(t *testing.T) {
	seed := domain.SeedProperties()

	cases := []struct {
		name  string
		query string
		want  []string
	}{
		{"title substring", "villa individuelle", []string{"2"}},
		{"city case-insensitive", "COLOGNY", []string{"2"}},
		{"neighborhood", "eaux-vives", []string{"3"}},
		{"property type", "penthouse", []string{"4"}},
		{"no match", "zurich", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			equalIDs(t, Filter(seed, Criteria{Query: tc.query}), tc.want...)
		})
	}
}

func TestFilter_PropertyTypeVilla(t *testing.T) {
	// The §8-style catalogue check: exactly the Cologny villa.
	equalIDs(t, Filter(domain.SeedProperties(), Criteria{Type: domain.TypeVilla}), "2")
}

func TestFilter_RoomsExactAndTenPlus(t *testing.T) {
	seed := domain.SeedProperties()

	equalIDs(t, Filter(seed, Criteria{Rooms: 4.5}), "1")
	// "10 or more" sentinel: only the 12-room castle qualifies.
	equalIDs(t, Filter(seed, Criteria{Rooms: 10, RoomsOrMore: true}), "5")
}

func TestFilter_StatusSold(t *testing.T) {
	equalIDs(t, Filter(domain.SeedProperties(), Criteria{Status: domain.StatusSold}), "5")
}

func TestFilter_ListingType(t *testing.T) {
	equalIDs(t, Filter(domain.SeedProperties(), Criteria{ListingType: domain.ListingRent}), "3", "6")
}

func TestFilter_SurfaceRange(t *testing.T) {
	seed := domain.SeedProperties()

	equalIDs(t, Filter(seed, Criteria{SurfaceMin: 200}), "2", "4", "5")
	equalIDs(t, Filter(seed, Criteria{SurfaceMax: 170}), "1", "6")
	equalIDs(t, Filter(seed, Criteria{SurfaceMin: 150, SurfaceMax: 200}), "3", "6")
}

func TestFilter_PriceRange(t *testing.T) {
	seed := domain.SeedProperties()

	// Disclosed prices, sale range in CHF. Ids 4 and 5 are "on request".
	got := Filter(seed, Criteria{PriceMin: 1_000_000, PriceMax: 5_000_000})
	equalIDs(t, got, "1", "2", "4", "5")
}

func TestFilter_UndisclosedPriceMatchesAnyRange(t *testing.T) {
	// Listings priced "on request" deliberately match every price range.
	// This mirrors how the catalogue has always behaved and is asserted here
	// so the behaviour cannot change silently.
	seed := domain.SeedProperties()

	got := Filter(seed, Criteria{PriceMin: 99_000_000})
	equalIDs(t, got, "4", "5")
}

func TestFilter_FeatureSubset(t *testing.T) {
	seed := domain.SeedProperties()

	equalIDs(t, Filter(seed, Criteria{Features: []string{"cave"}}), "1", "6")
	equalIDs(t, Filter(seed, Criteria{Features: []string{"piscine", "jardin"}}), "2")
	equalIDs(t, Filter(seed, Criteria{Features: []string{"piscine", "cave"}}))
}

func TestFilter_CombinedCriteriaAreMonotonic(t *testing.T) {
	seed := domain.SeedProperties()

	// Adding a criterion must never grow the result set.
	steps := []Criteria{
		{},
		{ListingType: domain.ListingSale},
		{ListingType: domain.ListingSale, Status: domain.StatusAvailable},
		{ListingType: domain.ListingSale, Status: domain.StatusAvailable, SurfaceMin: 200},
		{ListingType: domain.ListingSale, Status: domain.StatusAvailable, SurfaceMin: 200, Type: domain.TypeVilla},
	}

	prev := len(seed) + 1
	for i, c := range steps {
		n := len(Filter(seed, c))
		if n > prev {
			t.Fatalf("step %d grew the result set: %d > %d", i, n, prev)
		}
		prev = n
	}
}

func TestFilter_ResultIsSubsetInInputOrder(t *testing.T) {
	seed := domain.SeedProperties()

	got := Filter(seed, Criteria{ListingType: domain.ListingSale})
	equalIDs(t, got, "1", "2", "4", "5")
}

func TestMatches_OrderIndependent(t *testing.T) {
	seed := domain.SeedProperties()
	c := Criteria{
		Query:       "genève",
		ListingType: domain.ListingSale,
		SurfaceMin:  100,
		Features:    []string{"ascenseur"},
	}

	// Matches is a conjunction of pure predicates; evaluating against the
	// collection twice must yield identical results.
	first := ids(Filter(seed, c))
	second := ids(Filter(seed, c))
	if len(first) != len(second) {
		t.Fatalf("filter is not deterministic: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("filter is not deterministic: %v vs %v", first, second)
		}
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	seed := domain.SeedProperties()
	before := ids(seed)

	_ = Filter(seed, Criteria{Status: domain.StatusSold})

	after := ids(seed)
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("input order changed: %v → %v", before, after)
		}
	}
}
