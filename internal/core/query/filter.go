// Package query implements the pure search pipeline applied to the in-memory
// property catalogue: predicate filtering, stable sorting, and pagination.
// Everything here is side-effect free so the pipeline stays trivially
// testable; debouncing and page-reset concerns live with the callers.
package query

import (
	"strings"

	"github.com/offmarket/listing-api/internal/core/domain"
)

// QueryAll is the sentinel text query that matches every listing.
const QueryAll = "all"

// Criteria is one independently specified filter per field. Zero values mean
// "no constraint"; supplied constraints combine by logical AND.
type Criteria struct {
	// Query is matched case-insensitively as a substring of the title, city,
	// neighborhood, or property type. Empty or QueryAll matches everything.
	Query string
	// Rooms filters on exact room count. When RoomsOrMore is set the
	// predicate becomes rooms >= Rooms (the "10 or more" selection).
	Rooms       float64
	RoomsOrMore bool
	Type        domain.PropertyType
	ListingType domain.ListingType
	Status      domain.PropertyStatus
	// PriceMin/PriceMax bound the structured price amount. A listing with an
	// undisclosed price matches any range; callers that want stricter
	// behaviour must filter on Disclosed themselves.
	PriceMin int64
	PriceMax int64
	// SurfaceMin/SurfaceMax bound the living surface; a non-positive bound
	// is treated as unset.
	SurfaceMin float64
	SurfaceMax float64
	// Features must all be present on the listing (superset match).
	Features []string
}

// Matches reports whether p satisfies every supplied criterion.
func Matches(c Criteria, p domain.Property) bool {
	if !matchesQuery(c.Query, p) {
		return false
	}
	if c.Rooms > 0 {
		if c.RoomsOrMore {
			if p.Rooms < c.Rooms {
				return false
			}
		} else if p.Rooms != c.Rooms {
			return false
		}
	}
	if c.Type != "" && p.Type != c.Type {
		return false
	}
	if c.ListingType != "" && p.ListingType != c.ListingType {
		return false
	}
	if c.Status != "" && p.Status != c.Status {
		return false
	}
	if !matchesPrice(c.PriceMin, c.PriceMax, p.Price) {
		return false
	}
	if c.SurfaceMin > 0 && p.Surface < c.SurfaceMin {
		return false
	}
	if c.SurfaceMax > 0 && p.Surface > c.SurfaceMax {
		return false
	}
	for _, want := range c.Features {
		if !hasFeature(p.Features, want) {
			return false
		}
	}
	return true
}

// Filter returns the listings matching c, preserving input order. The input
// slice is never mutated.
func Filter(items []domain.Property, c Criteria) []domain.Property {
	out := make([]domain.Property, 0, len(items))
	for _, p := range items {
		if Matches(c, p) {
			out = append(out, p)
		}
	}
	return out
}

func matchesQuery(q string, p domain.Property) bool {
	q = strings.TrimSpace(strings.ToLower(q))
	if q == "" || q == QueryAll {
		return true
	}
	for _, field := range []string{p.Title, p.City, p.Neighborhood, string(p.Type)} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// matchesPrice bounds the disclosed amount. Listings priced "on request"
// carry no numeric amount and match any range.
func matchesPrice(min, max int64, price domain.Price) bool {
	if min <= 0 && max <= 0 {
		return true
	}
	if !price.Disclosed() {
		return true
	}
	if min > 0 && price.Amount < min {
		return false
	}
	if max > 0 && price.Amount > max {
		return false
	}
	return true
}

func hasFeature(features []string, want string) bool {
	for _, f := range features {
		if f == want {
			return true
		}
	}
	return false
}
