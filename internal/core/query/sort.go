package query

import (
	"sort"
	"strings"

	"github.com/offmarket/listing-api/internal/core/domain"
)

// SortKey selects the field a result set is ordered by.
type SortKey string

const (
	SortByTitle     SortKey = "title"
	SortByCity      SortKey = "city"
	SortByType      SortKey = "type"
	SortByStatus    SortKey = "status"
	SortByRooms     SortKey = "rooms"
	SortBySurface   SortKey = "surface"
	SortByPrice     SortKey = "price"
	SortByCreatedAt SortKey = "created_at"
)

// Direction is the sort direction.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// SortState is the explicit (key, direction) pair behind a sortable table
// header. Selecting a new key starts ascending; re-selecting the active key
// flips the direction.
type SortState struct {
	Key SortKey
	Dir Direction
}

// Select returns the state after clicking the given column header.
func (s SortState) Select(key SortKey) SortState {
	if s.Key == key {
		if s.Dir == Ascending {
			return SortState{Key: key, Dir: Descending}
		}
		return SortState{Key: key, Dir: Ascending}
	}
	return SortState{Key: key, Dir: Ascending}
}

// Sort returns a copy of items ordered by key and direction. Ties keep their
// input order, so sorting is a total order over any concrete slice. An empty
// key leaves the order untouched.
func Sort(items []domain.Property, key SortKey, dir Direction) []domain.Property {
	out := append([]domain.Property(nil), items...)
	if key == "" {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		c := compare(out[i], out[j], key)
		if dir == Descending {
			return c > 0
		}
		return c < 0
	})
	return out
}

// compare returns -1/0/+1 for a against b on the given key. Text keys use
// case-sensitive lexicographic order; the zero time sorts as the oldest
// possible value.
func compare(a, b domain.Property, key SortKey) int {
	switch key {
	case SortByTitle:
		return strings.Compare(a.Title, b.Title)
	case SortByCity:
		return strings.Compare(a.City, b.City)
	case SortByType:
		return strings.Compare(string(a.Type), string(b.Type))
	case SortByStatus:
		return strings.Compare(string(a.Status), string(b.Status))
	case SortByRooms:
		return compareFloat(a.Rooms, b.Rooms)
	case SortBySurface:
		return compareFloat(a.Surface, b.Surface)
	case SortByPrice:
		// Undisclosed prices carry amount 0 and therefore sort first.
		return compareInt(a.Price.Amount, b.Price.Amount)
	case SortByCreatedAt:
		if a.CreatedAt.Before(b.CreatedAt) {
			return -1
		}
		if a.CreatedAt.After(b.CreatedAt) {
			return 1
		}
		return 0
	default:
		return 0
	}
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
