package query

import "github.com/offmarket/listing-api/internal/core/domain"

// DefaultPageSize is used when the caller does not supply a size.
const DefaultPageSize = 20

// Page is one slice of a sorted result set.
type Page struct {
	Items      []domain.Property
	Number     int // 1-indexed; clamped to the last non-empty page
	Size       int
	Total      int
	TotalPages int
}

// Paginate slices items into fixed-size pages and returns page number. A
// request past the last page clamps to the last page rather than erroring;
// an empty collection yields an empty page 1. Callers owning UI state must
// reset to page 1 whenever the size or any upstream filter changes.
func Paginate(items []domain.Property, number, size int) Page {
	if size <= 0 {
		size = DefaultPageSize
	}
	total := len(items)
	totalPages := (total + size - 1) / size

	if number < 1 {
		number = 1
	}
	if totalPages == 0 {
		return Page{Items: []domain.Property{}, Number: 1, Size: size, Total: 0, TotalPages: 0}
	}
	if number > totalPages {
		number = totalPages
	}

	start := (number - 1) * size
	end := start + size
	if end > total {
		end = total
	}

	return Page{
		Items:      append([]domain.Property(nil), items[start:end]...),
		Number:     number,
		Size:       size,
		Total:      total,
		TotalPages: totalPages,
	}
}
