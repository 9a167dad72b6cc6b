package ports

import (
	"context"

	"github.com/offmarket/listing-api/internal/core/domain"
	"github.com/offmarket/listing-api/internal/core/query"
)

// ListPropertiesInput carries the full search pipeline parameters: filter
// criteria, sort selection, and pagination. PageSize is capped by the
// service; Page is 1-based.
type ListPropertiesInput struct {
	Criteria query.Criteria
	SortKey  query.SortKey
	SortDir  query.Direction
	Page     int
	PageSize int
}

// ListPropertiesResult is one page of matching listings.
type ListPropertiesResult struct {
	Items      []domain.Property
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// PropertyService defines the catalogue use cases.
type PropertyService interface {
	// List runs filter → sort → paginate over the catalogue snapshot.
	List(ctx context.Context, input ListPropertiesInput) (*ListPropertiesResult, error)
	// Get returns one listing. Contact details are stripped unless
	// withContact is true (authenticated member or admin).
	Get(ctx context.Context, id string, withContact bool) (*domain.Property, error)
	Create(ctx context.Context, p domain.Property) (*domain.Property, error)
	Update(ctx context.Context, id string, patch domain.PropertyPatch) (*domain.Property, error)
	Delete(ctx context.Context, id string) error
	RecordView(ctx context.Context, id string) error
	RecordInquiry(ctx context.Context, id string) error
}
