package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/offmarket/listing-api/internal/core/domain"
	"github.com/offmarket/listing-api/internal/core/ports"
	"github.com/offmarket/listing-api/internal/core/query"
)

// allowedPageSizes are the page sizes the catalogue UI offers. Anything else
// falls back to the default.
var allowedPageSizes = map[int]struct{}{10: {}, 20: {}, 50: {}}

// AlertNotifier receives newly created listings for alert matching. The
// concrete implementation is the sharded dispatcher; enqueueing must never
// block listing creation.
type AlertNotifier interface {
	Enqueue(p domain.Property)
}

type PropertyService struct {
	store    ports.PropertyStore
	notifier AlertNotifier
	logger   zerolog.Logger
}

func NewPropertyService(store ports.PropertyStore, notifier AlertNotifier, logger zerolog.Logger) *PropertyService {
	return &PropertyService{store: store, notifier: notifier, logger: logger}
}

// List runs the search pipeline over a catalogue snapshot: filter by the
// supplied criteria, sort, then paginate. Stage order is fixed; each stage is
// pure, so a failed criterion degrades to "no match" rather than an error.
func (s *PropertyService) List(ctx context.Context, input ports.ListPropertiesInput) (*ports.ListPropertiesResult, error) {
	size := input.PageSize
	if _, ok := allowedPageSizes[size]; !ok {
		size = query.DefaultPageSize
	}

	snapshot := s.store.All()
	filtered := query.Filter(snapshot, input.Criteria)
	sorted := query.Sort(filtered, input.SortKey, input.SortDir)
	page := query.Paginate(sorted, input.Page, size)

	for i := range page.Items {
		page.Items[i].Contact = nil
	}

	return &ports.ListPropertiesResult{
		Items:      page.Items,
		Total:      page.Total,
		Page:       page.Number,
		PageSize:   page.Size,
		TotalPages: page.TotalPages,
	}, nil
}

// Get returns a single listing. Contact details stay hidden unless the
// caller holds an active membership.
func (s *PropertyService) Get(ctx context.Context, id string, withContact bool) (*domain.Property, error) {
	p, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	if !withContact {
		p.Contact = nil
	}
	return &p, nil
}

func (s *PropertyService) Create(ctx context.Context, p domain.Property) (*domain.Property, error) {
	created, err := s.store.Create(ctx, p)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create property")
		return nil, err
	}

	s.logger.Info().
		Str("property_id", created.ID).
		Str("type", string(created.Type)).
		Str("listing_type", string(created.ListingType)).
		Msg("property created")

	if s.notifier != nil {
		s.notifier.Enqueue(created)
	}
	return &created, nil
}

func (s *PropertyService) Update(ctx context.Context, id string, patch domain.PropertyPatch) (*domain.Property, error) {
	updated, err := s.store.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("property_id", id).Msg("property updated")
	return &updated, nil
}

func (s *PropertyService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("property_id", id).Msg("property deleted")
	return nil
}

func (s *PropertyService) RecordView(ctx context.Context, id string) error {
	_, err := s.store.IncrementViews(ctx, id)
	return err
}

func (s *PropertyService) RecordInquiry(ctx context.Context, id string) error {
	_, err := s.store.IncrementInquiries(ctx, id)
	return err
}
