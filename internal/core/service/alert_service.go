package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/offmarket/listing-api/internal/core/domain"
	"github.com/offmarket/listing-api/internal/core/ports"
	"github.com/offmarket/listing-api/internal/core/query"
)

// MatchNotifier coalesces match notifications per alert owner. The concrete
// implementation is the debounced notifier; a nil notifier disables
// notification without disabling match recording.
type MatchNotifier interface {
	Notify(ownerID string, propertyID string)
}

type alertService struct {
	repo     ports.AlertRepository
	notifier MatchNotifier
	log      zerolog.Logger
}

// NewAlertService returns an AlertService implementation.
func NewAlertService(repo ports.AlertRepository, notifier MatchNotifier, log zerolog.Logger) ports.AlertService {
	return &alertService{repo: repo, notifier: notifier, log: log}
}

func (s *alertService) Create(ctx context.Context, input ports.CreateAlertInput) (*domain.PropertyAlert, error) {
	alert := &domain.PropertyAlert{
		ID:        uuid.NewString(),
		OwnerID:   input.OwnerID,
		Label:     input.Label,
		Criteria:  input.Criteria,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, alert); err != nil {
		return nil, fmt.Errorf("create alert: %w", err)
	}

	s.log.Info().Str("alert_id", alert.ID).Str("owner_id", alert.OwnerID).Msg("property alert created")
	return alert, nil
}

func (s *alertService) ListByOwner(ctx context.Context, ownerID string) ([]*domain.PropertyAlert, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *alertService) Delete(ctx context.Context, id, ownerID string) error {
	return s.repo.Delete(ctx, id, ownerID)
}

// Match evaluates every active alert against the property, recording one
// match row per hit. A failed insert is logged and skipped so one bad row
// never blocks the remaining alerts.
func (s *alertService) Match(ctx context.Context, p domain.Property) (int, error) {
	alerts, err := s.repo.ListActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("match property %s: %w", p.ID, err)
	}

	matched := 0
	for _, alert := range alerts {
		if !query.Matches(criteriaFromAlert(alert.Criteria), p) {
			continue
		}

		match := &domain.AlertMatch{
			ID:         uuid.NewString(),
			AlertID:    alert.ID,
			OwnerID:    alert.OwnerID,
			PropertyID: p.ID,
			MatchedAt:  time.Now().UTC(),
		}
		if err := s.repo.InsertMatch(ctx, match); err != nil {
			s.log.Error().Err(err).Str("alert_id", alert.ID).Str("property_id", p.ID).Msg("failed to record alert match")
			continue
		}
		matched++

		if s.notifier != nil {
			s.notifier.Notify(alert.OwnerID, p.ID)
		}
	}

	if matched > 0 {
		s.log.Info().Str("property_id", p.ID).Int("matched", matched).Msg("alerts matched")
	}
	return matched, nil
}

// criteriaFromAlert maps the saved-search shape onto the catalogue filter.
// Alert bounds are all "at least"/"at most" style, so the exact-rooms filter
// becomes a minimum.
func criteriaFromAlert(c domain.AlertCriteria) query.Criteria {
	return query.Criteria{
		Query:       c.City,
		Type:        c.Type,
		ListingType: c.ListingType,
		Rooms:       c.MinRooms,
		RoomsOrMore: c.MinRooms > 0,
		SurfaceMin:  c.MinSurface,
		PriceMax:    c.MaxPrice,
		Features:    c.Features,
	}
}
