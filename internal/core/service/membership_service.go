package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/offmarket/listing-api/internal/core/domain"
	"github.com/offmarket/listing-api/internal/core/ports"
)

type membershipService struct {
	repo ports.ApplicationRepository
	log  zerolog.Logger
}

// NewMembershipService returns a MembershipService implementation.
func NewMembershipService(repo ports.ApplicationRepository, log zerolog.Logger) ports.MembershipService {
	return &membershipService{repo: repo, log: log}
}

func (s *membershipService) Submit(ctx context.Context, input ports.SubmitApplicationInput) (*domain.MembershipApplication, error) {
	app := &domain.MembershipApplication{
		ID:          uuid.NewString(),
		FullName:    input.FullName,
		Email:       input.Email,
		Phone:       input.Phone,
		Budget:      input.Budget,
		SearchNotes: input.SearchNotes,
		Status:      domain.ApplicationPending,
		SubmittedAt: time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, app); err != nil {
		return nil, fmt.Errorf("submit application: %w", err)
	}

	s.log.Info().Str("application_id", app.ID).Str("email", app.Email).Msg("membership application submitted")
	return app, nil
}

func (s *membershipService) List(ctx context.Context, filter ports.ApplicationFilter) ([]*domain.MembershipApplication, error) {
	return s.repo.List(ctx, filter)
}

func (s *membershipService) Review(ctx context.Context, id string, status domain.ApplicationStatus, notes string) (*domain.MembershipApplication, error) {
	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := app.Review(status, notes, time.Now().UTC()); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, app); err != nil {
		return nil, fmt.Errorf("review application %s: %w", id, err)
	}

	s.log.Info().Str("application_id", id).Str("status", string(status)).Msg("membership application reviewed")
	return app, nil
}

func (s *membershipService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
