package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/offmarket/listing-api/internal/core/domain"
	"github.com/offmarket/listing-api/internal/core/ports"
)

type profileService struct {
	repo ports.ProfileRepository
	log  zerolog.Logger
}

// NewProfileService returns the back-office ProfileService.
func NewProfileService(repo ports.ProfileRepository, log zerolog.Logger) ports.ProfileService {
	return &profileService{repo: repo, log: log}
}

func (s *profileService) List(ctx context.Context, filter ports.ProfileFilter) ([]*domain.User, error) {
	return s.repo.List(ctx, filter)
}

func (s *profileService) Update(ctx context.Context, id string, patch ports.ProfilePatch) (*domain.User, error) {
	user, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("profile_id", id).Msg("profile updated")
	return user, nil
}

func (s *profileService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("profile_id", id).Msg("profile deleted")
	return nil
}
