// Package store holds the authoritative in-process property collection and
// mirrors it to a single durable key-value slot as one JSON document.
package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/offmarket/listing-api/internal/core/domain"
)

// Persister is the durable slot the collection is mirrored to. Load reports
// found=false when the slot is empty; Save replaces the whole document.
type Persister interface {
	Load(ctx context.Context) (data []byte, found bool, err error)
	Save(ctx context.Context, data []byte) error
}

// Store owns the property collection. All methods are safe for concurrent
// use; reads return copies so callers can never mutate shared state.
type Store struct {
	mu        sync.RWMutex
	items     []domain.Property
	persister Persister
	seed      []domain.Property
	log       zerolog.Logger
}

// New builds a Store with an explicit lifecycle: call Load before serving.
func New(p Persister, seed []domain.Property, log zerolog.Logger) *Store {
	return &Store{
		persister: p,
		seed:      append([]domain.Property(nil), seed...),
		log:       log,
	}
}

// Load restores the collection from the persisted slot. An empty slot or a
// blob that fails to parse falls back to the seed dataset; corruption is
// logged, never propagated.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, found, err := s.persister.Load(ctx)
	if err != nil {
		return err
	}

	if found {
		var items []domain.Property
		if err := json.Unmarshal(data, &items); err != nil {
			s.log.Warn().Err(err).Msg("persisted catalogue is corrupt, reseeding")
		} else {
			s.items = items
			s.log.Info().Int("count", len(items)).Msg("catalogue restored")
			return nil
		}
	}

	s.items = append([]domain.Property(nil), s.seed...)
	s.persistLocked(ctx)
	s.log.Info().Int("count", len(s.items)).Msg("catalogue seeded")
	return nil
}

// All returns a snapshot in insertion order, newest first.
func (s *Store) All() []domain.Property {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyLocked()
}

func (s *Store) Get(id string) (domain.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.items {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Property{}, domain.ErrPropertyNotFound
}

// Create assigns a fresh id, zeroes the counters, and prepends the property
// so the collection stays newest-first.
func (s *Store) Create(ctx context.Context, p domain.Property) (domain.Property, error) {
	if err := p.Validate(); err != nil {
		return domain.Property{}, err
	}

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.Views = 0
	p.Inquiries = 0
	p.CreatedAt = now
	p.UpdatedAt = now

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append([]domain.Property{p}, s.items...)
	s.persistLocked(ctx)
	return p, nil
}

// Update merges the patch onto the stored record. The merge is validated
// before it replaces the original, so a bad patch leaves the record intact.
func (s *Store) Update(ctx context.Context, id string, patch domain.PropertyPatch) (domain.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.items {
		if p.ID != id {
			continue
		}
		merged, err := patch.Apply(p)
		if err != nil {
			return domain.Property{}, err
		}
		merged.UpdatedAt = time.Now().UTC()
		s.items[i] = merged
		s.persistLocked(ctx)
		return merged, nil
	}
	return domain.Property{}, domain.ErrPropertyNotFound
}

func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.items {
		if p.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persistLocked(ctx)
			return nil
		}
	}
	return domain.ErrPropertyNotFound
}

func (s *Store) IncrementViews(ctx context.Context, id string) (int64, error) {
	return s.increment(ctx, id, func(p *domain.Property) *int64 { return &p.Views })
}

func (s *Store) IncrementInquiries(ctx context.Context, id string) (int64, error) {
	return s.increment(ctx, id, func(p *domain.Property) *int64 { return &p.Inquiries })
}

func (s *Store) increment(ctx context.Context, id string, counter func(*domain.Property) *int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			c := counter(&s.items[i])
			*c++
			s.persistLocked(ctx)
			return *c, nil
		}
	}
	return 0, domain.ErrPropertyNotFound
}

// persistLocked mirrors the collection to the slot. Persistence is
// best-effort: a failed write is logged and the in-memory state stays
// authoritative.
func (s *Store) persistLocked(ctx context.Context) {
	data, err := json.Marshal(s.items)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to encode catalogue")
		return
	}
	if err := s.persister.Save(ctx, data); err != nil {
		s.log.Error().Err(err).Msg("failed to persist catalogue")
	}
}

func (s *Store) copyLocked() []domain.Property {
	return append([]domain.Property(nil), s.items...)
}
