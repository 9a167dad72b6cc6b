package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// SlotPersister stores the whole property collection as one JSON document
// under a single key, mirroring the original single-slot storage contract.
type SlotPersister struct {
	client *redis.Client
	key    string
}

// NewSlotPersister wraps client with the given slot key.
func NewSlotPersister(client *redis.Client, key string) *SlotPersister {
	return &SlotPersister{client: client, key: key}
}

// Load reads the slot. An absent key reports found=false, not an error.
func (s *SlotPersister) Load(ctx context.Context) ([]byte, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load slot %s: %w", s.key, err)
	}
	return data, true, nil
}

// Save replaces the slot's contents. No TTL: the catalogue lives until
// explicitly cleared.
func (s *SlotPersister) Save(ctx context.Context, data []byte) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("save slot %s: %w", s.key, err)
	}
	return nil
}
