package store

import (
	"context"
	"sync"
)

// MemoryPersister keeps the slot in process memory. Used in tests and when
// running without Redis.
type MemoryPersister struct {
	mu    sync.Mutex
	data  []byte
	found bool
}

func NewMemoryPersister() *MemoryPersister {
	return &MemoryPersister{}
}

func (m *MemoryPersister) Load(context.Context) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.found {
		return nil, false, nil
	}
	return append([]byte(nil), m.data...), true, nil
}

func (m *MemoryPersister) Save(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = append([]byte(nil), data...)
	m.found = true
	return nil
}

// Corrupt overwrites the slot with a blob that cannot parse. Test helper.
func (m *MemoryPersister) Corrupt() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = []byte("{not json")
	m.found = true
}
