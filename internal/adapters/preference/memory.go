package preference

import (
	"context"
	"sync"

	"github.com/localecart/catalog_backend/internal/core/ports"
)

// MemoryStore is an in-process preference store used when no Redis address
// is configured, and in tests.
type MemoryStore struct {
	mu    sync.Mutex
	value string
	set   bool
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get(ctx context.Context) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, s.set, nil
}

func (s *MemoryStore) Set(ctx context.Context, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = value
	s.set = true
	return nil
}

var _ ports.PreferenceStore = (*MemoryStore)(nil)
