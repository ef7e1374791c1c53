package optionstore

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryStore is a mutex-guarded in-memory Store, used in tests and as the
// backing store when no database path is configured.
type MemoryStore struct {
	mu      sync.RWMutex
	options map[string]Option
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{options: make(map[string]Option)}
}

var _ Store = (*MemoryStore)(nil)

// Get returns the stored value for key.
func (s *MemoryStore) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	opt, ok := s.options[key]
	if !ok {
		return "", ErrNotFound
	}
	return opt.Value, nil
}

// Set stores value under key.
func (s *MemoryStore) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.options[key] = Option{Key: key, Value: value, UpdatedAt: time.Now()}
	return nil
}

// Delete removes the option at key.
func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.options, key)
	return nil
}

// List returns all options sorted by key.
func (s *MemoryStore) List(ctx context.Context) ([]Option, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	options := make([]Option, 0, len(s.options))
	for _, opt := range s.options {
		options = append(options, opt)
	}
	sort.Slice(options, func(i, j int) bool { return options[i].Key < options[j].Key })
	return options, nil
}
