package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"boi-na-nuvem/internal/ports/tokenstore"
)

type store struct {
	mu    sync.RWMutex
	items map[string]string
}

func NewStore() tokenstore.Store {
	return &store{items: make(map[string]string)}
}

func (s *store) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.items[key]
	return v, ok, nil
}

func (s *store) Set(ctx context.Context, key, value string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("key required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key] = value
	return nil
}

func (s *store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, key)
	return nil
}
