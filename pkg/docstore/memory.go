package docstore

import (
	"context"
	"sync"

	"github.com/patrickmn/go-cache"
)

// MemoryStore keeps documents in process memory. Used by tests and by the
// "memory" driver for throwaway demo sessions.
type MemoryStore struct {
	mu    sync.Mutex
	cache *cache.Cache
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(key)
}

func (s *MemoryStore) Put(ctx context.Context, key string, body []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set(key, body)
	return nil
}

func (s *MemoryStore) Update(ctx context.Context, key string, fn UpdateFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.get(key)
	exists := err == nil

	next, err := fn(current, exists)
	if err != nil {
		return err
	}
	s.set(key, next)
	return nil
}

func (s *MemoryStore) Close() error {
	s.cache.Flush()
	return nil
}

func (s *MemoryStore) get(key string) ([]byte, error) {
	x, found := s.cache.Get(key)
	if !found {
		return nil, ErrNotFound
	}
	body := x.([]byte)
	out := make([]byte, len(body))
	copy(out, body)
	return out, nil
}

func (s *MemoryStore) set(key string, body []byte) {
	stored := make([]byte, len(body))
	copy(stored, body)
	s.cache.Set(key, stored, cache.NoExpiration)
}
