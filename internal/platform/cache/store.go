package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/riskibarqy/matchday/internal/platform/resilience"
)

type entry struct {
	value     any
	expiresAt time.Time
}

// Store is a TTL map with loader deduplication, used to front read-heavy
// report queries.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	flight  resilience.SingleFlight
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		entries: make(map[string]entry),
		ttl:     ttl,
	}
}

func (s *Store) Get(_ context.Context, key string) (any, bool) {
	if key == "" {
		return nil, false
	}

	now := time.Now()
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if s.ttl > 0 && !e.expiresAt.After(now) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return nil, false
	}

	return e.value, true
}

func (s *Store) Set(_ context.Context, key string, value any) {
	if key == "" {
		return
	}

	expiresAt := time.Time{}
	if s.ttl > 0 {
		expiresAt = time.Now().Add(s.ttl)
	}

	s.mu.Lock()
	s.entries[key] = entry{
		value:     value,
		expiresAt: expiresAt,
	}
	s.mu.Unlock()
}

func (s *Store) Delete(_ context.Context, key string) {
	if key == "" {
		return
	}

	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

// GetOrLoad returns the cached value or runs loader once per key, caching
// the result. Concurrent callers for the same key share one load.
func (s *Store) GetOrLoad(ctx context.Context, key string, loader func(ctx context.Context) (any, error)) (any, error) {
	if key == "" {
		return nil, fmt.Errorf("cache key is required")
	}
	if loader == nil {
		return nil, fmt.Errorf("cache loader is required")
	}

	if value, ok := s.Get(ctx, key); ok {
		return value, nil
	}

	value, err, _ := s.flight.Do(key, func() (any, error) {
		if value, ok := s.Get(ctx, key); ok {
			return value, nil
		}
		value, err := loader(ctx)
		if err != nil {
			return nil, err
		}
		s.Set(ctx, key, value)
		return value, nil
	})

	return value, err
}

func (s *Store) Flush(_ context.Context) {
	s.mu.Lock()
	s.entries = make(map[string]entry)
	s.mu.Unlock()
}
