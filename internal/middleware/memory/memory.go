// Package memory is an in-memory implementation of middleware's cache storage.
package memory

import (
	"sync"
	"time"
)

type item struct {
	content   []byte
	expiresAt time.Time
}

// Storage ...
type Storage struct {
	mu    sync.RWMutex
	items map[string]item

	now func() time.Time
}

// NewStorage ...
func NewStorage() *Storage {
	return &Storage{
		items: make(map[string]item),
		now:   time.Now,
	}
}

// Get returns content by key or nil if the key is missing or expired.
func (s *Storage) Get(key string) []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.items[key]
	if !ok || s.now().After(i.expiresAt) {
		return nil
	}

	return i.content
}

// Set stores content for duration, expired items are evicted on write.
func (s *Storage) Set(key string, content []byte, duration time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	for k, v := range s.items {
		if now.After(v.expiresAt) {
			delete(s.items, k)
		}
	}

	s.items[key] = item{
		content:   content,
		expiresAt: now.Add(duration),
	}
}
