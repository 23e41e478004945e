package matching

import (
	"context"
	"strings"
	"sync"
)

type mapping struct {
	pattern  string // lower-cased
	category string
}

// MemoryStore keeps mappings in process. Used with the seed data source.
type MemoryStore struct {
	mu       sync.RWMutex
	mappings []mapping
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) FindMatch(_ context.Context, description string) (string, error) {
	desc := strings.ToLower(description)

	s.mu.RLock()
	defer s.mu.RUnlock()

	best := -1

	// Longest pattern wins; among equals the most recent one.
	for i, m := range s.mappings {
		if !strings.Contains(desc, m.pattern) {
			continue
		}

		if best < 0 || len(m.pattern) >= len(s.mappings[best].pattern) {
			best = i
		}
	}

	if best < 0 {
		return "", nil
	}

	return s.mappings[best].category, nil
}

func (s *MemoryStore) CreateMapping(_ context.Context, pattern, category string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mappings = append(s.mappings, mapping{pattern: strings.ToLower(pattern), category: category})

	return nil
}
