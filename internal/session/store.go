// Package session keeps the dashboard seed of each browser session in memory.
package session

import (
	"sync"

	"github.com/google/uuid"
	"github.com/iwvelando/kpi-dashboard/pkg/constants"
)

// Store maps session ids to seeds. Sessions start at the initial seed; once
// more than max sessions exist the least recently used is forgotten.
type Store struct {
	mu      sync.Mutex
	initial int64
	max     int
	seeds   map[string]int64
	order   []string
}

// NewStore creates a store. A non-positive max falls back to
// constants.DefaultMaxSessions.
func NewStore(initial int64, max int) *Store {
	if max <= 0 {
		max = constants.DefaultMaxSessions
	}
	return &Store{
		initial: initial,
		max:     max,
		seeds:   make(map[string]int64),
	}
}

// NewID returns a fresh random session id.
func (s *Store) NewID() string {
	return uuid.NewString()
}

// Seed returns the seed of the session, registering it at the initial seed
// if unknown.
func (s *Store) Seed(id string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lookup(id)
}

// Regenerate increments the session seed and returns the new value.
func (s *Store) Regenerate(id string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	seed := s.lookup(id) + 1
	s.seeds[id] = seed
	return seed
}

// Len returns the number of tracked sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.seeds)
}

func (s *Store) lookup(id string) int64 {
	if seed, ok := s.seeds[id]; ok {
		s.touch(id)
		return seed
	}
	for len(s.seeds) >= s.max && len(s.order) > 0 {
		delete(s.seeds, s.order[0])
		s.order = s.order[1:]
	}
	s.seeds[id] = s.initial
	s.order = append(s.order, id)
	return s.initial
}

// touch moves id to the back of the eviction order.
func (s *Store) touch(id string) {
	for i, other := range s.order {
		if other == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.order = append(s.order, id)
}
