package scoreboard

import "sync"

// MatchStore is the registry of live matches keyed by MatchKey.
// Implementations must be safe for concurrent use.
type MatchStore interface {
	Get(key string) (Match, bool)
	Put(key string, m Match)
	Delete(key string) bool
	List() []Match
	Len() int
}

type InMemoryMatchStore struct {
	mu sync.Mutex
	m  map[string]Match
}

func NewInMemoryMatchStore() *InMemoryMatchStore {
	return &InMemoryMatchStore{
		m: make(map[string]Match),
	}
}

func (s *InMemoryMatchStore) Get(key string) (Match, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.m[key]
	return m, ok
}

func (s *InMemoryMatchStore) Put(key string, m Match) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = m
}

// Delete reports whether the key was present.
func (s *InMemoryMatchStore) Delete(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.m[key]; !ok {
		return false
	}
	delete(s.m, key)
	return true
}

// List returns the stored matches in no particular order.
func (s *InMemoryMatchStore) List() []Match {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Match, 0, len(s.m))
	for _, m := range s.m {
		out = append(out, m)
	}
	return out
}

func (s *InMemoryMatchStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.m)
}
