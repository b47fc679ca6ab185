package credstore

import (
	"sync"

	"github.com/movehub/marketplace-client/internal/core/domain"
)

// MemoryStore holds the pair in memory. Used by tests and by ephemeral
// sessions that should not outlive the process.
type MemoryStore struct {
	mu   sync.Mutex
	pair domain.TokenPair
	set  bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() (domain.TokenPair, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set || !s.pair.Complete() {
		return domain.TokenPair{}, false, nil
	}
	return s.pair, true, nil
}

func (s *MemoryStore) Save(pair domain.TokenPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pair = pair
	s.set = true
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pair = domain.TokenPair{}
	s.set = false
	return nil
}

// Token satisfies the transport's TokenSource.
func (s *MemoryStore) Token() (string, bool) {
	pair, ok, _ := s.Load()
	if !ok {
		return "", false
	}
	return pair.Access, true
}
