package store

import (
	"sync"

	"github.com/agentstation/moviemap/pkg/movies"
)

// MemoryStore keeps the collection in process memory. It is used by tests
// and by callers that embed the catalog without a file. LoadErr and SaveErr,
// when set, are returned instead of performing the operation.
type MemoryStore struct {
	mu      sync.Mutex
	data    movies.Collection
	exists  bool
	loads   int
	saves   int
	LoadErr error
	SaveErr error
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates a store seeded with a copy of initial. A nil initial
// behaves like a resource that does not exist yet.
func NewMemoryStore(initial movies.Collection) *MemoryStore {
	return &MemoryStore{
		data:   initial.Clone(),
		exists: initial != nil,
	}
}

// Path returns a fixed pseudo-path.
func (s *MemoryStore) Path() string {
	return "memory"
}

// Load returns a copy of the stored collection.
func (s *MemoryStore) Load() (movies.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loads++
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	return s.data.Clone(), nil
}

// Save replaces the stored collection with a copy of c.
func (s *MemoryStore) Save(c movies.Collection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves++
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.data = c.Clone()
	s.exists = true
	return nil
}

// Snapshot returns a copy of the stored collection without counting a load.
func (s *MemoryStore) Snapshot() movies.Collection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Clone()
}

// Exists reports whether anything has been stored.
func (s *MemoryStore) Exists() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.exists
}

// Loads returns how many times Load was called.
func (s *MemoryStore) Loads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loads
}

// Saves returns how many times Save was called.
func (s *MemoryStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

// Close is a no-op.
func (s *MemoryStore) Close() error {
	return nil
}
