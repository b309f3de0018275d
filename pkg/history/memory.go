package history

import (
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is a thread-safe in-memory calculation log.
type MemoryStore struct {
	mu      sync.RWMutex
	limit   int
	entries []*Entry
}

// NewMemoryStore creates an empty in-memory store retaining at most limit
// entries. A non-positive limit falls back to DefaultLimit.
func NewMemoryStore(limit int) *MemoryStore {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &MemoryStore{limit: limit}
}

// Push appends a calculation, evicting the oldest entry at the cap.
func (s *MemoryStore) Push(expression string, result float64) (*Entry, error) {
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return nil, ErrNonFiniteResult
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry := &Entry{
		ID:         uuid.NewString(),
		Expression: expression,
		Result:     result,
		CreatedAt:  time.Now(),
	}
	s.entries = append(s.entries, entry)
	if len(s.entries) > s.limit {
		s.entries = append(s.entries[:0:0], s.entries[len(s.entries)-s.limit:]...)
	}
	return entry, nil
}

// All returns the retained entries, oldest first.
func (s *MemoryStore) All() ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Entry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

// Clear removes every entry.
func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil
	return nil
}

// Count returns the number of retained entries.
func (s *MemoryStore) Count() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries), nil
}

// Close is a no-op for the in-memory store.
func (s *MemoryStore) Close() error {
	return nil
}
