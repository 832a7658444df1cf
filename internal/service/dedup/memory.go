package dedup

import (
	"context"
	"sync"

	drepo "DartWatch/internal/domain/repository"
)

// MemoryStore is the default ProcessedStore: a process-lifetime set of
// receipt numbers. It carries no cross-invocation guarantee.
type MemoryStore struct {
	mu   sync.RWMutex
	seen map[string]struct{}
}

// NewMemoryStore creates an in-memory ProcessedStore.
func NewMemoryStore() drepo.ProcessedStore {
	return &MemoryStore{seen: make(map[string]struct{})}
}

func (s *MemoryStore) Seen(_ context.Context, receiptNo string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.seen[receiptNo]
	return ok
}

func (s *MemoryStore) Mark(_ context.Context, receiptNo string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seen[receiptNo] = struct{}{}
}

func (s *MemoryStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.seen)
}
