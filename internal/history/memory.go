package history

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store for development and tests
type MemoryStore struct {
	mu    sync.RWMutex
	keep  int
	lists map[string][]string
}

// NewMemoryStore creates an empty store that keeps the newest keep ids per list
func NewMemoryStore(keep int) *MemoryStore {
	if keep <= 0 {
		keep = DefaultLookback
	}
	return &MemoryStore{keep: keep, lists: make(map[string][]string)}
}

func (s *MemoryStore) Record(_ context.Context, coupleID string, kind Kind, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := historyKey(coupleID, kind)
	list := append([]string{itemID}, s.lists[key]...)
	if len(list) > s.keep {
		list = list[:s.keep]
	}
	s.lists[key] = list
	return nil
}

func (s *MemoryStore) Recent(_ context.Context, coupleID string, kind Kind, limit int) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		return nil, nil
	}
	list := s.lists[historyKey(coupleID, kind)]
	if limit < len(list) {
		list = list[:limit]
	}
	out := make([]string, len(list))
	copy(out, list)
	return out, nil
}
