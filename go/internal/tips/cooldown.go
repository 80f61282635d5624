package tips

import (
	"sync"
	"time"
)

// CooldownStore remembers when a tip id was last surfaced. It is the only
// state that outlives a pipeline run.
type CooldownStore interface {
	LastShown(id string) (time.Time, bool)
	MarkShown(id string, at time.Time)
}

// MemoryCooldownStore is the in-process cooldown index. Writes are
// append/overwrite-only per tip id.
type MemoryCooldownStore struct {
	mu    sync.Mutex
	shown map[string]time.Time
}

// NewMemoryCooldownStore returns an empty cooldown index.
func NewMemoryCooldownStore() *MemoryCooldownStore {
	return &MemoryCooldownStore{shown: make(map[string]time.Time)}
}

func (s *MemoryCooldownStore) LastShown(id string) (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.shown[id]
	return t, ok
}

func (s *MemoryCooldownStore) MarkShown(id string, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shown[id] = at
}
