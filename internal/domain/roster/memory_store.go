package roster

import (
	"context"
	"sync"

	"github.com/jhrahman/shiftmate/internal/domain/entity"
)

// MemoryStore is an in-process OverrideStore. Contents are lost on exit.
type MemoryStore struct {
	mu        sync.RWMutex
	overrides map[entity.WeekKey]int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{overrides: make(map[entity.WeekKey]int)}
}

func (s *MemoryStore) Get(_ context.Context, week entity.WeekKey) (int, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.overrides[week]
	return id, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, week entity.WeekKey, personID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[week] = personID
	return nil
}

func (s *MemoryStore) Remove(_ context.Context, week entity.WeekKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.overrides, week)
	return nil
}

func (s *MemoryStore) List(_ context.Context) (map[entity.WeekKey]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[entity.WeekKey]int, len(s.overrides))
	for k, v := range s.overrides {
		out[k] = v
	}
	return out, nil
}
