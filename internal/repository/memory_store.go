package repository

import (
	"context"
	"sync"

	"github.com/alexanderramin/journey/internal/domain"
)

// MemoryStore is an in-process PersistencePort. Saves and loads copy the
// data so callers never share goal pointers with the store.
type MemoryStore struct {
	mu    sync.Mutex
	user  *domain.User
	goals []*domain.Goal

	// SaveErr, when set, is returned by SaveGoals without storing anything.
	SaveErr error
	// Saves counts successful SaveGoals calls.
	Saves int
}

var _ PersistencePort = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) LoadGoals(_ context.Context) ([]*domain.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneGoals(s.goals), nil
}

func (s *MemoryStore) SaveGoals(_ context.Context, goals []*domain.Goal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.goals = cloneGoals(goals)
	s.Saves++
	return nil
}

func (s *MemoryStore) LoadUser(_ context.Context) (*domain.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil, false, nil
	}
	u := *s.user
	return &u, true, nil
}

func (s *MemoryStore) SaveUser(_ context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *u
	s.user = &cp
	return nil
}

func (s *MemoryStore) ClearUser(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	return nil
}

func cloneGoals(goals []*domain.Goal) []*domain.Goal {
	if goals == nil {
		return nil
	}
	out := make([]*domain.Goal, len(goals))
	for i, g := range goals {
		out[i] = g.Clone()
	}
	return out
}
