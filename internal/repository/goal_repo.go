package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/journey/internal/domain"
)

// GoalRepository keeps the ordered goal sequence in memory and writes the
// whole sequence through its GoalStore on every change. Memory is replaced
// only after the store accepts the new sequence, so a failed save leaves
// both sides as they were.
//
// Calls are expected from a single goroutine, as in the CLI.
type GoalRepository struct {
	store GoalStore
	goals []*domain.Goal
}

var _ Goals = (*GoalRepository)(nil)

// OpenGoalRepository loads the current sequence from store.
func OpenGoalRepository(ctx context.Context, store GoalStore) (*GoalRepository, error) {
	goals, err := store.LoadGoals(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading goals: %w: %w", domain.ErrStorage, err)
	}
	return &GoalRepository{store: store, goals: goals}, nil
}

func (r *GoalRepository) Create(ctx context.Context, g *domain.Goal) error {
	if _, ok := r.indexOf(g.ID); ok {
		return fmt.Errorf("goal %s: %w", g.ID, domain.ErrAlreadyExists)
	}
	next := make([]*domain.Goal, 0, len(r.goals)+1)
	next = append(next, r.goals...)
	next = append(next, g.Clone())
	return r.commit(ctx, next)
}

// Update replaces the goal with the same id, keeping its position.
func (r *GoalRepository) Update(ctx context.Context, g *domain.Goal) error {
	i, ok := r.indexOf(g.ID)
	if !ok {
		return domain.NotFoundf("goal %s", g.ID)
	}
	next := append([]*domain.Goal(nil), r.goals...)
	next[i] = g.Clone()
	return r.commit(ctx, next)
}

func (r *GoalRepository) Delete(ctx context.Context, id string) error {
	i, ok := r.indexOf(id)
	if !ok {
		return domain.NotFoundf("goal %s", id)
	}
	next := make([]*domain.Goal, 0, len(r.goals)-1)
	next = append(next, r.goals[:i]...)
	next = append(next, r.goals[i+1:]...)
	return r.commit(ctx, next)
}

// GetByID returns a copy of the goal; callers may mutate it freely.
func (r *GoalRepository) GetByID(_ context.Context, id string) (*domain.Goal, error) {
	i, ok := r.indexOf(id)
	if !ok {
		return nil, domain.NotFoundf("goal %s", id)
	}
	return r.goals[i].Clone(), nil
}

// List returns copies in insertion order.
func (r *GoalRepository) List(_ context.Context) ([]*domain.Goal, error) {
	out := make([]*domain.Goal, len(r.goals))
	for i, g := range r.goals {
		out[i] = g.Clone()
	}
	return out, nil
}

// Len reports the number of goals held.
func (r *GoalRepository) Len() int {
	return len(r.goals)
}

func (r *GoalRepository) commit(ctx context.Context, next []*domain.Goal) error {
	if err := r.store.SaveGoals(ctx, next); err != nil {
		return fmt.Errorf("saving goals: %w: %w", domain.ErrStorage, err)
	}
	r.goals = next
	return nil
}

func (r *GoalRepository) indexOf(id string) (int, bool) {
	for i, g := range r.goals {
		if g.ID == id {
			return i, true
		}
	}
	return -1, false
}
