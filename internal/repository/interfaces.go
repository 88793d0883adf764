package repository

import (
	"context"

	"github.com/alexanderramin/journey/internal/domain"
)

// PersistencePort groups both slots. Every storage backend implements it.
type PersistencePort interface {
	GoalStore
	UserStore
}

// Goals is the collection the command layer works against.
type Goals interface {
	Create(ctx context.Context, g *domain.Goal) error
	Update(ctx context.Context, g *domain.Goal) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Goal, error)
	List(ctx context.Context) ([]*domain.Goal, error)
}
