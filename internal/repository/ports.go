package repository

import (
	"context"

	"github.com/alexanderramin/journey/internal/domain"
)

//go:generate mockgen -source=ports.go -destination=mock_store_test.go -package=repository

// GoalStore is the durable slot holding the ordered goal sequence.
// SaveGoals replaces the whole slot.
type GoalStore interface {
	LoadGoals(ctx context.Context) ([]*domain.Goal, error)
	SaveGoals(ctx context.Context, goals []*domain.Goal) error
}

// UserStore is the session slot holding at most one user.
type UserStore interface {
	LoadUser(ctx context.Context) (*domain.User, bool, error)
	SaveUser(ctx context.Context, u *domain.User) error
	ClearUser(ctx context.Context) error
}
