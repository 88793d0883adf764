package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/journey/internal/domain"
	"github.com/alexanderramin/journey/internal/repository"
)

type profileService struct {
	users    repository.UserStore
	observer UseCaseObserver
	now      func() time.Time
}

func NewProfileService(users repository.UserStore, observers ...UseCaseObserver) ProfileService {
	return &profileService{
		users:    users,
		observer: useCaseObserverOrNoop(observers),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *profileService) Save(ctx context.Context, name, bio, avatar string) (u *domain.User, err error) {
	defer observe(ctx, s.observer, "save-profile", nil)(&err)

	name = strings.TrimSpace(name)
	if err = domain.ValidateProfileName(name); err != nil {
		return nil, err
	}

	current, ok, err := s.users.LoadUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w: %w", domain.ErrStorage, err)
	}
	if ok {
		u = current
		u.Replace(name, bio, avatar)
	} else {
		u = domain.NewUser(name, bio, avatar, s.now())
	}

	if err = s.users.SaveUser(ctx, u); err != nil {
		return nil, fmt.Errorf("saving profile: %w: %w", domain.ErrStorage, err)
	}
	return u, nil
}

func (s *profileService) Current(ctx context.Context) (*domain.User, bool, error) {
	u, ok, err := s.users.LoadUser(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("loading profile: %w: %w", domain.ErrStorage, err)
	}
	return u, ok, nil
}

// Logout clears the session slot. Goals are kept.
func (s *profileService) Logout(ctx context.Context) (err error) {
	defer observe(ctx, s.observer, "logout", nil)(&err)

	if err = s.users.ClearUser(ctx); err != nil {
		return fmt.Errorf("clearing profile: %w: %w", domain.ErrStorage, err)
	}
	return nil
}
