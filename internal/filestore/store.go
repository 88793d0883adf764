// Package filestore keeps journey state as plain YAML or JSON documents in a
// directory: goals.<ext> for the durable slot and session.<ext> for the
// signed-in user.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alexanderramin/journey/internal/domain"
	"github.com/alexanderramin/journey/internal/repository"
)

const (
	documentVersion = 1
	filePerm        = 0o600
)

type Store struct {
	dir   string
	codec Codec
}

var _ repository.PersistencePort = (*Store)(nil)

// New creates dir if needed and returns a store writing with codec.
func New(dir string, codec Codec) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return &Store{dir: dir, codec: codec}, nil
}

func (s *Store) GoalsPath() string {
	return filepath.Join(s.dir, "goals"+s.codec.Ext())
}

func (s *Store) SessionPath() string {
	return filepath.Join(s.dir, "session"+s.codec.Ext())
}

func (s *Store) LoadGoals(ctx context.Context) ([]*domain.Goal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.GoalsPath())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading goals: %w", err)
	}

	var doc goalsDocument
	if err := s.codec.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", s.GoalsPath(), err)
	}
	if doc.Version > documentVersion {
		return nil, fmt.Errorf("goals document version %d is newer than supported %d", doc.Version, documentVersion)
	}

	goals := make([]*domain.Goal, 0, len(doc.Goals))
	for _, rec := range doc.Goals {
		g, err := fromGoalRecord(rec)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	if len(goals) == 0 {
		return nil, nil
	}
	return goals, nil
}

func (s *Store) SaveGoals(ctx context.Context, goals []*domain.Goal) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	doc := goalsDocument{Version: documentVersion, Goals: make([]goalRecord, 0, len(goals))}
	for _, g := range goals {
		doc.Goals = append(doc.Goals, toGoalRecord(g))
	}
	data, err := s.codec.Marshal(doc)
	if err != nil {
		return err
	}
	return writeFileAtomic(s.GoalsPath(), data, filePerm)
}

func (s *Store) LoadUser(ctx context.Context) (*domain.User, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(s.SessionPath())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading session: %w", err)
	}

	var rec userRecord
	if err := s.codec.Unmarshal(data, &rec); err != nil {
		return nil, false, fmt.Errorf("decoding %s: %w", s.SessionPath(), err)
	}
	joined, err := parseTime(rec.JoinedAt, "user joined_at")
	if err != nil {
		return nil, false, err
	}
	return &domain.User{
		ID:       rec.ID,
		Name:     rec.Name,
		Bio:      rec.Bio,
		Avatar:   rec.Avatar,
		JoinedAt: joined,
	}, true, nil
}

func (s *Store) SaveUser(ctx context.Context, u *domain.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := s.codec.Marshal(userRecord{
		ID:       u.ID,
		Name:     u.Name,
		Bio:      u.Bio,
		Avatar:   u.Avatar,
		JoinedAt: formatTime(u.JoinedAt),
	})
	if err != nil {
		return err
	}
	return writeFileAtomic(s.SessionPath(), data, filePerm)
}

func (s *Store) ClearUser(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(s.SessionPath()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}
