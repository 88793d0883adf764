package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/journey/internal/db"
	"github.com/alexanderramin/journey/internal/domain"
)

// SQLiteUserStore implements UserStore on the single-row session_user table.
type SQLiteUserStore struct {
	db db.DBTX
}

func NewSQLiteUserStore(conn db.DBTX) *SQLiteUserStore {
	return &SQLiteUserStore{db: conn}
}

func (s *SQLiteUserStore) LoadUser(ctx context.Context) (*domain.User, bool, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, name, bio, avatar, joined_at FROM session_user WHERE slot = 1`)

	var u domain.User
	var joinedAt string
	if err := row.Scan(&u.ID, &u.Name, &u.Bio, &u.Avatar, &joinedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("scanning session user: %w", err)
	}
	t, err := parseTime(joinedAt, timeLayout, "session_user.joined_at")
	if err != nil {
		return nil, false, err
	}
	u.JoinedAt = t
	return &u, true, nil
}

func (s *SQLiteUserStore) SaveUser(ctx context.Context, u *domain.User) error {
	_, err := s.db.ExecContext(ctx, `INSERT OR REPLACE INTO session_user (slot, id, name, bio, avatar, joined_at)
		VALUES (1, ?, ?, ?, ?, ?)`,
		u.ID, u.Name, u.Bio, u.Avatar, u.JoinedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("upserting session user: %w", err)
	}
	return nil
}

func (s *SQLiteUserStore) ClearUser(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM session_user`); err != nil {
		return fmt.Errorf("clearing session user: %w", err)
	}
	return nil
}

// SQLiteStore is the PersistencePort backed by one SQLite database.
type SQLiteStore struct {
	*SQLiteGoalStore
	*SQLiteUserStore
}

var _ PersistencePort = (*SQLiteStore)(nil)

func NewSQLiteStore(conn *sql.DB) *SQLiteStore {
	return &SQLiteStore{
		SQLiteGoalStore: NewSQLiteGoalStore(conn),
		SQLiteUserStore: NewSQLiteUserStore(conn),
	}
}
