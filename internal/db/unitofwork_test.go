package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/alexanderramin/journey/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openUoW(t *testing.T) (*sql.DB, *db.SQLiteUnitOfWork) {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database, db.NewSQLiteUnitOfWork(database)
}

func insertSessionUser(ctx context.Context, tx db.DBTX, name string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO session_user (slot, id, name, joined_at) VALUES (1, ?, ?, ?)`,
		"u-"+name, name, "2025-06-15T10:00:00Z")
	return err
}

func sessionUserName(t *testing.T, database *sql.DB) (string, bool) {
	t.Helper()
	var name string
	err := database.QueryRow(`SELECT name FROM session_user WHERE slot = 1`).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false
	}
	require.NoError(t, err)
	return name, true
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	database, uow := openUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertSessionUser(ctx, tx, "Ada")
	})
	require.NoError(t, err)

	name, found := sessionUserName(t, database)
	assert.True(t, found, "row should exist after commit")
	assert.Equal(t, "Ada", name)
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	database, uow := openUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertSessionUser(ctx, tx, "Ada"); err != nil {
			return err
		}
		return errors.New("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")

	_, found := sessionUserName(t, database)
	assert.False(t, found, "row should not exist after rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	database, uow := openUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertSessionUser(ctx, tx, "Ada")
			panic("boom")
		})
	})

	_, found := sessionUserName(t, database)
	assert.False(t, found, "row should not exist after panic rollback")
}

func TestWithinTx_SingleSessionSlot(t *testing.T) {
	_, uow := openUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertSessionUser(ctx, tx, "Ada"); err != nil {
			return err
		}
		return insertSessionUser(ctx, tx, "Grace")
	})
	require.Error(t, err, "slot primary key admits one user")
}
