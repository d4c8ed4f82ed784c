// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-post-client/internal/config"
	"github.com/MKhiriev/go-post-client/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenStore(t *testing.T) (*sqliteTokenStore, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	l := logger.Nop()
	s := NewTokenStore(newDB(conn, l), l).(*sqliteTokenStore)
	s.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return s, mock
}

// ── Get ─────────────────────────────────────────────────────────────────────

func TestTokenStore_Get(t *testing.T) {
	s, mock := newTestTokenStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM kv WHERE key = ?")).
		WithArgs(TokenKey).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("t1"))

	got, err := s.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "t1", got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenStore_Get_Absent(t *testing.T) {
	s, mock := newTestTokenStore(t)

	mock.ExpectQuery("SELECT value FROM kv").
		WithArgs(TokenKey).
		WillReturnError(sql.ErrNoRows)

	got, err := s.Get(context.Background())

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTokenStore_Get_QueryError(t *testing.T) {
	s, mock := newTestTokenStore(t)

	mock.ExpectQuery("SELECT value FROM kv").
		WithArgs(TokenKey).
		WillReturnError(errors.New("disk I/O error"))

	_, err := s.Get(context.Background())

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

// ── Set ─────────────────────────────────────────────────────────────────────

func TestTokenStore_Set(t *testing.T) {
	s, mock := newTestTokenStore(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO kv (key,value,updated_at) VALUES (?,?,?) ON CONFLICT(key) DO UPDATE")).
		WithArgs(TokenKey, "t2", s.now().UTC()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, s.Set(context.Background(), "t2"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTokenStore_Set_Error(t *testing.T) {
	s, mock := newTestTokenStore(t)

	mock.ExpectExec("INSERT INTO kv").
		WillReturnError(errors.New("readonly database"))

	assert.ErrorIs(t, s.Set(context.Background(), "t2"), ErrExecutingStatement)
}

// ── Delete ──────────────────────────────────────────────────────────────────

func TestTokenStore_Delete(t *testing.T) {
	s, mock := newTestTokenStore(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM kv WHERE key = ?")).
		WithArgs(TokenKey).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.Delete(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── SQLite round trip ───────────────────────────────────────────────────────

func TestClientStorages_TokenSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	cfg := config.Storage{DB: config.DB{DSN: filepath.Join(t.TempDir(), "nested", "client.db")}}

	storages, err := NewClientStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)

	got, err := storages.TokenStore.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, storages.TokenStore.Set(ctx, "t1"))
	require.NoError(t, storages.TokenStore.Set(ctx, "t2"))
	require.NoError(t, storages.Close())

	reopened, err := NewClientStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	defer reopened.Close()

	got, err = reopened.TokenStore.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "t2", got)

	require.NoError(t, reopened.TokenStore.Delete(ctx))
	require.NoError(t, reopened.TokenStore.Delete(ctx))

	got, err = reopened.TokenStore.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}
