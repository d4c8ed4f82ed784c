// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-post-client/internal/logger"
	sq "github.com/Masterminds/squirrel"
)

const (
	kvTable = "kv"

	// TokenKey is the kv key holding the session token.
	TokenKey = "jwt"
)

type sqliteTokenStore struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewTokenStore returns a [TokenStore] backed by the kv table of db.
func NewTokenStore(db *DB, log *logger.Logger) TokenStore {
	return &sqliteTokenStore{db: db, logger: log, now: time.Now}
}

func (s *sqliteTokenStore) Get(ctx context.Context) (string, error) {
	query, args, err := s.db.builder.
		Select("value").
		From(kvTable).
		Where(sq.Eq{"key": TokenKey}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var token string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		s.logger.Err(err).Str("func", "tokenStore.Get").Msg("failed to read token")
		return "", fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return token, nil
}

func (s *sqliteTokenStore) Set(ctx context.Context, token string) error {
	query, args, err := s.db.builder.
		Insert(kvTable).
		Columns("key", "value", "updated_at").
		Values(TokenKey, token, s.now().UTC()).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "tokenStore.Set").Msg("failed to save token")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteTokenStore) Delete(ctx context.Context) error {
	query, args, err := s.db.builder.
		Delete(kvTable).
		Where(sq.Eq{"key": TokenKey}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "tokenStore.Delete").Msg("failed to delete token")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}
