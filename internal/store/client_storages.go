// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-post-client/internal/config"
	"github.com/MKhiriev/go-post-client/internal/logger"
)

// ClientStorages groups the client-side stores.
type ClientStorages struct {
	// TokenStore persists the session token across restarts.
	TokenStore TokenStore

	db *DB
}

// NewClientStorages opens the SQLite database at cfg.DB.DSN, applies the
// migrations and wires the stores to it.
func NewClientStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		TokenStore: NewTokenStore(db, logger),
		db:         db,
	}, nil
}

// Close releases the database connection.
func (c *ClientStorages) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}
