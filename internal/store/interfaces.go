// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists client-side state in a local SQLite database.
//
// The only state that outlives a process is the session token, kept under
// the key "jwt" in a small key/value table created by the migrations
// package.
package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/token_store_mock.go -package=mock

// TokenStore is the durable slot holding the bearer token.
type TokenStore interface {
	// Get returns the stored token, or "" when nothing is stored.
	Get(ctx context.Context) (string, error)
	// Set stores token, replacing any previous value.
	Set(ctx context.Context, token string) error
	// Delete removes the stored token. Deleting an absent token is not an
	// error.
	Delete(ctx context.Context) error
}
