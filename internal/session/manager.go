// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-post-client/internal/adapter"
	"github.com/MKhiriev/go-post-client/internal/logger"
	"github.com/MKhiriev/go-post-client/internal/store"
	"github.com/MKhiriev/go-post-client/internal/utils"
	"github.com/MKhiriev/go-post-client/internal/validators"
	"github.com/MKhiriev/go-post-client/models"
)

// Manager holds the in-memory session and keeps it in step with the
// persisted token. All methods are safe for concurrent use.
type Manager struct {
	api       adapter.APIClient
	tokens    store.TokenStore
	validator validators.Validator
	logger    *logger.Logger
	now       func() time.Time

	mu          sync.RWMutex
	state       State
	subscribers map[int]func(State)
	nextSubID   int
}

// NewManager returns an empty session. Call [Manager.Initialize] before the
// first render that depends on authentication.
func NewManager(api adapter.APIClient, tokens store.TokenStore, validator validators.Validator, log *logger.Logger) *Manager {
	return &Manager{
		api:         api,
		tokens:      tokens,
		validator:   validator,
		logger:      log.GetChildLogger("session"),
		now:         time.Now,
		subscribers: make(map[int]func(State)),
	}
}

// Initialize restores the session from the persisted token. A token that
// cannot be decoded or has expired is removed and the session stays empty;
// that is not an error. Only a failure to read storage is returned.
//
// Login followed by Initialize restores the same session only for tokens
// that decode as JWTs. An opaque token accepted by Login is persisted but
// discarded here on the next start, so the user has to log in again.
func (m *Manager) Initialize(ctx context.Context) error {
	token, err := m.tokens.Get(ctx)
	if err != nil {
		m.logger.Err(err).Str("func", "Manager.Initialize").Msg("failed to read persisted token")
		return fmt.Errorf("%w: %w", ErrRestoreSession, err)
	}
	if token == "" {
		m.logger.Debug().Str("func", "Manager.Initialize").Msg("no persisted session")
		return nil
	}

	claims, err := utils.DecodeClaims(token)
	if err != nil || claims.Expired(m.now()) {
		m.logger.Info().Err(err).Str("func", "Manager.Initialize").Msg("persisted token is invalid or expired, discarding")
		if delErr := m.tokens.Delete(ctx); delErr != nil {
			m.logger.Err(delErr).Str("func", "Manager.Initialize").Msg("failed to delete invalid token")
		}
		m.set(State{})
		return nil
	}

	m.set(State{Token: token, User: userFromClaims(claims)})
	m.logger.Info().Int64("user_id", claims.UserID).Msg("session restored")
	return nil
}

// Login validates creds locally, exchanges them for a token with exactly one
// request, persists the token and only then updates the session. On any
// failure the session is left as it was.
func (m *Manager) Login(ctx context.Context, creds models.Credentials) error {
	if err := m.validator.Validate(ctx, creds); err != nil {
		return err
	}

	resp, err := m.api.Login(ctx, creds)
	if err != nil {
		m.logger.Err(err).Str("func", "Manager.Login").Msg("login request failed")
		return fmt.Errorf("%w: %w", ErrLoginFailed, err)
	}

	if err = m.tokens.Set(ctx, resp.Token); err != nil {
		m.logger.Err(err).Str("func", "Manager.Login").Msg("failed to persist token")
		return fmt.Errorf("%w: %w", ErrTokenNotStored, err)
	}

	user := resp.User
	if user == nil {
		if claims, decErr := utils.DecodeClaims(resp.Token); decErr == nil {
			user = userFromClaims(claims)
		}
	}

	m.set(State{Token: resp.Token, User: user})
	m.logger.Info().Msg("logged in")
	return nil
}

// Register validates profile locally and creates the account. It never
// changes the session; the user logs in afterwards.
func (m *Manager) Register(ctx context.Context, profile models.Profile) error {
	if err := m.validator.Validate(ctx, profile); err != nil {
		return err
	}

	if _, err := m.api.Register(ctx, profile); err != nil {
		m.logger.Err(err).Str("func", "Manager.Register").Msg("register request failed")
		return fmt.Errorf("%w: %w", ErrRegisterFailed, err)
	}

	m.logger.Info().Msg("registered")
	return nil
}

// Logout clears the session and the persisted token. It cannot fail;
// storage errors are logged.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.tokens.Delete(ctx); err != nil {
		m.logger.Err(err).Str("func", "Manager.Logout").Msg("failed to delete persisted token")
	}
	m.set(State{})
	m.logger.Info().Msg("logged out")
}

// State returns a copy of the current session.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.clone()
}

// Token returns the bearer token, or "" when logged out. It is the token
// source of the API client.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.Token
}

// User returns a copy of the current user, or nil.
func (m *Manager) User() *models.User {
	return m.State().User
}

// Authenticated reports whether a token is present.
func (m *Manager) Authenticated() bool {
	return m.Token() != ""
}

// Subscribe registers fn to be called with the new state after every
// transition. fn runs on the goroutine that caused the transition and must
// not block. The returned func removes the subscription.
func (m *Manager) Subscribe(fn func(State)) (unsubscribe func()) {
	m.mu.Lock()
	id := m.nextSubID
	m.nextSubID++
	m.subscribers[id] = fn
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.subscribers, id)
			m.mu.Unlock()
		})
	}
}

func (m *Manager) set(s State) {
	m.mu.Lock()
	m.state = s.clone()
	subs := make([]func(State), 0, len(m.subscribers))
	for _, fn := range m.subscribers {
		subs = append(subs, fn)
	}
	snapshot := m.state.clone()
	m.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot.clone())
	}
}

func userFromClaims(c utils.TokenClaims) *models.User {
	return &models.User{ID: c.UserID, Name: c.Name, Email: c.Email}
}
