// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-post-client/internal/logger"
	"github.com/MKhiriev/go-post-client/internal/utils"
)

const defaultSessionCheckInterval = time.Minute

// SessionWatcher logs the user out once the session token's exp claim has
// passed. It only inspects the token locally.
type SessionWatcher struct {
	session  Session
	interval time.Duration
	logger   *logger.Logger
	now      func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSessionWatcher returns an idle watcher. A non-positive interval
// defaults to one minute.
func NewSessionWatcher(sess Session, interval time.Duration, log *logger.Logger) *SessionWatcher {
	if interval <= 0 {
		interval = defaultSessionCheckInterval
	}
	return &SessionWatcher{
		session:  sess,
		interval: interval,
		logger:   log.GetChildLogger("session_watcher"),
		now:      time.Now,
	}
}

// Start stops any running loop, then checks the token every interval.
func (w *SessionWatcher) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.Check(jobCtx)
			}
		}
	}()
}

func (w *SessionWatcher) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

// Check logs out when the current token carries an exp claim in the past,
// and reports whether it did. Tokens that cannot be decoded are left alone.
func (w *SessionWatcher) Check(ctx context.Context) bool {
	token := w.session.Token()
	if token == "" {
		return false
	}

	claims, err := utils.DecodeClaims(token)
	switch {
	case err != nil:
		// opaque tokens carry no expiry; the server decides
		return false
	case !claims.Expired(w.now()):
		return false
	}

	w.logger.Info().Time("expired_at", claims.ExpiresAt).Msg("session token expired, logging out")
	w.session.Logout(ctx)
	return true
}
