// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs background jobs for the lifetime of the client.
// It defines the Worker interface and a Workers aggregate that starts and
// stops several workers as one.
package workers

import "context"

// Worker is a background job. Start returns immediately; the work runs on
// its own goroutine until ctx is cancelled or Stop is called. Stop blocks
// until that goroutine has exited and is safe to call on an idle worker.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// Session is the part of the session manager the expiry watcher needs.
type Session interface {
	Token() string
	Logout(ctx context.Context)
}
