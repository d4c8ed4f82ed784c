// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// SessionRestorer restores the persisted session before the first render.
type SessionRestorer interface {
	Initialize(ctx context.Context) error
}

// UI is the interactive front end. Run blocks until the user quits.
type UI interface {
	Run(ctx context.Context) error
}

// BackgroundWorkers run for the lifetime of the UI.
type BackgroundWorkers interface {
	Start(ctx context.Context)
	Stop()
}
