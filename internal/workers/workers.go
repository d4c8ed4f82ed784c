// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/go-post-client/internal/config"
	"github.com/MKhiriev/go-post-client/internal/logger"
)

type Workers struct {
	workers []Worker
}

// NewClientWorkers returns the client's background workers.
func NewClientWorkers(cfg config.Workers, sess Session, log *logger.Logger) *Workers {
	return &Workers{workers: []Worker{
		NewSessionWatcher(sess, cfg.SessionCheckInterval, log),
	}}
}

// Start starts every worker in order.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops every worker in reverse order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
