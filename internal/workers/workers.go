// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/store"
)

type Workers struct {
	workers []Worker
	wg      sync.WaitGroup
}

// NewWorkers builds the workers enabled by cfg. The revocation purge worker
// is added only when the storage backend supports purging.
func NewWorkers(storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}

	if storages != nil && storages.RevocationPurger != nil && cfg.RevocationPurgeInterval > 0 {
		w.workers = append(w.workers, NewRevocationPurgeWorker(
			storages.RevocationPurger,
			cfg.RevocationPurgeInterval,
			logger.WithComponent("worker.revocation_purge"),
		))
	}

	logger.Info().Int("count", len(w.workers)).Msg("workers created")
	return w
}

// Run starts every worker in its own goroutine and returns immediately.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			worker.Run(ctx)
		}()
	}
}

// Wait blocks until every started worker has returned.
func (w *Workers) Wait() {
	w.wg.Wait()
}
