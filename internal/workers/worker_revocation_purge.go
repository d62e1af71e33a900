// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/store"
)

// RevocationPurgeWorker periodically deletes expired revocation entries.
type RevocationPurgeWorker struct {
	purger   store.RevocationPurger
	interval time.Duration

	logger *logger.Logger
}

func NewRevocationPurgeWorker(purger store.RevocationPurger, interval time.Duration, logger *logger.Logger) *RevocationPurgeWorker {
	return &RevocationPurgeWorker{
		purger:   purger,
		interval: interval,
		logger:   logger,
	}
}

func (w *RevocationPurgeWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info().Dur("interval", w.interval).Msg("revocation purge worker started")

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("revocation purge worker stopped")
			return
		case <-ticker.C:
			w.purge(ctx)
		}
	}
}

func (w *RevocationPurgeWorker) purge(ctx context.Context) {
	removed, err := w.purger.PurgeExpired(ctx)
	if err != nil {
		w.logger.Err(err).Msg("error purging expired revocations")
		return
	}
	if removed > 0 {
		w.logger.Debug().Int64("removed", removed).Msg("expired revocations purged")
	}
}
