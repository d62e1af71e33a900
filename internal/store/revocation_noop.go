// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-storefront/internal/logger"
)

// noopRevocationStorage discards revocations. It is selected when no
// revocation backend is configured, so logout still succeeds.
type noopRevocationStorage struct {
	logger *logger.Logger
}

// NewNoopRevocationStorage returns a [TokenRevocationStorage] that records
// nothing and reports every token as not revoked.
func NewNoopRevocationStorage(logger *logger.Logger) TokenRevocationStorage {
	logger.Debug().Msg("creating noop revocation storage")
	return &noopRevocationStorage{logger: logger}
}

func (n *noopRevocationStorage) Revoke(ctx context.Context, _ string, ttl time.Duration) error {
	logger.FromContext(ctx).Debug().
		Str("func", "*noopRevocationStorage.Revoke").
		Dur("ttl", ttl).
		Msg("revocation backend disabled, token not recorded")
	return nil
}

func (n *noopRevocationStorage) IsRevoked(context.Context, string) (bool, error) {
	return false, nil
}
