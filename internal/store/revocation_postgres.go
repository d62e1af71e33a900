// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/utils"
)

// postgresRevocationStorage keeps revocations in the revoked_tokens table.
// Expired rows are ignored by IsRevoked and deleted by PurgeExpired.
type postgresRevocationStorage struct {
	db     *DB
	now    func() time.Time
	logger *logger.Logger
}

// PostgresRevocationStorage is the table-backed revocation list. It also
// implements [RevocationPurger].
type PostgresRevocationStorage interface {
	TokenRevocationStorage
	RevocationPurger
}

// NewPostgresRevocationStorage returns a revocation list stored in db.
func NewPostgresRevocationStorage(db *DB, logger *logger.Logger) PostgresRevocationStorage {
	logger.Debug().Msg("creating postgres revocation storage")
	return &postgresRevocationStorage{db: db, now: time.Now, logger: logger}
}

// Revoke upserts the token digest; a repeated revoke keeps the later expiry.
func (p *postgresRevocationStorage) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	expiresAt := p.now().Add(ttl).UTC()

	if _, err := p.db.ExecContext(ctx, insertRevokedToken, utils.TokenDigest(token), expiresAt); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*postgresRevocationStorage.Revoke").Msg("error revoking token")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// IsRevoked reports whether an unexpired row exists for token.
func (p *postgresRevocationStorage) IsRevoked(ctx context.Context, token string) (bool, error) {
	var revoked bool
	if err := p.db.QueryRowContext(ctx, findRevokedToken, utils.TokenDigest(token), p.now().UTC()).Scan(&revoked); err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return revoked, nil
}

// PurgeExpired deletes expired rows and returns how many were removed.
func (p *postgresRevocationStorage) PurgeExpired(ctx context.Context) (int64, error) {
	res, err := p.db.ExecContext(ctx, purgeRevokedTokens, p.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return n, nil
}
