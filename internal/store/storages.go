// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Storages aggregates every repository used by the services together with
// the connections backing them.
type Storages struct {
	UserRepository         UserRepository
	ProductRepository      ProductRepository
	TokenRevocationStorage TokenRevocationStorage

	// RevocationPurger is non-nil only for the postgres revocation backend.
	RevocationPurger RevocationPurger

	db    *DB
	redis *redis.Client
}

// NewStorages connects to PostgreSQL, applies migrations and builds the
// repositories. The revocation list backend is chosen by
// cfg.Revocation.Backend.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	storages := &Storages{
		UserRepository:    NewUserRepository(db, log.WithComponent("store.user")),
		ProductRepository: NewProductRepository(db, log.WithComponent("store.product")),
		db:                db,
	}

	if err = storages.initRevocation(ctx, cfg.Revocation, log.WithComponent("store.revocation")); err != nil {
		_ = storages.Close()
		return nil, err
	}

	return storages, nil
}

func (s *Storages) initRevocation(ctx context.Context, cfg config.Revocation, log *logger.Logger) error {
	switch cfg.Backend {
	case "", config.RevocationBackendNoop:
		s.TokenRevocationStorage = NewNoopRevocationStorage(log)
	case config.RevocationBackendRedis:
		client, err := NewRedisClient(ctx, cfg, log)
		if err != nil {
			return err
		}
		s.redis = client
		s.TokenRevocationStorage = NewRedisRevocationStorage(client, log)
	case config.RevocationBackendPostgres:
		storage := NewPostgresRevocationStorage(s.db, log)
		s.TokenRevocationStorage = storage
		s.RevocationPurger = storage
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRevocationBackend, cfg.Backend)
	}

	log.Info().Str("backend", cfg.Backend).Msg("revocation storage initialized")
	return nil
}

// Close releases the database pool and the Redis client.
func (s *Storages) Close() error {
	var errs []error
	if s.redis != nil {
		errs = append(errs, s.redis.Close())
	}
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}

	return errors.Join(errs...)
}
