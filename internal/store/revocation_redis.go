// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/utils"
	"github.com/redis/go-redis/v9"
)

// revokedKeyPrefix namespaces revocation entries in Redis.
const revokedKeyPrefix = "revoked:"

// redisRevocationStorage keeps one key per revoked token; Redis expires the
// key together with the revocation window.
type redisRevocationStorage struct {
	client *redis.Client
	logger *logger.Logger
}

// NewRedisClient builds a go-redis client for cfg and pings it.
func NewRedisClient(ctx context.Context, cfg config.Revocation, log *logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisClient").Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}
	log.Info().Str("func", "NewRedisClient").Msg("connected to redis successfully")

	return client, nil
}

// NewRedisRevocationStorage returns a Redis-backed [TokenRevocationStorage].
func NewRedisRevocationStorage(client *redis.Client, logger *logger.Logger) TokenRevocationStorage {
	logger.Debug().Msg("creating redis revocation storage")
	return &redisRevocationStorage{client: client, logger: logger}
}

func redisRevokedKey(token string) string {
	return revokedKeyPrefix + utils.TokenDigest(token)
}

// Revoke sets the token key with ttl as its expiry.
func (r *redisRevocationStorage) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if err := r.client.Set(ctx, redisRevokedKey(token), "1", ttl).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisRevocationStorage.Revoke").Msg("error revoking token")
		return fmt.Errorf("error revoking token in redis: %w", err)
	}

	return nil
}

// IsRevoked reports whether the token key still exists.
func (r *redisRevocationStorage) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := r.client.Exists(ctx, redisRevokedKey(token)).Result()
	if err != nil {
		return false, fmt.Errorf("error checking token in redis: %w", err)
	}

	return n > 0, nil
}
