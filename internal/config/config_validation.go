// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty database dsn", ErrInvalidStorageConfigs)
	}

	switch cfg.Storage.Revocation.Backend {
	case RevocationBackendNoop, RevocationBackendPostgres:
	case RevocationBackendRedis:
		if cfg.Storage.Revocation.RedisAddress == "" {
			return fmt.Errorf("%w: empty redis address", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown revocation backend %q", ErrInvalidStorageConfigs, cfg.Storage.Revocation.Backend)
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: empty token sign key", ErrInvalidAppConfigs)
	}

	if cfg.App.TokenDuration <= 0 || cfg.App.CookieMaxAge <= 0 || cfg.App.RevocationTTL <= 0 {
		return fmt.Errorf("%w: token, cookie and revocation lifetimes must be positive", ErrInvalidAppConfigs)
	}

	if cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password hash cost %d out of range", ErrInvalidAppConfigs, cfg.App.PasswordHashCost)
	}

	if cfg.Storage.Revocation.Backend == RevocationBackendPostgres && cfg.Workers.RevocationPurgeInterval <= 0 {
		return fmt.Errorf("%w: revocation purge interval must be positive", ErrInvalidWorkerConfigs)
	}

	return nil
}
