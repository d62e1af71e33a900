// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/models"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
)

// maxAddressUpdateAttempts bounds retries of the address book transaction on
// transient failures.
const maxAddressUpdateAttempts = 3

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup and address book updates against the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.FullName.FirstName,
		&user.FullName.LastName,
		&user.Phone,
		&user.Role,
		&user.Addresses,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	return user, err
}

// CreateUser persists a new account and returns the canonical stored row
// (with created_at and updated_at filled by the database).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrLoginAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.FullName.FirstName,
		user.FullName.LastName,
		user.Phone,
		string(user.Role),
		user.Addresses,
	)

	// create user in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrLoginAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// scan saved user from db
	saved, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error scanning saved user")
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrLoginAlreadyExists
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return saved, nil
}

// FindUserByUsernameOrEmail returns the first account matching username or
// email. [ErrUserNotFound] is returned when there is none.
func (r *userRepository) FindUserByUsernameOrEmail(ctx context.Context, username, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findUserByUsernameOrEmail, username, email)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUsernameOrEmail").Msg("error querying user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByUsernameOrEmail").Msg("error scanning user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// FindUserByID returns the account with the given id. [ErrUserNotFound] is
// returned when there is none.
func (r *userRepository) FindUserByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findUserByID, id)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error querying user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error scanning user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// UpdateAddresses runs mutate over the locked address list of the account.
// Transient failures (see [PostgresErrorClassifier]) restart the whole
// transaction, so mutate must be free of side effects.
func (r *userRepository) UpdateAddresses(ctx context.Context, userID uuid.UUID, mutate AddressMutation) (models.Addresses, error) {
	log := logger.FromContext(ctx)

	var (
		addresses models.Addresses
		err       error
	)
	for attempt := 1; attempt <= maxAddressUpdateAttempts; attempt++ {
		addresses, err = r.updateAddresses(ctx, userID, mutate)
		if err == nil || !r.db.retryable(err) {
			return addresses, err
		}

		log.Warn().Err(err).
			Str("func", "*userRepository.UpdateAddresses").
			Int("attempt", attempt).
			Msg("retrying address update after transient error")
	}

	return nil, err
}

func (r *userRepository) updateAddresses(ctx context.Context, userID uuid.UUID, mutate AddressMutation) (models.Addresses, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateAddresses").Msg("failed to begin transaction")
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var current models.Addresses
	if err = tx.QueryRowContext(ctx, selectAddressesForUpdate, userID).Scan(&current); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.UpdateAddresses").Msg("failed to lock address list")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	updated, err := mutate(current)
	if err != nil {
		return nil, err
	}

	if _, err = tx.ExecContext(ctx, updateAddresses, userID, updated); err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateAddresses").Msg("failed to store address list")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateAddresses").Msg("failed to commit transaction")
		return nil, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().
		Str("func", "*userRepository.UpdateAddresses").
		Str("user_id", userID.String()).
		Int("addresses", len(updated)).
		Msg("address list updated")

	return updated, nil
}
