// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements persistence for the storefront services.
//
// Accounts (with their embedded address book) and products live in
// PostgreSQL, reached through the pgx database/sql driver. Session token
// revocations are kept in Redis, in a PostgreSQL table, or discarded,
// depending on configuration.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-storefront/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AddressMutation receives the current address list of an account and
// returns the list to persist. Returning an error aborts the mutation and
// leaves the stored list untouched.
type AddressMutation func(current models.Addresses) (models.Addresses, error)

// UserRepository persists accounts in the "users" table.
type UserRepository interface {
	// CreateUser inserts user and returns the stored row. A duplicate
	// username or email yields [ErrLoginAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsernameOrEmail returns the account whose username equals
	// username or whose email equals email. Empty values never match.
	FindUserByUsernameOrEmail(ctx context.Context, username, email string) (models.User, error)

	// FindUserByID returns the account with the given id.
	FindUserByID(ctx context.Context, id uuid.UUID) (models.User, error)

	// UpdateAddresses locks the account row, applies mutate to its address
	// list and stores the result in one transaction.
	UpdateAddresses(ctx context.Context, userID uuid.UUID, mutate AddressMutation) (models.Addresses, error)
}

// ProductRepository persists products in the "products" table.
type ProductRepository interface {
	// CreateProduct inserts product and returns the stored row.
	CreateProduct(ctx context.Context, product models.Product) (models.Product, error)

	// FindProductByID returns the product with its seller display data.
	// The seller part stays zero-valued, apart from its id, when the seller
	// account does not exist.
	FindProductByID(ctx context.Context, id uuid.UUID) (models.ProductDetails, error)

	// ListProducts returns one page of products in creation order together
	// with the total number of products.
	ListProducts(ctx context.Context, page models.PageRequest) ([]models.Product, int, error)
}

// TokenRevocationStorage is the revocation list of session tokens.
type TokenRevocationStorage interface {
	// Revoke records token as revoked for ttl.
	Revoke(ctx context.Context, token string, ttl time.Duration) error

	// IsRevoked reports whether token has been revoked and the entry has not
	// expired yet.
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// RevocationPurger deletes expired revocation entries from backends that do
// not expire them on their own.
type RevocationPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
