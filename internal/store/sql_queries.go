// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-storefront/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

const (
	createUser = `INSERT INTO users (id, username, email, password_hash, first_name, last_name, phone, role, addresses)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    RETURNING id, username, email, password_hash, first_name, last_name, phone, role, addresses, created_at, updated_at;`

	findUserByUsernameOrEmail = `SELECT id, username, email, password_hash, first_name, last_name, phone, role, addresses, created_at, updated_at
    FROM users
    WHERE (username = $1 AND $1 <> '') OR (email = $2 AND $2 <> '')
    LIMIT 1;`

	findUserByID = `SELECT id, username, email, password_hash, first_name, last_name, phone, role, addresses, created_at, updated_at
    FROM users
    WHERE id = $1;`

	selectAddressesForUpdate = `SELECT addresses
    FROM users
    WHERE id = $1
    FOR UPDATE;`

	updateAddresses = `UPDATE users
    SET addresses = $2, updated_at = NOW()
    WHERE id = $1;`

	insertRevokedToken = `INSERT INTO revoked_tokens (token_digest, expires_at)
    VALUES ($1, $2)
    ON CONFLICT (token_digest) DO UPDATE SET expires_at = GREATEST(revoked_tokens.expires_at, EXCLUDED.expires_at);`

	findRevokedToken = `SELECT EXISTS (
        SELECT 1 FROM revoked_tokens WHERE token_digest = $1 AND expires_at > $2
    );`

	purgeRevokedTokens = `DELETE FROM revoked_tokens
    WHERE expires_at <= $1;`
)

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// productColumns are selected, in scan order, by every product query.
var productColumns = []string{
	"p.id",
	"p.title",
	"p.description",
	"p.price_amount",
	"p.price_currency",
	"p.seller_id",
	"p.images",
	"p.created_at",
}

// buildInsertProductQuery builds the INSERT of a product returning the
// stored row.
func buildInsertProductQuery(_ context.Context, product models.Product) (string, []any, error) {
	query, args, err := psql.
		Insert("products").
		Columns("id", "title", "description", "price_amount", "price_currency", "seller_id", "images").
		Values(product.ID, product.Title, product.Description, product.Price.Amount, string(product.Price.Currency), product.Seller, product.Images).
		Suffix("RETURNING id, title, description, price_amount, price_currency, seller_id, images, created_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSelectProductByIDQuery selects one product together with the display
// columns of its seller.
func buildSelectProductByIDQuery(_ context.Context, id uuid.UUID) (string, []any, error) {
	columns := append(append([]string{}, productColumns...),
		"u.username",
		"u.email",
		"u.first_name",
		"u.last_name",
	)

	query, args, err := psql.
		Select(columns...).
		From("products p").
		LeftJoin("users u ON u.id = p.seller_id").
		Where(sq.Eq{"p.id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildListProductsQuery selects one page of products ordered by creation.
func buildListProductsQuery(_ context.Context, page models.PageRequest) (string, []any, error) {
	if page.Page < 1 || page.Limit < 1 {
		return "", nil, fmt.Errorf("%w: invalid page %d or limit %d", ErrBuildingSQLQuery, page.Page, page.Limit)
	}

	query, args, err := psql.
		Select(productColumns...).
		From("products p").
		OrderBy("p.created_at ASC", "p.id ASC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset())).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildCountProductsQuery counts all products.
func buildCountProductsQuery(_ context.Context) (string, []any, error) {
	query, args, err := psql.
		Select("COUNT(*)").
		From("products").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
