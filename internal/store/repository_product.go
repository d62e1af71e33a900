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
)

// productRepository is the PostgreSQL-backed implementation of
// [ProductRepository]. Queries are assembled with squirrel.
type productRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProductRepository constructs a [ProductRepository] backed by the
// provided database connection and logger.
func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating product repository")
	return &productRepository{
		db:     db,
		logger: logger,
	}
}

func scanProduct(row rowScanner, extra ...any) (models.Product, error) {
	var (
		product  models.Product
		currency string
	)

	dest := append([]any{
		&product.ID,
		&product.Title,
		&product.Description,
		&product.Price.Amount,
		&currency,
		&product.Seller,
		&product.Images,
		&product.CreatedAt,
	}, extra...)

	if err := row.Scan(dest...); err != nil {
		return models.Product{}, err
	}
	product.Price.Currency = models.Currency(currency)

	return product, nil
}

// CreateProduct inserts product and returns the stored row.
func (r *productRepository) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertProductQuery(ctx, product)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.CreateProduct").Msg("error building query")
		return models.Product{}, err
	}

	saved, err := scanProduct(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*productRepository.CreateProduct").Msg("error inserting product")
		return models.Product{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Debug().
		Str("func", "*productRepository.CreateProduct").
		Str("product_id", saved.ID.String()).
		Int("images", len(saved.Images)).
		Msg("product saved")

	return saved, nil
}

// FindProductByID returns the product with the seller display columns
// resolved through a LEFT JOIN on users.
func (r *productRepository) FindProductByID(ctx context.Context, id uuid.UUID) (models.ProductDetails, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectProductByIDQuery(ctx, id)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.FindProductByID").Msg("error building query")
		return models.ProductDetails{}, err
	}

	var username, email, firstName, lastName sql.NullString
	product, err := scanProduct(r.db.QueryRowContext(ctx, query, args...), &username, &email, &firstName, &lastName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ProductDetails{}, ErrProductNotFound
		}
		log.Err(err).Str("func", "*productRepository.FindProductByID").Msg("error querying product")
		return models.ProductDetails{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return models.ProductDetails{
		Product: product,
		Seller: models.SellerInfo{
			ID:       product.Seller,
			Username: username.String,
			Email:    email.String,
			FullName: models.FullName{
				FirstName: firstName.String,
				LastName:  lastName.String,
			},
		},
	}, nil
}

// ListProducts returns the requested page in creation order and the total
// number of products.
func (r *productRepository) ListProducts(ctx context.Context, page models.PageRequest) ([]models.Product, int, error) {
	log := logger.FromContext(ctx)

	countQuery, countArgs, err := buildCountProductsQuery(ctx)
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err = r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*productRepository.ListProducts").Msg("error counting products")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	query, args, err := buildListProductsQuery(ctx, page)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.ListProducts").Msg("error building query")
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.ListProducts").Msg("error listing products")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	products := make([]models.Product, 0, page.Limit)
	for rows.Next() {
		product, scanErr := scanProduct(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*productRepository.ListProducts").Msg("error scanning product")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		products = append(products, product)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*productRepository.ListProducts").Msg("error iterating products")
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return products, total, nil
}
