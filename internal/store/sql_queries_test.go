// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-storefront/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInsertProductQuery(t *testing.T) {
	product := testProduct()

	query, args, err := buildInsertProductQuery(context.Background(), product)

	require.NoError(t, err)
	assert.Equal(t,
		"INSERT INTO products (id,title,description,price_amount,price_currency,seller_id,images) "+
			"VALUES ($1,$2,$3,$4,$5,$6,$7) "+
			"RETURNING id, title, description, price_amount, price_currency, seller_id, images, created_at",
		query)
	require.Len(t, args, 7)
	assert.Equal(t, product.ID, args[0])
	assert.Equal(t, "USD", args[4])
	assert.Equal(t, product.Images, args[6])
}

func TestBuildSelectProductByIDQuery(t *testing.T) {
	id := uuid.New()

	query, args, err := buildSelectProductByIDQuery(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t,
		"SELECT p.id, p.title, p.description, p.price_amount, p.price_currency, p.seller_id, p.images, p.created_at, "+
			"u.username, u.email, u.first_name, u.last_name "+
			"FROM products p LEFT JOIN users u ON u.id = p.seller_id WHERE p.id = $1",
		query)
	assert.Equal(t, []any{id.String()}, args)
}

func TestBuildListProductsQuery(t *testing.T) {
	tests := []struct {
		name      string
		page      models.PageRequest
		wantQuery string
		wantErr   bool
	}{
		{
			name:      "first page",
			page:      models.PageRequest{Page: 1, Limit: 10},
			wantQuery: "ORDER BY p.created_at ASC, p.id ASC LIMIT 10 OFFSET 0",
		},
		{
			name:      "third page",
			page:      models.PageRequest{Page: 3, Limit: 25},
			wantQuery: "ORDER BY p.created_at ASC, p.id ASC LIMIT 25 OFFSET 50",
		},
		{
			name:    "zero page",
			page:    models.PageRequest{Page: 0, Limit: 10},
			wantErr: true,
		},
		{
			name:    "zero limit",
			page:    models.PageRequest{Page: 1, Limit: 0},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListProductsQuery(context.Background(), tt.page)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrBuildingSQLQuery)
				return
			}

			require.NoError(t, err)
			assert.Contains(t, query, "FROM products p")
			assert.Contains(t, query, tt.wantQuery)
			assert.Empty(t, args)
		})
	}
}

func TestBuildCountProductsQuery(t *testing.T) {
	query, args, err := buildCountProductsQuery(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "SELECT COUNT(*) FROM products", query)
	assert.Empty(t, args)
}
