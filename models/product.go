// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Currency is an ISO-4217 code from the closed set accepted for product prices.
type Currency string

const (
	CurrencyINR Currency = "INR"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyJPY Currency = "JPY"
	CurrencyAUD Currency = "AUD"

	// DefaultCurrency is applied when a product is created without a currency.
	DefaultCurrency = CurrencyINR
)

// Currencies lists every accepted price currency.
var Currencies = []Currency{CurrencyINR, CurrencyUSD, CurrencyEUR, CurrencyGBP, CurrencyJPY, CurrencyAUD}

// Price is a positive amount in one of the supported currencies.
type Price struct {
	Amount   float64  `json:"amount"`
	Currency Currency `json:"currency"`
}

// Image is a product picture hosted by the image CDN. It is created only as a
// result of a successful upload and never mutated afterwards.
type Image struct {
	// URL is the public URL of the original upload.
	URL string `json:"url"`
	// Thumbnail is the CDN thumbnail URL; equals URL when the host has none.
	Thumbnail string `json:"thumbnail"`
	// ID is the file identifier assigned by the image host.
	ID string `json:"id"`
}

// Images is the ordered image list of a product, persisted as JSONB.
type Images []Image

// Value implements driver.Valuer. A nil list is stored as an empty JSON array.
func (i Images) Value() (driver.Value, error) {
	if i == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(i)
}

// Scan implements sql.Scanner for JSONB input.
func (i *Images) Scan(src any) error {
	return scanJSONList(src, (*[]Image)(i))
}

// Product is a listing created by a seller.
type Product struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       Price     `json:"price"`
	// Seller references the owning account.
	Seller    uuid.UUID `json:"seller"`
	Images    Images    `json:"images"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the Product model.
func (p Product) TableName() string {
	return "products"
}

// SellerInfo is the display subset of the seller account returned together
// with a single product.
type SellerInfo struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username,omitempty"`
	Email    string    `json:"email,omitempty"`
	FullName FullName  `json:"fullName"`
}

// ProductDetails is a product with its seller reference resolved. The
// resolved Seller replaces the bare id of the embedded Product in JSON.
type ProductDetails struct {
	Product
	Seller SellerInfo `json:"seller"`
}

// ProductPage is one page of the product listing.
type ProductPage struct {
	Products    []Product `json:"products"`
	Total       int       `json:"total"`
	TotalPages  int       `json:"totalPages"`
	CurrentPage int       `json:"currentPage"`
}
