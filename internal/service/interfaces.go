// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the storefront use cases on top of the store
// and adapter layers: account registration and login, session tokens, the
// address book and product management.
//
// Services trim and validate their input, translate store errors into the
// sentinel values of errors.go and never write HTTP responses.
package service

import (
	"context"

	"github.com/MKhiriev/go-storefront/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService handles accounts and the session token lifecycle.
type AuthService interface {
	// RegisterUser validates req, rejects a taken username or email with
	// [ErrUserAlreadyExists] and stores the account with a bcrypt hash.
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	// Login looks the account up by username or email and checks the
	// password.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	// CreateToken issues a signed session token for user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	// ParseToken verifies signature, issuer and expiry of tokenString.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// RevokeToken puts tokenString on the revocation list.
	RevokeToken(ctx context.Context, tokenString string) error
	// IsTokenRevoked reports whether tokenString is on the revocation list.
	IsTokenRevoked(ctx context.Context, tokenString string) (bool, error)
}

// AddressService manages the address book embedded in an account.
type AddressService interface {
	GetAddresses(ctx context.Context, userID uuid.UUID) (models.Addresses, error)
	// AddAddress appends an address; a default address clears the flag on
	// every other address of the account.
	AddAddress(ctx context.Context, userID uuid.UUID, req models.AddressRequest) (models.Address, error)
	// DeleteAddress removes one address and returns the remaining list.
	DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) (models.Addresses, error)
}

// ProductService creates and reads products.
type ProductService interface {
	// CreateProduct uploads files concurrently and stores the product owned
	// by sellerID. Images keep the order of files.
	CreateProduct(ctx context.Context, sellerID uuid.UUID, req models.CreateProductRequest, files []models.UploadFile) (models.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (models.ProductDetails, error)
	// ListProducts returns one page in creation order. Zero page or limit
	// fall back to the defaults.
	ListProducts(ctx context.Context, page models.PageRequest) (models.ProductPage, error)
}
