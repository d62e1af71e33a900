// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/google/uuid"

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Message string `json:"message"`
	// Field names the first invalid input field for validation errors.
	Field string `json:"field,omitempty"`
	// Details carries diagnostic text for internal errors.
	Details string `json:"details,omitempty"`
}

// MessageResponse is a body carrying only a human-readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse is returned by register and login.
type UserResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

// IdentityResponse is returned by the current-session endpoint.
type IdentityResponse struct {
	User Identity `json:"user"`
}

// AddressesResponse carries an account's address list.
type AddressesResponse struct {
	Message   string    `json:"message,omitempty"`
	Addresses Addresses `json:"addresses"`
}

// AddressResponse is returned after an address has been appended.
type AddressResponse struct {
	Message          string     `json:"message"`
	Address          Address    `json:"address"`
	DefaultAddressID *uuid.UUID `json:"defaultAddressId,omitempty"`
}

// ProductResponse wraps a single product.
type ProductResponse struct {
	Message string `json:"message,omitempty"`
	Product any    `json:"product"`
}
