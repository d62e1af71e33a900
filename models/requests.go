// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	FullName FullName `json:"fullName"`
	Phone    string   `json:"phone"`
	// Role is optional; an empty value means RoleUser.
	Role Role `json:"role,omitempty"`
}

// LoginRequest is the login payload. Either Username or Email identifies the
// account.
type LoginRequest struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

// AddressRequest is the payload for appending an address.
type AddressRequest struct {
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	Pincode   string `json:"pincode"`
	Country   string `json:"country"`
	IsDefault bool   `json:"isDefault,omitempty"`
}

// CreateProductRequest is the product creation payload as received from a
// form. Price is kept as text so that non-numeric input can be reported as a
// validation error.
type CreateProductRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price"`
	Currency    string `json:"currency,omitempty"`
	// Seller is the fallback seller id accepted only when body-seller
	// resolution is enabled.
	Seller string `json:"seller,omitempty"`
}

// PageRequest holds offset pagination parameters.
type PageRequest struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Offset returns the number of records to skip.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// UploadFile is one in-memory file attached to a product creation request.
type UploadFile struct {
	Name        string
	ContentType string
	Data        []byte
}
