// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is the access level of an account. It is embedded into every issued
// session token and checked by role-gated routes.
type Role string

const (
	// RoleUser is the default role assigned at registration.
	RoleUser Role = "user"
	// RoleSeller may create products.
	RoleSeller Role = "seller"
	// RoleAdmin is never assigned through registration; it is only recognised
	// by route gating.
	RoleAdmin Role = "admin"
)

// FullName holds the display name parts of an account.
type FullName struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// User represents an account entity used for authentication and authorization.
// It contains identity attributes, profile data and the embedded address book.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the account.
	ID uuid.UUID `json:"id"`

	// Username is the unique login name.
	Username string `json:"username"`

	// Email is the unique e-mail address. It may be used instead of Username
	// during login.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the password.
	// It is write-only and never serialized to API responses.
	PasswordHash string `json:"-"`

	// FullName is the first/last name pair shown in UI.
	FullName FullName `json:"fullName"`

	// Phone is the contact phone number.
	Phone string `json:"phone"`

	// Role is the access level of the account.
	Role Role `json:"role"`

	// Addresses is the ordered, owned list of delivery addresses.
	Addresses Addresses `json:"addresses"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp of the last account mutation.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Identity returns the token-facing subset of the account.
func (u User) Identity() Identity {
	return Identity{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}

// Identity is the authenticated principal resolved from a session token.
// It is attached to the request context by the auth middleware.
type Identity struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     Role      `json:"role"`
}
