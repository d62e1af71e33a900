// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation and
// enforcement of business rules across the application.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//
// Two implementations are provided: [NewAccountValidator] checks the
// registration, login and address payloads of the auth service and
// [NewProductValidator] checks product creation and pagination input.
// Both stop at the first failing field, in declared field order, and report
// it as a [*FieldError].
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations never touch storage.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
