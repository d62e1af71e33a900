// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidJSON is returned when a request body is not valid JSON.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidForm is returned when a product form cannot be parsed.
	ErrInvalidForm = errors.New("invalid form data")

	// ErrNoIdentity is returned when a protected handler runs without an
	// identity in the request context.
	ErrNoIdentity = errors.New("no identity in request context")
)
