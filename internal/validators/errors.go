// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrValidation is the sentinel every *FieldError unwraps to.
	ErrValidation = errors.New("validation error")
)

// FieldError reports the first input field that failed validation together
// with a human-readable message.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// Unwrap makes errors.Is(err, ErrValidation) hold for every FieldError.
func (e *FieldError) Unwrap() error {
	return ErrValidation
}

func fieldError(field, message string) error {
	return &FieldError{Field: field, Message: message}
}
