// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/go-storefront/models"
	"github.com/go-playground/validator/v10"
)

// Field names reported in [FieldError.Field] for account payloads.
const (
	FieldUsername  = "username"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldFirstName = "fullName.firstName"
	FieldLastName  = "fullName.lastName"
	FieldPhone     = "phone"
	FieldRole      = "role"

	// FieldLoginIdentity checks that a login payload names the account by
	// username or email. It is reported under FieldUsername.
	FieldLoginIdentity = "login_identity"
	// FieldLoginPassword checks only that a password was supplied.
	FieldLoginPassword = "login_password"

	FieldStreet  = "street"
	FieldCity    = "city"
	FieldState   = "state"
	FieldPincode = "pincode"
	FieldCountry = "country"
)

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// AccountValidator implements [Validator] for the auth service payloads:
// RegisterRequest, LoginRequest and AddressRequest, as values or pointers.
type AccountValidator struct {
	validate *validator.Validate
}

// NewAccountValidator constructs a new AccountValidator
// and returns it as the Validator interface.
func NewAccountValidator() Validator {
	return &AccountValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate dispatches on the dynamic type of obj. Returns ErrUnsupportedType
// for anything else.
func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLogin(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(ctx, *value, fields...)

	case models.AddressRequest:
		return v.validateAddress(ctx, value, fields...)
	case *models.AddressRequest:
		return v.validateAddress(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateRegister checks, in order: username, email, password, first name,
// last name, phone and role.
func (v *AccountValidator) validateRegister(ctx context.Context, req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword, FieldFirstName, FieldLastName, FieldPhone, FieldRole}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if v.validate.VarCtx(ctx, req.Username, "min=3") != nil {
				return fieldError(f, "Username must be at least 3 characters long")
			}
		case FieldEmail:
			if v.validate.VarCtx(ctx, req.Email, "required,email") != nil {
				return fieldError(f, "Invalid email address")
			}
		case FieldPassword:
			if v.validate.VarCtx(ctx, req.Password, "min=6") != nil {
				return fieldError(f, "Password must be at least 6 characters long")
			}
			// bcrypt counts bytes, validator counts runes
			if len(req.Password) > MaxPasswordBytes {
				return fieldError(f, "Password must be at most 72 bytes long")
			}
		case FieldFirstName:
			if v.validate.VarCtx(ctx, req.FullName.FirstName, "required") != nil {
				return fieldError(f, "First name is required")
			}
		case FieldLastName:
			if v.validate.VarCtx(ctx, req.FullName.LastName, "required") != nil {
				return fieldError(f, "Last name is required")
			}
		case FieldPhone:
			if v.validate.VarCtx(ctx, req.Phone, "min=10") != nil {
				return fieldError(f, "Phone number must be at least 10 digits long")
			}
		case FieldRole:
			if v.validate.VarCtx(ctx, string(req.Role), "omitempty,oneof=user seller") != nil {
				return fieldError(f, "Role must be either user or seller")
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateLogin requires a username or an email, a well formed email when
// one is given, and a non-empty password.
func (v *AccountValidator) validateLogin(ctx context.Context, req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLoginIdentity, FieldEmail, FieldLoginPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldLoginIdentity:
			if req.Username == "" && req.Email == "" {
				return fieldError(FieldUsername, "Either username or email is required")
			}
		case FieldEmail:
			if v.validate.VarCtx(ctx, req.Email, "omitempty,email") != nil {
				return fieldError(f, "Invalid email address")
			}
		case FieldLoginPassword:
			if v.validate.VarCtx(ctx, req.Password, "required") != nil {
				return fieldError(FieldPassword, "Password is required")
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateAddress requires street, city, state and country, and a pincode of
// at least five characters.
func (v *AccountValidator) validateAddress(ctx context.Context, req models.AddressRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldStreet, FieldCity, FieldState, FieldPincode, FieldCountry}
	}

	for _, f := range fields {
		switch f {
		case FieldStreet:
			if v.validate.VarCtx(ctx, req.Street, "required") != nil {
				return fieldError(f, "Street is required")
			}
		case FieldCity:
			if v.validate.VarCtx(ctx, req.City, "required") != nil {
				return fieldError(f, "City is required")
			}
		case FieldState:
			if v.validate.VarCtx(ctx, req.State, "required") != nil {
				return fieldError(f, "State is required")
			}
		case FieldPincode:
			if v.validate.VarCtx(ctx, req.Pincode, "min=5") != nil {
				return fieldError(f, "pincode must be at least 5 characters long")
			}
		case FieldCountry:
			if v.validate.VarCtx(ctx, req.Country, "required") != nil {
				return fieldError(f, "Country is required")
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
