// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-storefront/models"
	"github.com/go-playground/validator/v10"
)

// Field names reported in [FieldError.Field] for product payloads.
const (
	// FieldRequired checks that both title and price are present. It is
	// reported under FieldTitle.
	FieldRequired    = "required"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldCurrency    = "currency"

	FieldPage  = "page"
	FieldLimit = "limit"
)

// MaxPageLimit caps the page size of product listings.
const MaxPageLimit = 100

// currencyTag is the oneof rule built from models.Currencies.
var currencyTag = func() string {
	codes := make([]string, len(models.Currencies))
	for i, c := range models.Currencies {
		codes[i] = string(c)
	}
	return "omitempty,oneof=" + strings.Join(codes, " ")
}()

// currencyMessage lists the accepted codes, e.g. "INR, USD, ...".
var currencyMessage = func() string {
	codes := make([]string, len(models.Currencies))
	for i, c := range models.Currencies {
		codes[i] = string(c)
	}
	return "Currency must be one of: " + strings.Join(codes, ", ")
}()

// ProductValidator implements [Validator] for CreateProductRequest and
// PageRequest, as values or pointers.
type ProductValidator struct {
	validate *validator.Validate
}

// NewProductValidator constructs a new ProductValidator
// and returns it as the Validator interface.
func NewProductValidator() Validator {
	return &ProductValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate dispatches on the dynamic type of obj. Returns ErrUnsupportedType
// for anything else.
func (v *ProductValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateProductRequest:
		return v.validateCreateProduct(ctx, value, fields...)
	case *models.CreateProductRequest:
		return v.validateCreateProduct(ctx, *value, fields...)

	case models.PageRequest:
		return v.validatePage(ctx, value, fields...)
	case *models.PageRequest:
		return v.validatePage(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// ParsePrice converts the textual price of a product form into an amount.
// Non-finite values are rejected.
func ParsePrice(raw string) (float64, bool) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, false
	}
	return amount, true
}

// validateCreateProduct checks presence of title and price first, then the
// title and description bounds, the price amount and the currency code.
func (v *ProductValidator) validateCreateProduct(ctx context.Context, req models.CreateProductRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRequired, FieldTitle, FieldDescription, FieldPrice, FieldCurrency}
	}

	for _, f := range fields {
		switch f {
		case FieldRequired:
			if req.Title == "" || req.Price == "" {
				return fieldError(FieldTitle, "Title and price are required")
			}
		case FieldTitle:
			if v.validate.VarCtx(ctx, req.Title, "min=3,max=100") != nil {
				return fieldError(f, "Title must be between 3 and 100 characters")
			}
		case FieldDescription:
			if v.validate.VarCtx(ctx, req.Description, "max=500") != nil {
				return fieldError(f, "Description must not exceed 500 characters")
			}
		case FieldPrice:
			amount, ok := ParsePrice(req.Price)
			if !ok || v.validate.VarCtx(ctx, amount, "gte=0.01") != nil {
				return fieldError(f, "Price must be a positive number")
			}
		case FieldCurrency:
			if v.validate.VarCtx(ctx, req.Currency, currencyTag) != nil {
				return fieldError(f, currencyMessage)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePage checks offset pagination parameters after defaults have been
// applied.
func (v *ProductValidator) validatePage(ctx context.Context, req models.PageRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPage, FieldLimit}
	}

	for _, f := range fields {
		switch f {
		case FieldPage:
			if v.validate.VarCtx(ctx, req.Page, "gte=1") != nil {
				return fieldError(f, "page must be a positive integer")
			}
			if req.Limit > 0 && req.Page-1 > math.MaxInt/req.Limit {
				return fieldError(f, "page is out of range")
			}
		case FieldLimit:
			if v.validate.VarCtx(ctx, req.Limit, "gte=1,lte="+strconv.Itoa(MaxPageLimit)) != nil {
				return fieldError(f, "limit must be between 1 and "+strconv.Itoa(MaxPageLimit))
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
