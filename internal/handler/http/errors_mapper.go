// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/service"
	"github.com/MKhiriev/go-storefront/internal/utils"
	"github.com/MKhiriev/go-storefront/internal/validators"
	"github.com/MKhiriev/go-storefront/models"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// errorMappings is matched top to bottom; wrapped sentinels come before the
// sentinel they wrap.
var errorMappings = []errorMapping{
	{ErrInvalidJSON, http.StatusBadRequest, "Invalid JSON was passed"},
	{ErrInvalidForm, http.StatusBadRequest, "Invalid form data"},
	{utils.ErrEmptyBody, http.StatusBadRequest, "Request body is empty"},
	{ErrNoIdentity, http.StatusUnauthorized, "Authentication token is missing"},

	{service.ErrUserAlreadyExists, http.StatusBadRequest, "Username or email already exists"},
	{service.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{service.ErrWrongPassword, http.StatusUnauthorized, "Invalid credentials"},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusForbidden, "Invalid or expired token"},
	{service.ErrTokenRevoked, http.StatusUnauthorized, "Token has been revoked"},
	{service.ErrInsufficientRole, http.StatusForbidden, "Access denied: insufficient permissions"},

	{service.ErrAddressNotFound, http.StatusNotFound, "Address not found"},

	{service.ErrProductNotFound, http.StatusNotFound, "Product not found"},
	{service.ErrSellerRequired, http.StatusUnauthorized, "Seller ID is required"},
	{service.ErrTooManyFiles, http.StatusBadRequest, "Too many files"},
	{service.ErrFileTooLarge, http.StatusBadRequest, "File too large"},
	{service.ErrFileNotAnImage, http.StatusBadRequest, "Only image files are allowed"},
	{service.ErrEmptyFile, http.StatusBadRequest, "File is empty"},
	{service.ErrInvalidUpload, http.StatusBadRequest, "Invalid file upload"},
}

// statusFromError returns the response status and message for err.
// Unknown errors map to 500 with an empty message.
func statusFromError(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, ""
}

// writeError answers with the JSON error body matching err. internalMessage
// is used for 500 responses, which also carry the error text in details.
func writeError(w http.ResponseWriter, r *http.Request, err error, internalMessage string) {
	log := logger.FromRequest(r)

	var fieldErr *validators.FieldError
	if errors.As(err, &fieldErr) {
		log.Debug().Str("field", fieldErr.Field).Msg(fieldErr.Message)
		utils.WriteJSON(w, models.ErrorResponse{Message: fieldErr.Message, Field: fieldErr.Field}, http.StatusBadRequest)
		return
	}

	status, message := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg(internalMessage)
		utils.WriteJSON(w, models.ErrorResponse{Message: internalMessage, Details: err.Error()}, status)
		return
	}

	log.Debug().Err(err).Int("status", status).Send()
	utils.WriteJSON(w, models.ErrorResponse{Message: message}, status)
}
