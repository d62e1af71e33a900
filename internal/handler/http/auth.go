// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/utils"
	"github.com/MKhiriev/go-storefront/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, r, err, "")
		return
	}

	user, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		writeError(w, r, err, "Internal server error")
		return
	}

	if !h.startSession(w, r, user) {
		return
	}

	log.Info().Str("user_id", user.ID.String()).Msg("user registered")
	utils.WriteJSON(w, models.UserResponse{Message: "User registered successfully", User: user}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, r, err, "")
		return
	}

	user, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err, "Internal server error")
		return
	}

	if !h.startSession(w, r, user) {
		return
	}

	log.Info().Str("user_id", user.ID.String()).Msg("user successfully logged in")
	utils.WriteJSON(w, models.UserResponse{Message: "Login successful", User: user}, http.StatusOK)
}

// startSession issues a token for user and sets the session cookie. It
// reports whether the response may continue.
func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, user models.User) bool {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeError(w, r, err, "Internal server error")
		return false
	}

	utils.SetTokenCookie(w, token.SignedString, h.settings.CookieMaxAge, h.settings.CookieInsecure)
	return true
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	utils.WriteJSON(w, models.IdentityResponse{User: identity}, http.StatusOK)
}

// logout clears the session cookie. A token found in the cookie is revoked on
// a best-effort basis; revocation failures never fail the request.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if cookie, err := r.Cookie(utils.TokenCookieName); err == nil && cookie.Value != "" {
		if err := h.services.AuthService.RevokeToken(r.Context(), cookie.Value); err != nil {
			log.Err(err).Msg("token revocation failed")
		}
	}

	utils.ClearTokenCookie(w, h.settings.CookieInsecure)
	utils.WriteJSON(w, models.MessageResponse{Message: "Logged out successfully"}, http.StatusOK)
}

// readJSON decodes the request body into dst. Malformed input is reported as
// ErrInvalidJSON.
func readJSON(r *http.Request, dst any) error {
	if err := utils.ReadJSON(r, dst); err != nil {
		if errors.Is(err, utils.ErrEmptyBody) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

func identityFromRequest(r *http.Request) (models.Identity, error) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		return models.Identity{}, ErrNoIdentity
	}
	return identity, nil
}
