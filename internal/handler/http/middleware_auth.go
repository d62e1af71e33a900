// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/service"
	"github.com/MKhiriev/go-storefront/internal/utils"
	"github.com/MKhiriev/go-storefront/models"
)

// auth is an HTTP middleware that enforces session authentication.
//
// The token is read from the session cookie or the bearer header. A missing
// token is answered with 401; a token that fails signature, expiry or issuer
// checks with 403. When roles are given, the identity's role must be one of
// them or the request is answered with 403. With revocation enforcement on,
// revoked tokens are answered with 401; a failing revocation store is logged
// and the request goes through.
//
// On success the identity is stored in the request context, see
// [utils.GetIdentityFromContext].
func (h *Handler) auth(roles ...models.Role) func(http.Handler) http.Handler {
	return h.authenticate(false, roles)
}

// optionalAuth behaves like auth for requests that carry a token and lets
// token-less requests through without an identity.
func (h *Handler) optionalAuth(roles ...models.Role) func(http.Handler) http.Handler {
	return h.authenticate(true, roles)
}

func (h *Handler) authenticate(optional bool, roles []models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			tokenString, err := utils.TokenFromRequest(r)
			if err != nil {
				if optional {
					next.ServeHTTP(w, r)
					return
				}
				log.Err(err).Msg("request without token")
				writeError(w, r, ErrNoIdentity, "")
				return
			}

			ctx := r.Context()
			token, err := h.services.AuthService.ParseToken(ctx, tokenString)
			if err != nil {
				log.Err(err).Msg("error occurred during parsing token")
				writeError(w, r, service.ErrTokenIsExpiredOrInvalid, "")
				return
			}

			if h.settings.EnforceRevocation {
				revoked, err := h.services.AuthService.IsTokenRevoked(ctx, tokenString)
				switch {
				case err != nil:
					log.Err(err).Msg("revocation check failed, token accepted")
				case revoked:
					log.Warn().Str("user_id", token.Claims.UserID.String()).Msg("revoked token used")
					writeError(w, r, service.ErrTokenRevoked, "")
					return
				}
			}

			identity := token.Claims.Identity()
			if len(roles) > 0 && !slices.Contains(roles, identity.Role) {
				log.Warn().
					Str("user_id", identity.ID.String()).
					Str("role", string(identity.Role)).
					Msg("role is not allowed")
				writeError(w, r, service.ErrInsufficientRole, "")
				return
			}

			next.ServeHTTP(w, r.WithContext(utils.WithIdentity(ctx, identity)))
		})
	}
}
