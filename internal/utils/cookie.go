// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"net/http"
	"time"
)

// TokenCookieName is the name of the session cookie holding the signed token.
const TokenCookieName = "token"

// ErrNoToken is returned by TokenFromRequest when the request carries
// neither a session cookie nor a bearer header.
var ErrNoToken = errors.New("authentication token is missing")

// SetTokenCookie writes the session cookie. The cookie is HttpOnly,
// SameSite=Lax, scoped to "/" and lives for maxAge. Secure is dropped only
// when insecure is set, which is meant for plain-HTTP local runs.
func SetTokenCookie(w http.ResponseWriter, token string, maxAge time.Duration, insecure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		Expires:  time.Now().Add(maxAge),
		HttpOnly: true,
		Secure:   !insecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearTokenCookie overwrites the session cookie with an empty value that has
// already expired.
func ClearTokenCookie(w http.ResponseWriter, insecure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   !insecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// TokenFromRequest returns the session token of r. The cookie takes
// precedence over the Authorization header.
func TokenFromRequest(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(TokenCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	header := r.Header.Get("Authorization")
	if header == "" {
		return "", ErrNoToken
	}

	return ParseBearerToken(header)
}
