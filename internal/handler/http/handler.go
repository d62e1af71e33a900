// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/service"
)

// Settings are the transport options of the handlers.
type Settings struct {
	// CookieMaxAge is the lifetime of the token cookie.
	CookieMaxAge time.Duration
	// CookieInsecure drops the Secure cookie attribute.
	CookieInsecure bool
	// EnforceRevocation rejects revoked tokens in the auth middleware.
	EnforceRevocation bool
	// AllowBodySeller accepts a seller id from the product form when the
	// request carries no session token.
	AllowBodySeller bool
	// RequestTimeout cancels slow requests; zero disables it.
	RequestTimeout time.Duration
}

// NewSettings extracts the handler settings from cfg.
func NewSettings(cfg config.StructuredConfig) Settings {
	return Settings{
		CookieMaxAge:      cfg.App.CookieMaxAge,
		CookieInsecure:    cfg.App.CookieInsecure,
		EnforceRevocation: cfg.App.EnforceRevocation,
		AllowBodySeller:   cfg.App.AllowBodySeller,
		RequestTimeout:    cfg.Server.RequestTimeout,
	}
}

type Handler struct {
	services *service.Services
	settings Settings

	logger *logger.Logger
}

func NewHandler(services *service.Services, settings Settings, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		settings: settings,
		logger:   logger,
	}
}
