// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-storefront/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// newRouter returns a router with the middleware shared by both services and
// the health route.
func (h *Handler) newRouter() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, withGZip)
	if h.settings.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.settings.RequestTimeout))
	}

	router.Get("/api/health", h.health)

	return router
}

// AuthRoutes is the route tree of the auth service.
func (h *Handler) AuthRoutes() *chi.Mux {
	router := h.newRouter()

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/auth/logout", h.logout)
	})

	// routes for any authenticated user
	router.Group(func(r chi.Router) {
		r.Use(h.auth())

		r.Get("/api/auth/me", h.me)
		r.Get("/api/auth/users/me/addresses", h.getAddresses)
		r.Post("/api/auth/users/me/addresses", h.addAddress)
		r.Delete("/api/auth/users/me/addresses/{addressId}", h.deleteAddress)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// ProductRoutes is the route tree of the product service.
func (h *Handler) ProductRoutes() *chi.Mux {
	router := h.newRouter()

	router.Group(func(r chi.Router) {
		r.Get("/api/products", h.listProducts)
		r.Get("/api/products/{id}", h.getProduct)
	})

	router.Group(func(r chi.Router) {
		if h.settings.AllowBodySeller {
			r.Use(h.optionalAuth(models.RoleSeller, models.RoleAdmin))
		} else {
			r.Use(h.auth(models.RoleSeller, models.RoleAdmin))
		}

		r.Post("/api/products", h.createProduct)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
