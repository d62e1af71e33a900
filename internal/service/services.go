// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-storefront/internal/adapter"
	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/store"
)

// Services bundles the use cases served by one binary. Fields that a binary
// does not serve stay nil.
type Services struct {
	AuthService    AuthService
	AddressService AddressService
	ProductService ProductService
}

// NewAuthServices builds the services of the auth binary.
func NewAuthServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, storages.TokenRevocationStorage, cfg.App, logger.WithComponent("service.auth")),
		AddressService: NewAddressService(storages.UserRepository, logger.WithComponent("service.address")),
	}
}

// NewProductServices builds the services of the product binary. The auth
// service is included to verify session tokens on protected routes.
func NewProductServices(storages *store.Storages, imageHost adapter.ImageHost, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, storages.TokenRevocationStorage, cfg.App, logger.WithComponent("service.auth")),
		ProductService: NewProductService(storages.ProductRepository, imageHost, logger.WithComponent("service.product")),
	}
}
