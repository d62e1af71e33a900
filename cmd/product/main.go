// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command product runs the catalogue service: product creation with image
// upload, lookup and paginated listing.
package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-storefront/internal/adapter"
	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/handler"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/server"
	"github.com/MKhiriev/go-storefront/internal/service"
	"github.com/MKhiriev/go-storefront/internal/store"
	"github.com/MKhiriev/go-storefront/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("product")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	imageHost, err := adapter.NewImageKitAdapter(cfg.Adapter.ImageKit, log.WithComponent("adapter.imagekit"))
	if err != nil {
		log.Fatal().Err(err).Msg("error creating image host adapter")
	}

	services := service.NewProductServices(storages, imageHost, *cfg, log)

	handlers, err := handler.NewHandlers(services, *cfg, log.WithComponent("http"))
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers.HTTP.ProductRoutes(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	bg := workers.NewWorkers(storages, cfg.Workers, log)
	bg.Run(ctx)

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}

	cancel()
	bg.Wait()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
