// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for the external services the storefront
// depends on.
//
// The primary abstraction is [ImageHost], which decouples product creation
// from the image CDN. The package ships an ImageKit implementation
// ([NewImageKitAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401, [ErrBadGateway] for 502).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-storefront/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/image_host_mock.go -package=mock

// ImageHost stores product images on a CDN.
type ImageHost interface {
	// Upload stores one file under a fresh random name and returns its public
	// URL, thumbnail URL and host file id. The thumbnail falls back to the URL
	// when the host does not return one. Returns an error if the request
	// fails or the host responds with a non-2xx status.
	Upload(ctx context.Context, file models.UploadFile) (models.Image, error)
}
