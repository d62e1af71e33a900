// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("image host internal error")

	ErrEmptyUploadURL    = errors.New("empty upload url")
	ErrEmptyPrivateKey   = errors.New("empty image host private key")
	ErrEmptyFile         = errors.New("empty file")
	ErrMalformedResponse = errors.New("malformed upload response")
)
