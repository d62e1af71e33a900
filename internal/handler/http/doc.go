// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the storefront.
//
// It exposes the route trees of the auth and product services, their request
// handlers and the middleware they share. Request tracing, access logging,
// response compression and session authentication are handled in this
// package before requests are delegated to the service layer.
package http
