// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client used by the
// outbound adapters. It embeds *resty.Client to expose all of its methods
// directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://upload.imagekit.io", 30*time.Second)
//	resp, err := client.R().Get("/api/v1/files")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with its own connection pool,
// configured with baseURL and a per-request timeout. A zero timeout leaves
// requests unbounded.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().SetBaseURL(baseURL)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
