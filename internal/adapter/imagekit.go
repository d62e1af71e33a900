// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/utils"
	"github.com/MKhiriev/go-storefront/models"
)

// imageKitUploadPath is the ImageKit upload API endpoint relative to the
// upload base URL.
const imageKitUploadPath = "/api/v1/files/upload"

type imageKitAdapter struct {
	client *utils.HTTPClient
	names  *utils.UUIDGenerator

	folder string

	logger *logger.Logger
}

// imageKitUploadResponse is the subset of the ImageKit upload response the
// storefront keeps.
type imageKitUploadResponse struct {
	FileID       string `json:"fileId"`
	Name         string `json:"name"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

// NewImageKitAdapter constructs an ImageKit implementation of [ImageHost].
// It normalises and validates cfg.UploadURL and configures the underlying
// HTTP client with the resolved base URL, request timeout and the private key
// used for basic authentication.
//
// Returns an error if cfg.UploadURL is empty or cannot be parsed as a valid
// URL, or if cfg.PrivateKey is empty.
func NewImageKitAdapter(cfg config.ImageKit, logger *logger.Logger) (ImageHost, error) {
	baseURL, err := normalizeBaseURL(cfg.UploadURL)
	if err != nil {
		return nil, fmt.Errorf("invalid image host upload url: %w", err)
	}
	if strings.TrimSpace(cfg.PrivateKey) == "" {
		return nil, ErrEmptyPrivateKey
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	// ImageKit authenticates uploads with the private key as user name and
	// an empty password.
	client.SetBasicAuth(cfg.PrivateKey, "")

	logger.Debug().Str("upload_url", baseURL).Str("folder", cfg.Folder).Msg("creating imagekit adapter")

	return &imageKitAdapter{
		client: client,
		names:  utils.NewUUIDGenerator(),
		folder: cfg.Folder,
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyUploadURL
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Upload implements [ImageHost]. It sends file as multipart form data to
// POST /api/v1/files/upload under a random name that keeps the original
// extension.
func (a *imageKitAdapter) Upload(ctx context.Context, file models.UploadFile) (models.Image, error) {
	log := logger.FromContext(ctx)

	if len(file.Data) == 0 {
		return models.Image{}, ErrEmptyFile
	}

	fileName := a.fileName(file.Name)
	contentType := file.ContentType
	if contentType == "" {
		contentType = http.DetectContentType(file.Data)
	}

	var result imageKitUploadResponse
	req := a.client.R().
		SetContext(ctx).
		SetMultipartField("file", fileName, contentType, bytes.NewReader(file.Data)).
		SetFormData(map[string]string{
			"fileName":          fileName,
			"useUniqueFileName": "false",
		}).
		SetResult(&result)
	if a.folder != "" {
		req.SetFormData(map[string]string{"folder": a.folder})
	}

	resp, err := req.Post(imageKitUploadPath)
	if err != nil {
		log.Err(err).Str("func", "*imageKitAdapter.Upload").Str("file_name", fileName).Msg("upload request failed")
		return models.Image{}, fmt.Errorf("upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "*imageKitAdapter.Upload").Int("status", resp.StatusCode()).Msg("image host rejected upload")
		return models.Image{}, err
	}

	if result.URL == "" {
		return models.Image{}, fmt.Errorf("%w: no url in response", ErrMalformedResponse)
	}

	image := models.Image{
		URL:       result.URL,
		Thumbnail: result.ThumbnailURL,
		ID:        result.FileID,
	}
	if image.Thumbnail == "" {
		image.Thumbnail = image.URL
	}

	log.Debug().
		Str("func", "*imageKitAdapter.Upload").
		Str("file_id", image.ID).
		Str("file_name", fileName).
		Msg("image uploaded")

	return image, nil
}

func (a *imageKitAdapter) fileName(original string) string {
	return a.names.Generate() + strings.ToLower(filepath.Ext(original))
}
