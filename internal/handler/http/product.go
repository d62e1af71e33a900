// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/service"
	"github.com/MKhiriev/go-storefront/internal/utils"
	"github.com/MKhiriev/go-storefront/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const (
	// imagesFormField is the multipart field carrying product images.
	imagesFormField = "images"

	// maxProductBodySize bounds the whole product creation request.
	maxProductBodySize = (service.MaxUploadFiles+1)*service.MaxUploadFileSize + 1<<20

	multipartMemory = 32 << 20
)

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, maxProductBodySize)

	req, files, err := readProductForm(r)
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	sellerID, err := h.resolveSeller(r, req.Seller)
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	product, err := h.services.ProductService.CreateProduct(ctx, sellerID, req, files)
	if err != nil {
		writeError(w, r, err, "Failed to create product")
		return
	}

	log.Info().Str("product_id", product.ID.String()).Msg("product created")
	utils.WriteJSON(w, models.ProductResponse{Message: "Product created successfully", Product: product}, http.StatusCreated)
}

// resolveSeller prefers the authenticated identity. The body seller is used
// only when enabled and no identity is present.
func (h *Handler) resolveSeller(r *http.Request, bodySeller string) (uuid.UUID, error) {
	if identity, ok := utils.GetIdentityFromContext(r.Context()); ok {
		return identity.ID, nil
	}

	if !h.settings.AllowBodySeller || bodySeller == "" {
		return uuid.Nil, service.ErrSellerRequired
	}

	sellerID, err := uuid.Parse(bodySeller)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", service.ErrSellerRequired, err)
	}

	return sellerID, nil
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, service.ErrProductNotFound, "")
		return
	}

	product, err := h.services.ProductService.GetProduct(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "Failed to fetch product")
		return
	}

	utils.WriteJSON(w, models.ProductResponse{Product: product}, http.StatusOK)
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := models.PageRequest{
		Page:  queryInt(query.Get("page")),
		Limit: queryInt(query.Get("limit")),
	}

	result, err := h.services.ProductService.ListProducts(r.Context(), page)
	if err != nil {
		writeError(w, r, err, "Failed to fetch products")
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

// queryInt returns 0 for an absent parameter, so that defaults apply, and -1
// for a non-numeric one, so that validation rejects it.
func queryInt(raw string) int {
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return -1
	}
	return n
}

// readProductForm reads a product payload from a multipart form, an urlencoded
// form or a JSON body. Files are taken from the images field of multipart
// forms only.
func readProductForm(r *http.Request) (models.CreateProductRequest, []models.UploadFile, error) {
	var req models.CreateProductRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/json":
		if err := readJSON(r, &req); err != nil {
			return req, nil, err
		}
		return req, nil, nil
	case "multipart/form-data":
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			return req, nil, formError(err)
		}
	default:
		if err := r.ParseForm(); err != nil {
			return req, nil, formError(err)
		}
	}

	req = models.CreateProductRequest{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Price:       r.FormValue("price"),
		Currency:    r.FormValue("currency"),
		Seller:      r.FormValue("seller"),
	}

	if r.MultipartForm == nil {
		return req, nil, nil
	}

	headers := r.MultipartForm.File[imagesFormField]
	if len(headers) > service.MaxUploadFiles {
		return req, nil, service.ErrTooManyFiles
	}

	files := make([]models.UploadFile, 0, len(headers))
	for _, header := range headers {
		file, err := readUploadFile(header)
		if err != nil {
			return req, nil, err
		}
		files = append(files, file)
	}

	return req, files, nil
}

func readUploadFile(header *multipart.FileHeader) (models.UploadFile, error) {
	if header.Size > service.MaxUploadFileSize {
		return models.UploadFile{}, fmt.Errorf("%w: %s", service.ErrFileTooLarge, header.Filename)
	}

	f, err := header.Open()
	if err != nil {
		return models.UploadFile{}, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, service.MaxUploadFileSize+1))
	if err != nil {
		return models.UploadFile{}, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}

	return models.UploadFile{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func formError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return fmt.Errorf("%w: request exceeds %d bytes", service.ErrFileTooLarge, maxBytesErr.Limit)
	}
	return fmt.Errorf("%w: %w", ErrInvalidForm, err)
}
