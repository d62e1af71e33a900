// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/MKhiriev/go-storefront/internal/service"
	"github.com/MKhiriev/go-storefront/internal/validators"
	"github.com/MKhiriev/go-storefront/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type formFile struct {
	name        string
	contentType string
	data        []byte
}

// productForm builds a multipart product creation request.
func productForm(t *testing.T, fields map[string]string, files ...formFile) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for _, f := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, imagesFormField, f.name))
		header.Set("Content-Type", f.contentType)
		part, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/products", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func testProduct(seller uuid.UUID, images models.Images) models.Product {
	return models.Product{
		ID:          uuid.MustParse("8a7b6c5d-4e3f-4a1b-9c8d-7e6f5a4b3c2d"),
		Title:       "Desk lamp",
		Description: "Warm light",
		Price:       models.Price{Amount: 1499.5, Currency: models.CurrencyINR},
		Seller:      seller,
		Images:      images,
	}
}

var productFields = map[string]string{
	"title":       "Desk lamp",
	"description": "Warm light",
	"price":       "1499.50",
}

// ─── create ───────────────────────────────────────────────────────────────────

func TestCreateProduct_WithImages(t *testing.T) {
	env := newTestEnv(t, testSettings())
	identity := testIdentity(models.RoleSeller)
	env.expectSession(identity)

	images := models.Images{
		{URL: "https://ik.imagekit.io/a.png", Thumbnail: "https://ik.imagekit.io/tr/a.png", ID: "f1"},
		{URL: "https://ik.imagekit.io/b.jpg", Thumbnail: "https://ik.imagekit.io/tr/b.jpg", ID: "f2"},
	}
	product := testProduct(identity.ID, images)

	env.product.EXPECT().
		CreateProduct(gomock.Any(), identity.ID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, req models.CreateProductRequest, files []models.UploadFile) (models.Product, error) {
			assert.Equal(t, "Desk lamp", req.Title)
			assert.Equal(t, "1499.50", req.Price)
			require.Len(t, files, 2)
			assert.Equal(t, "a.png", files[0].Name)
			assert.Equal(t, "image/png", files[0].ContentType)
			assert.Equal(t, []byte("png-bytes"), files[0].Data)
			assert.Equal(t, "b.jpg", files[1].Name)
			return product, nil
		})

	req := withSessionCookie(productForm(t, productFields,
		formFile{"a.png", "image/png", []byte("png-bytes")},
		formFile{"b.jpg", "image/jpeg", []byte("jpg-bytes")},
	))

	rec := serve(env.handler.ProductRoutes(), req)

	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody[struct {
		Message string         `json:"message"`
		Product models.Product `json:"product"`
	}](t, rec)
	assert.Equal(t, "Product created successfully", body.Message)
	assert.Equal(t, images, body.Product.Images)
	assert.Equal(t, identity.ID, body.Product.Seller)
}

func TestCreateProduct_WithoutImages(t *testing.T) {
	env := newTestEnv(t, testSettings())
	identity := testIdentity(models.RoleAdmin)
	env.expectSession(identity)

	env.product.EXPECT().
		CreateProduct(gomock.Any(), identity.ID, gomock.Any(), gomock.Len(0)).
		Return(testProduct(identity.ID, models.Images{}), nil)

	rec := serve(env.handler.ProductRoutes(), withSessionCookie(productForm(t, productFields)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"images":[]`)
}

func TestCreateProduct_JSONBody(t *testing.T) {
	env := newTestEnv(t, testSettings())
	identity := testIdentity(models.RoleSeller)
	env.expectSession(identity)

	env.product.EXPECT().
		CreateProduct(gomock.Any(), identity.ID, models.CreateProductRequest{Title: "Desk lamp", Price: "10"}, gomock.Nil()).
		Return(testProduct(identity.ID, models.Images{}), nil)

	rec := serve(env.handler.ProductRoutes(),
		withSessionCookie(jsonRequest(http.MethodPost, "/api/products", `{"title":"Desk lamp","price":"10"}`)))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateProduct_RequiresSellerRole(t *testing.T) {
	env := newTestEnv(t, testSettings())
	env.expectSession(testIdentity(models.RoleUser))

	rec := serve(env.handler.ProductRoutes(), withSessionCookie(productForm(t, productFields)))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateProduct_WithoutSession(t *testing.T) {
	env := newTestEnv(t, testSettings())

	rec := serve(env.handler.ProductRoutes(), productForm(t, productFields))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Authentication token is missing", decodeBody[models.ErrorResponse](t, rec).Message)
}

func TestCreateProduct_BodySeller(t *testing.T) {
	sellerID := uuid.MustParse("1f2e3d4c-5b6a-4978-8a7b-6c5d4e3f2a1b")

	tests := []struct {
		name       string
		allow      bool
		seller     string
		wantStatus int
	}{
		{"enabled with seller", true, sellerID.String(), http.StatusCreated},
		{"enabled without seller", true, "", http.StatusUnauthorized},
		{"enabled with malformed seller", true, "seller-42", http.StatusUnauthorized},
		{"disabled", false, sellerID.String(), http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := testSettings()
			settings.AllowBodySeller = tt.allow
			env := newTestEnv(t, settings)

			if tt.wantStatus == http.StatusCreated {
				env.product.EXPECT().
					CreateProduct(gomock.Any(), sellerID, gomock.Any(), gomock.Any()).
					Return(testProduct(sellerID, models.Images{}), nil)
			}

			fields := map[string]string{"title": "Desk lamp", "price": "10"}
			if tt.seller != "" {
				fields["seller"] = tt.seller
			}

			rec := serve(env.handler.ProductRoutes(), productForm(t, fields))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.allow && tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, "Seller ID is required", decodeBody[models.ErrorResponse](t, rec).Message)
			}
		})
	}
}

func TestCreateProduct_IdentityWinsOverBodySeller(t *testing.T) {
	settings := testSettings()
	settings.AllowBodySeller = true
	env := newTestEnv(t, settings)
	identity := testIdentity(models.RoleSeller)
	env.expectSession(identity)

	env.product.EXPECT().
		CreateProduct(gomock.Any(), identity.ID, gomock.Any(), gomock.Any()).
		Return(testProduct(identity.ID, models.Images{}), nil)

	fields := map[string]string{"title": "Desk lamp", "price": "10", "seller": uuid.NewString()}
	rec := serve(env.handler.ProductRoutes(), withSessionCookie(productForm(t, fields)))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateProduct_TooManyFiles(t *testing.T) {
	env := newTestEnv(t, testSettings())
	env.expectSession(testIdentity(models.RoleSeller))

	files := make([]formFile, service.MaxUploadFiles+1)
	for i := range files {
		files[i] = formFile{fmt.Sprintf("%d.png", i), "image/png", []byte("x")}
	}

	rec := serve(env.handler.ProductRoutes(), withSessionCookie(productForm(t, productFields, files...)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Too many files", decodeBody[models.ErrorResponse](t, rec).Message)
}

func TestCreateProduct_ServiceErrors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
		wantDetails string
	}{
		{
			name:        "missing title",
			err:         &validators.FieldError{Field: "title", Message: "Title and price are required"},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Title and price are required",
		},
		{
			name:        "not an image",
			err:         fmt.Errorf("%w: notes.txt", service.ErrFileNotAnImage),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Only image files are allowed",
		},
		{
			name:        "file too large",
			err:         fmt.Errorf("%w: huge.png", service.ErrFileTooLarge),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "File too large",
		},
		{
			name:        "empty file",
			err:         fmt.Errorf("%w: blank.png", service.ErrEmptyFile),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "File is empty",
		},
		{
			name:        "upload failure",
			err:         fmt.Errorf("%w: a.png: %w", service.ErrImageUpload, errors.New("bad gateway")),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Failed to create product",
			wantDetails: "image upload failed: a.png: bad gateway",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, testSettings())
			env.expectSession(testIdentity(models.RoleSeller))
			env.product.EXPECT().CreateProduct(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Product{}, tt.err)

			rec := serve(env.handler.ProductRoutes(), withSessionCookie(productForm(t, productFields)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeBody[models.ErrorResponse](t, rec)
			assert.Equal(t, tt.wantMessage, body.Message)
			assert.Equal(t, tt.wantDetails, body.Details)
		})
	}
}

func TestCreateProduct_MalformedMultipart(t *testing.T) {
	env := newTestEnv(t, testSettings())
	env.expectSession(testIdentity(models.RoleSeller))

	req := withSessionCookie(httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader("--broken")))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=xyz")

	rec := serve(env.handler.ProductRoutes(), req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid form data", decodeBody[models.ErrorResponse](t, rec).Message)
}

// ─── get ──────────────────────────────────────────────────────────────────────

func TestGetProduct(t *testing.T) {
	env := newTestEnv(t, testSettings())
	identity := testIdentity(models.RoleSeller)
	product := testProduct(identity.ID, models.Images{})
	details := models.ProductDetails{
		Product: product,
		Seller: models.SellerInfo{
			ID:       identity.ID,
			Username: identity.Username,
			Email:    identity.Email,
			FullName: models.FullName{FirstName: "Alice", LastName: "Smith"},
		},
	}
	env.product.EXPECT().GetProduct(gomock.Any(), product.ID).Return(details, nil)

	rec := serve(env.handler.ProductRoutes(), httptest.NewRequest(http.MethodGet, "/api/products/"+product.ID.String(), nil))

	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody[struct {
		Product struct {
			ID     uuid.UUID         `json:"id"`
			Title  string            `json:"title"`
			Seller models.SellerInfo `json:"seller"`
		} `json:"product"`
	}](t, rec)
	assert.Equal(t, product.ID, body.Product.ID)
	assert.Equal(t, "Desk lamp", body.Product.Title)
	assert.Equal(t, details.Seller, body.Product.Seller)
}

func TestGetProduct_NotFound(t *testing.T) {
	t.Run("unknown id", func(t *testing.T) {
		env := newTestEnv(t, testSettings())
		env.product.EXPECT().GetProduct(gomock.Any(), gomock.Any()).Return(models.ProductDetails{}, service.ErrProductNotFound)

		rec := serve(env.handler.ProductRoutes(), httptest.NewRequest(http.MethodGet, "/api/products/"+uuid.NewString(), nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Product not found", decodeBody[models.ErrorResponse](t, rec).Message)
	})

	t.Run("malformed id", func(t *testing.T) {
		env := newTestEnv(t, testSettings())

		rec := serve(env.handler.ProductRoutes(), httptest.NewRequest(http.MethodGet, "/api/products/64b7f0c2e1", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

// ─── list ─────────────────────────────────────────────────────────────────────

func TestListProducts_Query(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  models.PageRequest
	}{
		{"defaults", "", models.PageRequest{}},
		{"explicit", "?page=3&limit=10", models.PageRequest{Page: 3, Limit: 10}},
		{"non numeric", "?page=abc&limit=x", models.PageRequest{Page: -1, Limit: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, testSettings())
			env.product.EXPECT().ListProducts(gomock.Any(), tt.want).Return(models.ProductPage{
				Products:    []models.Product{},
				Total:       25,
				TotalPages:  3,
				CurrentPage: 3,
			}, nil)

			rec := serve(env.handler.ProductRoutes(), httptest.NewRequest(http.MethodGet, "/api/products"+tt.query, nil))

			require.Equal(t, http.StatusOK, rec.Code)
			page := decodeBody[models.ProductPage](t, rec)
			assert.Equal(t, 25, page.Total)
			assert.Equal(t, 3, page.TotalPages)
			assert.NotNil(t, page.Products)
		})
	}
}

func TestListProducts_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid page", &validators.FieldError{Field: "page", Message: "page must be a positive integer"}, http.StatusBadRequest},
		{"storage failure", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, testSettings())
			env.product.EXPECT().ListProducts(gomock.Any(), gomock.Any()).Return(models.ProductPage{}, tt.err)

			rec := serve(env.handler.ProductRoutes(), httptest.NewRequest(http.MethodGet, "/api/products?page=0", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestQueryInt(t *testing.T) {
	assert.Equal(t, 0, queryInt(""))
	assert.Equal(t, 7, queryInt("7"))
	assert.Equal(t, -1, queryInt("seven"))
}
