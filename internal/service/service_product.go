// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-storefront/internal/adapter"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/store"
	"github.com/MKhiriev/go-storefront/internal/utils"
	"github.com/MKhiriev/go-storefront/internal/validators"
	"github.com/MKhiriev/go-storefront/models"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	// MaxUploadFiles is the number of images accepted per product.
	MaxUploadFiles = 5
	// MaxUploadFileSize is the size limit of one image in bytes.
	MaxUploadFileSize = 5 << 20

	DefaultPage      = 1
	DefaultPageLimit = 10
)

// imageExtensions are accepted when the client sent no image/* content type.
var imageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
}

type productService struct {
	productRepository store.ProductRepository
	imageHost         adapter.ImageHost
	validator         validators.Validator
	ids               *utils.UUIDGenerator

	logger *logger.Logger
}

// NewProductService constructs a ProductService storing products in
// productRepository and images on imageHost.
func NewProductService(productRepository store.ProductRepository, imageHost adapter.ImageHost, logger *logger.Logger) ProductService {
	return &productService{
		productRepository: productRepository,
		imageHost:         imageHost,
		validator:         validators.NewProductValidator(),
		ids:               utils.NewUUIDGenerator(),
		logger:            logger,
	}
}

// CreateProduct checks the seller, the payload and the attached files before
// anything is uploaded. Uploads run in parallel; the first failure cancels
// the others and fails the whole request, so no product is stored with a
// partial image list.
func (s *productService) CreateProduct(ctx context.Context, sellerID uuid.UUID, req models.CreateProductRequest, files []models.UploadFile) (models.Product, error) {
	log := logger.FromContext(ctx)

	if sellerID == uuid.Nil {
		return models.Product{}, ErrSellerRequired
	}

	req = trimProductRequest(req)
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Product{}, err
	}

	if err := checkUploads(files); err != nil {
		return models.Product{}, err
	}

	amount, _ := validators.ParsePrice(req.Price)
	currency := models.Currency(req.Currency)
	if currency == "" {
		currency = models.DefaultCurrency
	}

	images, err := s.uploadImages(ctx, files)
	if err != nil {
		log.Err(err).Str("seller_id", sellerID.String()).Int("files", len(files)).Msg("image upload failed")
		return models.Product{}, err
	}

	saved, err := s.productRepository.CreateProduct(ctx, models.Product{
		ID:          s.ids.New(),
		Title:       req.Title,
		Description: req.Description,
		Price:       models.Price{Amount: amount, Currency: currency},
		Seller:      sellerID,
		Images:      images,
	})
	if err != nil {
		log.Err(err).Str("seller_id", sellerID.String()).Msg("product creation ended with error")
		return models.Product{}, fmt.Errorf("product creation ended with error: %w", err)
	}

	log.Info().
		Str("product_id", saved.ID.String()).
		Str("seller_id", sellerID.String()).
		Int("images", len(saved.Images)).
		Msg("product created")

	return saved, nil
}

// uploadImages stores each result at the index of its file.
func (s *productService) uploadImages(ctx context.Context, files []models.UploadFile) (models.Images, error) {
	images := make(models.Images, len(files))
	if len(files) == 0 {
		return images, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, file := range files {
		g.Go(func() error {
			image, err := s.imageHost.Upload(gctx, file)
			if err != nil {
				return fmt.Errorf("%w: %s: %w", ErrImageUpload, file.Name, err)
			}
			images[i] = image
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return images, nil
}

func (s *productService) GetProduct(ctx context.Context, id uuid.UUID) (models.ProductDetails, error) {
	product, err := s.productRepository.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			return models.ProductDetails{}, ErrProductNotFound
		}
		logger.FromContext(ctx).Err(err).Str("product_id", id.String()).Msg("product lookup failed")
		return models.ProductDetails{}, fmt.Errorf("product lookup failed: %w", err)
	}

	return product, nil
}

func (s *productService) ListProducts(ctx context.Context, page models.PageRequest) (models.ProductPage, error) {
	if page.Page == 0 {
		page.Page = DefaultPage
	}
	if page.Limit == 0 {
		page.Limit = DefaultPageLimit
	}
	if err := s.validator.Validate(ctx, page); err != nil {
		return models.ProductPage{}, err
	}

	products, total, err := s.productRepository.ListProducts(ctx, page)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int("page", page.Page).Int("limit", page.Limit).Msg("product listing failed")
		return models.ProductPage{}, fmt.Errorf("product listing failed: %w", err)
	}
	if products == nil {
		products = []models.Product{}
	}

	return models.ProductPage{
		Products:    products,
		Total:       total,
		TotalPages:  (total + page.Limit - 1) / page.Limit,
		CurrentPage: page.Page,
	}, nil
}

// checkUploads enforces the count, size and type limits and rejects empty files on attached files.
func checkUploads(files []models.UploadFile) error {
	if len(files) > MaxUploadFiles {
		return ErrTooManyFiles
	}

	for _, f := range files {
		if len(f.Data) == 0 {
			return fmt.Errorf("%w: %s", ErrEmptyFile, f.Name)
		}
		if len(f.Data) > MaxUploadFileSize {
			return fmt.Errorf("%w: %s", ErrFileTooLarge, f.Name)
		}
		if !isImage(f) {
			return fmt.Errorf("%w: %s", ErrFileNotAnImage, f.Name)
		}
	}

	return nil
}

func isImage(f models.UploadFile) bool {
	if strings.HasPrefix(strings.ToLower(f.ContentType), "image/") {
		return true
	}
	_, ok := imageExtensions[strings.ToLower(filepath.Ext(f.Name))]
	return ok
}

func trimProductRequest(req models.CreateProductRequest) models.CreateProductRequest {
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	req.Price = strings.TrimSpace(req.Price)
	req.Currency = strings.TrimSpace(req.Currency)
	return req
}
