// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/store"
	"github.com/MKhiriev/go-storefront/internal/utils"
	"github.com/MKhiriev/go-storefront/internal/validators"
	"github.com/MKhiriev/go-storefront/models"
	"github.com/google/uuid"
)

type addressService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	ids            *utils.UUIDGenerator

	logger *logger.Logger
}

// NewAddressService constructs an AddressService over the account store.
func NewAddressService(userRepository store.UserRepository, logger *logger.Logger) AddressService {
	return &addressService{
		userRepository: userRepository,
		validator:      validators.NewAccountValidator(),
		ids:            utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

func (s *addressService) GetAddresses(ctx context.Context, userID uuid.UUID) (models.Addresses, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return nil, userLookupError(ctx, err)
	}

	if user.Addresses == nil {
		return models.Addresses{}, nil
	}
	return user.Addresses, nil
}

// AddAddress validates req and appends it to the account's list inside one
// store transaction.
func (s *addressService) AddAddress(ctx context.Context, userID uuid.UUID, req models.AddressRequest) (models.Address, error) {
	log := logger.FromContext(ctx)

	req = trimAddressRequest(req)
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Address{}, err
	}

	address := models.Address{
		ID:        s.ids.New(),
		Street:    req.Street,
		City:      req.City,
		State:     req.State,
		Pincode:   req.Pincode,
		Country:   req.Country,
		IsDefault: req.IsDefault,
	}

	_, err := s.userRepository.UpdateAddresses(ctx, userID, func(current models.Addresses) (models.Addresses, error) {
		updated := make(models.Addresses, 0, len(current)+1)
		for _, a := range current {
			if address.IsDefault {
				a.IsDefault = false
			}
			updated = append(updated, a)
		}
		return append(updated, address), nil
	})
	if err != nil {
		return models.Address{}, userLookupError(ctx, err)
	}

	log.Info().
		Str("user_id", userID.String()).
		Str("address_id", address.ID.String()).
		Bool("default", address.IsDefault).
		Msg("address added")

	return address, nil
}

// DeleteAddress removes addressID from the account's list. The list is left
// untouched when the address does not exist.
func (s *addressService) DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) (models.Addresses, error) {
	remaining, err := s.userRepository.UpdateAddresses(ctx, userID, func(current models.Addresses) (models.Addresses, error) {
		i := current.Index(addressID)
		if i < 0 {
			return nil, ErrAddressNotFound
		}

		updated := make(models.Addresses, 0, len(current)-1)
		updated = append(updated, current[:i]...)
		return append(updated, current[i+1:]...), nil
	})
	if err != nil {
		if errors.Is(err, ErrAddressNotFound) {
			return nil, ErrAddressNotFound
		}
		return nil, userLookupError(ctx, err)
	}

	logger.FromContext(ctx).Info().
		Str("user_id", userID.String()).
		Str("address_id", addressID.String()).
		Msg("address deleted")

	return remaining, nil
}

func userLookupError(ctx context.Context, err error) error {
	if errors.Is(err, store.ErrUserNotFound) {
		return ErrUserNotFound
	}

	logger.FromContext(ctx).Err(err).Msg("address book access failed")
	return fmt.Errorf("address book access failed: %w", err)
}

func trimAddressRequest(req models.AddressRequest) models.AddressRequest {
	req.Street = strings.TrimSpace(req.Street)
	req.City = strings.TrimSpace(req.City)
	req.State = strings.TrimSpace(req.State)
	req.Pincode = strings.TrimSpace(req.Pincode)
	req.Country = strings.TrimSpace(req.Country)
	return req
}
