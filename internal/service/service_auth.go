// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/store"
	"github.com/MKhiriev/go-storefront/internal/utils"
	"github.com/MKhiriev/go-storefront/internal/validators"
	"github.com/MKhiriev/go-storefront/models"
)

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification and the JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// revocationStorage keeps logged-out tokens until they expire.
	revocationStorage store.TokenRevocationStorage

	validator validators.Validator
	ids       *utils.UUIDGenerator

	// hashCost is the bcrypt cost used at registration.
	hashCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// revocationTTL is how long a revoked token stays on the list.
	revocationTTL time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, revocationStorage store.TokenRevocationStorage, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:    userRepository,
		revocationStorage: revocationStorage,
		validator:         validators.NewAccountValidator(),
		ids:               utils.NewUUIDGenerator(),
		hashCost:          cfg.PasswordHashCost,
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		revocationTTL:     cfg.RevocationTTL,
		logger:            logger,
	}
}

// RegisterUser creates a new account.
//
// Returns the persisted user or:
//   - a [*validators.FieldError] for the first invalid field.
//   - ErrUserAlreadyExists if the username or the email is taken, including
//     a registration that loses a race on the unique indexes.
//   - A wrapped error if hashing or the repository call fails.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	req = trimRegisterRequest(req)
	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("username", req.Username).Msg("invalid registration data provided")
		return models.User{}, err
	}

	_, err := a.userRepository.FindUserByUsernameOrEmail(ctx, req.Username, req.Email)
	switch {
	case err == nil:
		log.Info().Str("username", req.Username).Str("email", req.Email).Msg("username or email already taken")
		return models.User{}, ErrUserAlreadyExists
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Str("username", req.Username).Msg("user lookup before registration failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	passwordHash, err := utils.HashPassword(req.Password, a.hashCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		ID:           a.ids.New(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
		FullName:     req.FullName,
		Phone:        req.Phone,
		Role:         role,
		Addresses:    models.Addresses{},
	})
	if err != nil {
		if errors.Is(err, store.ErrLoginAlreadyExists) {
			return models.User{}, ErrUserAlreadyExists
		}
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("user_id", registeredUser.ID.String()).Str("role", string(role)).Msg("user registered")
	return registeredUser, nil
}

// Login authenticates an existing account by username or email.
//
// Returns the authenticated user record or:
//   - a [*validators.FieldError] for the first invalid field.
//   - ErrUserNotFound if no account matches.
//   - ErrWrongPassword if the password does not match the stored hash.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.User{}, err
	}

	foundUser, err := a.userRepository.FindUserByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("username", req.Username).Msg("user search failed")
		return models.User{}, fmt.Errorf("user search failed: %w", err)
	}

	if err = utils.CheckPassword(foundUser.PasswordHash, req.Password); err != nil {
		log.Info().Str("user_id", foundUser.ID.String()).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Identity(), a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// RevokeToken stores tokenString on the revocation list for revocationTTL.
func (a *authService) RevokeToken(ctx context.Context, tokenString string) error {
	if err := a.revocationStorage.Revoke(ctx, tokenString, a.revocationTTL); err != nil {
		return fmt.Errorf("token revocation failed: %w", err)
	}

	return nil
}

func (a *authService) IsTokenRevoked(ctx context.Context, tokenString string) (bool, error) {
	revoked, err := a.revocationStorage.IsRevoked(ctx, tokenString)
	if err != nil {
		return false, fmt.Errorf("revocation check failed: %w", err)
	}

	return revoked, nil
}

func trimRegisterRequest(req models.RegisterRequest) models.RegisterRequest {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	req.FullName.FirstName = strings.TrimSpace(req.FullName.FirstName)
	req.FullName.LastName = strings.TrimSpace(req.FullName.LastName)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Role = models.Role(strings.TrimSpace(string(req.Role)))
	return req
}
