// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	ErrUserAlreadyExists = errors.New("username or email already exists")
	ErrUserNotFound      = errors.New("user not found")
	ErrWrongPassword     = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("invalid or expired token")
	ErrTokenRevoked            = errors.New("token is revoked")
	ErrInsufficientRole        = errors.New("access denied: insufficient permissions")

	ErrAddressNotFound = errors.New("address not found")

	ErrProductNotFound = errors.New("product not found")
	ErrSellerRequired  = errors.New("seller ID is required")
	ErrInvalidUpload   = errors.New("invalid file upload")
	ErrImageUpload     = errors.New("image upload failed")
)

var (
	ErrTooManyFiles   = fmt.Errorf("%w: too many files", ErrInvalidUpload)
	ErrFileTooLarge   = fmt.Errorf("%w: file too large", ErrInvalidUpload)
	ErrFileNotAnImage = fmt.Errorf("%w: only image files are allowed", ErrInvalidUpload)
	ErrEmptyFile      = fmt.Errorf("%w: file is empty", ErrInvalidUpload)
)
