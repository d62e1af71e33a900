// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-storefront/internal/service"
	"github.com/MKhiriev/go-storefront/internal/validators"
	"github.com/MKhiriev/go-storefront/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const addressesPath = "/api/auth/users/me/addresses"

const addressBody = `{"street":"12 MG Road","city":"Bengaluru","state":"KA","pincode":"560001","country":"India","isDefault":true}`

func testAddress(isDefault bool) models.Address {
	return models.Address{
		ID:        uuid.MustParse("5d2c1b0a-9f8e-4d7c-8b6a-5f4e3d2c1b0a"),
		Street:    "12 MG Road",
		City:      "Bengaluru",
		State:     "KA",
		Pincode:   "560001",
		Country:   "India",
		IsDefault: isDefault,
	}
}

func TestGetAddresses(t *testing.T) {
	env := newTestEnv(t, testSettings())
	identity := testIdentity(models.RoleUser)
	env.expectSession(identity)
	env.address.EXPECT().GetAddresses(gomock.Any(), identity.ID).Return(models.Addresses{testAddress(true)}, nil)

	rec := serve(env.handler.AuthRoutes(), withSessionCookie(httptest.NewRequest(http.MethodGet, addressesPath, nil)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.Addresses{testAddress(true)}, decodeBody[models.AddressesResponse](t, rec).Addresses)
}

func TestGetAddresses_UserGone(t *testing.T) {
	env := newTestEnv(t, testSettings())
	env.expectSession(testIdentity(models.RoleUser))
	env.address.EXPECT().GetAddresses(gomock.Any(), gomock.Any()).Return(nil, service.ErrUserNotFound)

	rec := serve(env.handler.AuthRoutes(), withSessionCookie(httptest.NewRequest(http.MethodGet, addressesPath, nil)))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetAddresses_RequiresSession(t *testing.T) {
	env := newTestEnv(t, testSettings())

	rec := serve(env.handler.AuthRoutes(), httptest.NewRequest(http.MethodGet, addressesPath, nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAddAddress_Success(t *testing.T) {
	env := newTestEnv(t, testSettings())
	identity := testIdentity(models.RoleUser)
	env.expectSession(identity)

	address := testAddress(true)
	env.address.EXPECT().AddAddress(gomock.Any(), identity.ID, models.AddressRequest{
		Street:    "12 MG Road",
		City:      "Bengaluru",
		State:     "KA",
		Pincode:   "560001",
		Country:   "India",
		IsDefault: true,
	}).Return(address, nil)

	rec := serve(env.handler.AuthRoutes(), withSessionCookie(jsonRequest(http.MethodPost, addressesPath, addressBody)))

	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody[models.AddressResponse](t, rec)
	assert.Equal(t, "Address added successfully", body.Message)
	assert.Equal(t, address, body.Address)
	require.NotNil(t, body.DefaultAddressID)
	assert.Equal(t, address.ID, *body.DefaultAddressID)
}

func TestAddAddress_NonDefaultOmitsDefaultID(t *testing.T) {
	env := newTestEnv(t, testSettings())
	env.expectSession(testIdentity(models.RoleUser))
	env.address.EXPECT().AddAddress(gomock.Any(), gomock.Any(), gomock.Any()).Return(testAddress(false), nil)

	rec := serve(env.handler.AuthRoutes(), withSessionCookie(jsonRequest(http.MethodPost, addressesPath, addressBody)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "defaultAddressId")
}

func TestAddAddress_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation", &validators.FieldError{Field: "pincode", Message: "pincode must be at least 5 characters"}, http.StatusBadRequest},
		{"user gone", service.ErrUserNotFound, http.StatusNotFound},
		{"storage failure", errors.New("deadlock"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, testSettings())
			env.expectSession(testIdentity(models.RoleUser))
			env.address.EXPECT().AddAddress(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Address{}, tt.err)

			rec := serve(env.handler.AuthRoutes(), withSessionCookie(jsonRequest(http.MethodPost, addressesPath, addressBody)))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestDeleteAddress_Success(t *testing.T) {
	env := newTestEnv(t, testSettings())
	identity := testIdentity(models.RoleUser)
	env.expectSession(identity)

	addressID := testAddress(false).ID
	remaining := models.Addresses{}
	env.address.EXPECT().DeleteAddress(gomock.Any(), identity.ID, addressID).Return(remaining, nil)

	rec := serve(env.handler.AuthRoutes(),
		withSessionCookie(httptest.NewRequest(http.MethodDelete, addressesPath+"/"+addressID.String(), nil)))

	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody[models.AddressesResponse](t, rec)
	assert.Equal(t, "Address deleted successfully", body.Message)
	assert.Empty(t, body.Addresses)
}

func TestDeleteAddress_NotFound(t *testing.T) {
	t.Run("unknown id", func(t *testing.T) {
		env := newTestEnv(t, testSettings())
		env.expectSession(testIdentity(models.RoleUser))
		env.address.EXPECT().DeleteAddress(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, service.ErrAddressNotFound)

		rec := serve(env.handler.AuthRoutes(),
			withSessionCookie(httptest.NewRequest(http.MethodDelete, addressesPath+"/"+uuid.NewString(), nil)))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Address not found", decodeBody[models.ErrorResponse](t, rec).Message)
	})

	t.Run("malformed id", func(t *testing.T) {
		env := newTestEnv(t, testSettings())
		env.expectSession(testIdentity(models.RoleUser))

		rec := serve(env.handler.AuthRoutes(),
			withSessionCookie(httptest.NewRequest(http.MethodDelete, addressesPath+"/not-a-uuid", nil)))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
