// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/service"
	"github.com/MKhiriev/go-storefront/internal/utils"
	"github.com/MKhiriev/go-storefront/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *Handler) getAddresses(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	addresses, err := h.services.AddressService.GetAddresses(r.Context(), identity.ID)
	if err != nil {
		writeError(w, r, err, "Internal server error")
		return
	}

	utils.WriteJSON(w, models.AddressesResponse{Addresses: addresses}, http.StatusOK)
}

func (h *Handler) addAddress(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	identity, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	var req models.AddressRequest
	if err = readJSON(r, &req); err != nil {
		writeError(w, r, err, "")
		return
	}

	address, err := h.services.AddressService.AddAddress(r.Context(), identity.ID, req)
	if err != nil {
		writeError(w, r, err, "Internal server error")
		return
	}

	resp := models.AddressResponse{Message: "Address added successfully", Address: address}
	if address.IsDefault {
		resp.DefaultAddressID = &address.ID
	}

	log.Info().Str("user_id", identity.ID.String()).Str("address_id", address.ID.String()).Msg("address added")
	utils.WriteJSON(w, resp, http.StatusCreated)
}

func (h *Handler) deleteAddress(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	identity, err := identityFromRequest(r)
	if err != nil {
		writeError(w, r, err, "")
		return
	}

	addressID, err := uuid.Parse(chi.URLParam(r, "addressId"))
	if err != nil {
		writeError(w, r, service.ErrAddressNotFound, "")
		return
	}

	addresses, err := h.services.AddressService.DeleteAddress(r.Context(), identity.ID, addressID)
	if err != nil {
		writeError(w, r, err, "Internal server error")
		return
	}

	log.Info().Str("user_id", identity.ID.String()).Str("address_id", addressID.String()).Msg("address deleted")
	utils.WriteJSON(w, models.AddressesResponse{Message: "Address deleted successfully", Addresses: addresses}, http.StatusOK)
}
