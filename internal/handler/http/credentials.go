// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-cred-pool/internal/logger"
	"github.com/MKhiriev/go-cred-pool/internal/utils"
	"github.com/MKhiriev/go-cred-pool/models"
)

// batchAdd accepts a batch of credentials and answers 200 with one outcome
// per item, whatever happened to the individual items. Only request-wide
// problems (malformed body, non-array credentials, empty or oversize batch,
// bad priority) produce an error response.
func (h *Handler) batchAdd(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.BatchAddRequest
	if err := decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int("items", len(request.Items)).Int("priority", request.Priority).Msg("batch received")

	result, err := h.services.CredentialService.BatchAdd(ctx, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

// addCredential stores a single credential. Unlike batchAdd, a rejected
// credential is an error response.
func (h *Handler) addCredential(w http.ResponseWriter, r *http.Request) {
	var request models.AddCredentialRequest
	if err := decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	response, err := h.services.CredentialService.Add(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, response, http.StatusCreated)
}

func (h *Handler) listCredentials(w http.ResponseWriter, r *http.Request) {
	response, err := h.services.CredentialService.ListCredentials(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) setPriority(w http.ResponseWriter, r *http.Request) {
	id, err := credentialIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.SetPriorityRequest
	if err = decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.CredentialService.SetPriority(r.Context(), id, request); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse{
		Success: true,
		Message: fmt.Sprintf("credential %d priority set to %d", id, request.Priority),
	}, http.StatusOK)
}

func (h *Handler) setDisabled(w http.ResponseWriter, r *http.Request) {
	id, err := credentialIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var request models.SetDisabledRequest
	if err = decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.CredentialService.SetDisabled(r.Context(), id, request); err != nil {
		writeError(w, r, err)
		return
	}

	state := "enabled"
	if request.Disabled {
		state = "disabled"
	}
	utils.WriteJSON(w, models.SuccessResponse{
		Success: true,
		Message: fmt.Sprintf("credential %d %s", id, state),
	}, http.StatusOK)
}

func (h *Handler) deleteDisabled(w http.ResponseWriter, r *http.Request) {
	response, err := h.services.CredentialService.DeleteDisabled(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

// decodeJSON decodes the body into dst. The decoder's own message names Go
// types, so it is only logged and the caller gets a bare sentinel.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodySize)).Decode(dst)
	if err == nil {
		return nil
	}

	logger.FromRequest(r).Debug().Err(err).Msg("error decoding request body")

	switch {
	case errors.Is(err, models.ErrCredentialsNotArray):
		return models.ErrCredentialsNotArray
	case errors.Is(err, models.ErrMalformedBatchRequest):
		return models.ErrMalformedBatchRequest
	default:
		return ErrInvalidJSON
	}
}

func credentialIDFromRequest(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidCredentialID
	}
	return id, nil
}
