// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/service"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
	"github.com/MKhiriev/go-auth-gate/models"
)

// validateToken resolves a bearer token to the account it was issued to.
//
// The token is taken from the JSON body; when the body carries none, the
// "Authorization: Bearer <token>" header is consulted instead, so callers
// can forward the header they already received. An unknown, expired or
// missing token uniformly yields 401.
func (h *Handler) validateToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.ValidateTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil && !errors.Is(err, io.EOF) {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	if request.Token == "" {
		if fromHeader, err := utils.ParseBearerToken(r.Header.Get("Authorization")); err == nil {
			request.Token = fromHeader
		}
	}

	user, err := h.services.AuthService.ValidateToken(ctx, request.Token)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnauthorized):
			utils.WriteJSON(w, models.ErrorResponse{Error: "invalid or expired token"}, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during token validation")
			utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.ValidateTokenResponse{Username: user.Username}, http.StatusOK)
}
