package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/service"
	"github.com/MKhiriev/go-auth-gate/internal/store"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
	"github.com/MKhiriev/go-auth-gate/internal/validators"
	"github.com/MKhiriev/go-auth-gate/models"
)

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, request)
	if err != nil {
		switch {
		case errors.Is(err, validators.ErrValidation):
			log.Err(err).Msg("sign-up request failed validation")
			utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUsernameTaken):
			log.Err(err).Msg("username already exists")
			utils.WriteJSON(w, models.ErrorResponse{Error: "username already exists"}, http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
			return
		}
	}

	log.Info().Str("username", registeredUser.Username).Bool("mfa", registeredUser.MFAEnabled).Msg("user registered")

	// the provisioning URI is handed out exactly once, right here
	utils.WriteJSON(w, models.SignUpResponse{
		Username:        registeredUser.Username,
		MFAEnabled:      registeredUser.MFAEnabled,
		ProvisioningURI: registeredUser.ProvisioningURI,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnauthorized):
			// one uniform answer regardless of which check failed
			log.Warn().Str("username", request.Username).Msg("login rejected")
			utils.WriteJSON(w, models.ErrorResponse{Error: "invalid credentials"}, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("username", request.Username).Time("expires_at", token.ExpiresAt).Msg("user successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{
		Token:     token.Value,
		ExpiresAt: token.ExpiresAt,
	}, http.StatusOK)
}
