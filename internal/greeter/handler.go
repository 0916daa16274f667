package greeter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
	"github.com/MKhiriev/go-auth-gate/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Handler serves the greeter API: a single endpoint that greets the owner
// of a valid bearer token. Token validation is delegated to the auth
// service through the injected TokenVerifier.
type Handler struct {
	verifier TokenVerifier
	logger   *logger.Logger
}

func NewHandler(verifier TokenVerifier, logger *logger.Logger) *Handler {
	logger.Info().Msg("greeter handler created")
	return &Handler{verifier: verifier, logger: logger}
}

// Init registers all greeter routes and returns the configured router.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.Recoverer)

	router.Post("/", h.greet)

	return router
}

// greet answers a caller who presents a bearer token. The token is taken
// from the JSON body, falling back to the "Authorization: Bearer <token>"
// header. A token the auth service rejects yields 401.
func (h *Handler) greet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var request models.ValidateTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	if request.Token == "" {
		if fromHeader, err := utils.ParseBearerToken(r.Header.Get("Authorization")); err == nil {
			request.Token = fromHeader
		}
	}

	owner, err := h.verifier.Verify(ctx, request.Token)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnauthorized):
			utils.WriteJSON(w, models.ErrorResponse{Error: "invalid or expired token"}, http.StatusUnauthorized)
			return
		default:
			h.logger.Err(err).Msg("unexpected error occurred during token verification")
			utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
			return
		}
	}

	// the original greeting lowercases the account name
	message := fmt.Sprintf("Hello %s! Go is pleased to meet you!", strings.ToLower(owner.Username))
	utils.WriteJSON(w, models.GreetingResponse{Message: message}, http.StatusOK)
}
