// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/service"
	"github.com/MKhiriev/go-auth-gate/internal/store"
	"github.com/MKhiriev/go-auth-gate/internal/validators"
	"github.com/MKhiriev/go-auth-gate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn  func(ctx context.Context, request models.SignUpRequest) (models.User, error)
	loginFn         func(ctx context.Context, request models.LoginRequest) (models.Token, error)
	validateTokenFn func(ctx context.Context, token string) (models.User, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, request models.SignUpRequest) (models.User, error) {
	return m.registerUserFn(ctx, request)
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.Token, error) {
	return m.loginFn(ctx, request)
}

func (m *mockAuthService) ValidateToken(ctx context.Context, token string) (models.User, error) {
	return m.validateTokenFn(ctx, token)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newHandlerWithAuth builds a Handler with the given AuthService mock.
func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService: auth,
	}
	return NewHandler(svcs, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// validSignUpRequest is a convenience fixture used across multiple tests.
var validSignUpRequest = models.SignUpRequest{
	Username:        "testUser1",
	Email:           "testUser1@testuser.com",
	Password:        "password123",
	ConfirmPassword: "password123",
}

// ─────────────────────────────────────────────
// signUp
// ─────────────────────────────────────────────

// TestSignUp_Success verifies that a valid registration request results in
// 201 Created with the registered username in the body.
func TestSignUp_Success(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, r models.SignUpRequest) (models.User, error) {
			return models.User{Username: r.Username, Email: r.Email}, nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/user/sign-up", strings.NewReader(jsonBody(t, validSignUpRequest)))
	rec := httptest.NewRecorder()

	h.signUp(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.SignUpResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "testUser1", resp.Username)
	assert.False(t, resp.MFAEnabled)
	assert.Empty(t, resp.ProvisioningURI)
}

// TestSignUp_WithMFA verifies that the one-time provisioning URI is included
// in the response when the account was registered with MFA.
func TestSignUp_WithMFA(t *testing.T) {
	const uri = "otpauth://totp/auth-gate:testUser1?secret=JBSWY3DPEHPK3PXP"

	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, r models.SignUpRequest) (models.User, error) {
			return models.User{Username: r.Username, MFAEnabled: true, ProvisioningURI: uri}, nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	body := validSignUpRequest
	body.EnableMFA = true
	req := httptest.NewRequest(http.MethodPost, "/api/user/sign-up", strings.NewReader(jsonBody(t, body)))
	rec := httptest.NewRecorder()

	h.signUp(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.SignUpResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.MFAEnabled)
	assert.Equal(t, uri, resp.ProvisioningURI)
}

func TestSignUp_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	req := httptest.NewRequest(http.MethodPost, "/api/user/sign-up", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.signUp(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSignUp_ValidationError(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.SignUpRequest) (models.User, error) {
			return models.User{}, validators.ErrPasswordTooShort
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/user/sign-up", strings.NewReader(jsonBody(t, validSignUpRequest)))
	rec := httptest.NewRecorder()

	h.signUp(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "password")
}

func TestSignUp_UsernameTaken(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.SignUpRequest) (models.User, error) {
			return models.User{}, store.ErrUsernameTaken
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/user/sign-up", strings.NewReader(jsonBody(t, validSignUpRequest)))
	rec := httptest.NewRecorder()

	h.signUp(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSignUp_UnexpectedError(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.SignUpRequest) (models.User, error) {
			return models.User{}, errors.New("db is on fire")
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/user/sign-up", strings.NewReader(jsonBody(t, validSignUpRequest)))
	rec := httptest.NewRecorder()

	h.signUp(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// internals must not leak into the response body
	assert.NotContains(t, rec.Body.String(), "db is on fire")
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	expiresAt := time.Date(2026, time.March, 14, 15, 9, 46, 0, time.UTC)

	auth := &mockAuthService{
		loginFn: func(_ context.Context, r models.LoginRequest) (models.Token, error) {
			assert.Equal(t, "testUser1", r.Username)
			return models.Token{Value: "cafebabe", ExpiresAt: expiresAt}, nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	body := models.LoginRequest{Username: "testUser1", Password: "password123"}
	req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(jsonBody(t, body)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "cafebabe", resp.Token)
	assert.True(t, resp.ExpiresAt.Equal(expiresAt))
}

func TestLogin_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestLogin_Unauthorized verifies that every rejection reason produces the
// same 401 with the same body, regardless of what actually failed.
func TestLogin_Unauthorized(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.LoginRequest) (models.Token, error) {
			return models.Token{}, service.ErrUnauthorized
		},
	}

	h := newHandlerWithAuth(t, auth)

	requests := []models.LoginRequest{
		{Username: "missing", Password: "password123"},
		{Username: "testUser1", Password: "wrongpassword"},
		{Username: "mfaUser", Password: "password123"},              // MFA code absent
		{Username: "mfaUser", Password: "password123", MFACode: "000000"}, // MFA code wrong
	}

	var bodies []string
	for _, body := range requests {
		req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(jsonBody(t, body)))
		rec := httptest.NewRecorder()

		h.login(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		bodies = append(bodies, rec.Body.String())
	}

	for _, body := range bodies[1:] {
		assert.Equal(t, bodies[0], body, "all rejections must be indistinguishable")
	}
}

func TestLogin_UnexpectedError(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.LoginRequest) (models.Token, error) {
			return models.Token{}, errors.New("token store unavailable")
		},
	}

	h := newHandlerWithAuth(t, auth)
	body := models.LoginRequest{Username: "testUser1", Password: "password123"}
	req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(jsonBody(t, body)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
