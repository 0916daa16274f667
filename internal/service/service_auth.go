// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/store"
	"github.com/MKhiriev/go-auth-gate/internal/totp"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
	"github.com/MKhiriev/go-auth-gate/internal/validators"
	"github.com/MKhiriev/go-auth-gate/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification and the bearer
// token lifecycle, using a UserRepository for persistence, bcrypt for
// password hashing and TOTP for the optional second factor.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator checks sign-up requests before any work is done.
	validator validators.Validator

	// totpEngine generates and verifies time-based one-time passwords for
	// accounts that enabled MFA at registration.
	totpEngine *totp.Engine

	// bcryptCost is the bcrypt work factor applied to new passwords.
	bcryptCost int

	// tokenTTL controls how long a newly issued token remains valid.
	tokenTTL time.Duration

	// now supplies the current time for token expiry decisions.
	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validators.NewSignUpValidator(),
		totpEngine:     totp.NewEngine(cfg.TOTPIssuer, cfg.TOTPPeriod, cfg.TOTPSkew),
		bcryptCost:     cfg.BcryptCost,
		tokenTTL:       cfg.TokenTTL,
		now:            time.Now,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates the request, hashes the password with bcrypt, provisions a
// TOTP secret when MFA was requested, and delegates persistence to the
// UserRepository.
//
// Returns the persisted user or:
//   - A validators.ErrValidation descendant if the request is malformed.
//   - store.ErrUsernameTaken if the username is already registered.
//   - A wrapped storage error for any other repository failure.
//
// The returned user carries the provisioning URI when MFA was enabled; it is
// shown to the caller exactly once and never persisted.
func (a *authService) RegisterUser(ctx context.Context, request models.SignUpRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Err(err).Str("username", request.Username).Msg("sign-up request rejected by validation")
		return models.User{}, err
	}

	passwordHash, err := utils.HashPassword(request.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		Username:     request.Username,
		Email:        request.Email,
		PasswordHash: passwordHash,
	}

	if request.EnableMFA {
		secret, uri, err := a.totpEngine.GenerateSecret(request.Username)
		if err != nil {
			log.Err(err).Str("username", request.Username).Msg("MFA secret generation failed")
			return models.User{}, fmt.Errorf("%w: %w", ErrMFAProvisioning, err)
		}
		user.MFAEnabled = true
		user.MFASecret = secret
		user.ProvisioningURI = uri
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrUsernameTaken) {
			log.Warn().Str("username", request.Username).Msg("username already taken")
			return models.User{}, err
		}
		log.Err(err).Str("username", request.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	// the URI lives only in the response, not in the store
	registeredUser.ProvisioningURI = user.ProvisioningURI

	return registeredUser, nil
}

// Login authenticates an existing user and issues a fresh bearer token.
//
// It looks up the account by username, compares the supplied password
// against the stored bcrypt digest, and, if the account has MFA enabled,
// verifies the one-time code. On success a new random token is generated,
// stored with its expiry, and returned; any previously issued token for the
// same user is replaced.
//
// Every failure is reported as ErrUnauthorized. The reason is logged but
// never surfaced, so a caller cannot probe which usernames exist.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByUsername(ctx, request.Username)
	if err != nil {
		if !errors.Is(err, store.ErrNoUserWasFound) {
			log.Err(err).Str("username", request.Username).Msg("user search by username failed")
		}
		return models.Token{}, ErrUnauthorized
	}

	if !utils.VerifyPassword(request.Password, user.PasswordHash) {
		log.Warn().Str("username", request.Username).Msg("wrong password")
		return models.Token{}, ErrUnauthorized
	}

	if user.MFAEnabled {
		code := strings.TrimSpace(request.MFACode)
		if code == "" || !a.totpEngine.Verify(user.MFASecret, code, a.now()) {
			log.Warn().Str("username", request.Username).Msg("MFA verification failed")
			return models.Token{}, ErrUnauthorized
		}
	}

	return a.issueToken(ctx, user.Username)
}

// ValidateToken resolves a bearer token to the user it was issued to.
//
// The token is valid only while its stored expiry lies in the future:
// a lookup miss and an expired token are both reported as ErrUnauthorized.
// Expiry is read from the store on every call, so a mutation of the stored
// timestamp takes effect immediately.
func (a *authService) ValidateToken(ctx context.Context, token string) (models.User, error) {
	log := logger.FromContext(ctx)

	if token == "" {
		return models.User{}, ErrUnauthorized
	}

	user, err := a.userRepository.FindUserByToken(ctx, token)
	if err != nil {
		if !errors.Is(err, store.ErrNoUserWasFound) {
			log.Err(err).Msg("user search by token failed")
		}
		return models.User{}, ErrUnauthorized
	}

	if !a.now().Before(user.TokenExpiresAt) {
		log.Debug().Str("username", user.Username).Msg("token expired")
		return models.User{}, ErrUnauthorized
	}

	return user, nil
}

// issueToken generates a fresh random token for username and persists it
// with an expiry of now+tokenTTL. Last write wins: the stored token is
// replaced, invalidating whatever the user held before.
func (a *authService) issueToken(ctx context.Context, username string) (models.Token, error) {
	log := logger.FromContext(ctx)

	value, err := utils.GenerateToken()
	if err != nil {
		log.Err(err).Msg("token generation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	expiresAt := a.now().Add(a.tokenTTL)

	if err := a.userRepository.UpdateUserToken(ctx, username, value, expiresAt); err != nil {
		log.Err(err).Str("username", username).Msg("token persistence failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.Token{Value: value, ExpiresAt: expiresAt}, nil
}
