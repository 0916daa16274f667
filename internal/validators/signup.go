package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-auth-gate/models"
)

const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldConfirm  = "confirm_password"
)

const (
	// MinUsernameLength is the minimum accepted username length.
	MinUsernameLength = 4

	// MinPasswordLength is the minimum accepted password length.
	MinPasswordLength = 8
)

// SignUpValidator enforces the registration field rules. Uniqueness of the
// username is NOT checked here — that invariant belongs to the storage
// layer, where it is atomic with the insert.
type SignUpValidator struct {
}

func NewSignUpValidator() Validator {
	return &SignUpValidator{}
}

func (v *SignUpValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignUpRequest:
		return v.validateSignUpRequest(ctx, value, fields...)
	case *models.SignUpRequest:
		return v.validateSignUpRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateSignUpRequest checks the requested fields in declaration order and
// reports the first rule that fails.
func (v *SignUpValidator) validateSignUpRequest(_ context.Context, req models.SignUpRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword, FieldConfirm}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if req.Username == "" {
				return ErrEmptyUsername
			}
			if len(req.Username) < MinUsernameLength {
				return ErrUsernameTooShort
			}
		case FieldEmail:
			if req.Email == "" {
				return ErrEmptyEmail
			}
			if !isValidEmail(req.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
			if len(req.Password) < MinPasswordLength {
				return ErrPasswordTooShort
			}
		case FieldConfirm:
			if req.Password != req.ConfirmPassword {
				return ErrPasswordMismatch
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isValidEmail checks the minimal valid-address shape: a non-empty local
// part, exactly one split at the last '@', and a non-empty domain part.
func isValidEmail(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	local, domain := email[:at], email[at+1:]
	if strings.ContainsAny(local, " \t") || strings.ContainsAny(domain, " \t@") {
		return false
	}

	return true
}
