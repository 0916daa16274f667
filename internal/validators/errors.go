package validators

import (
	"errors"
	"fmt"
)

// ErrValidation is the common ancestor of every sign-up validation failure.
// Handlers match it with [errors.Is] to map any rule violation to a
// client-error response without enumerating individual rules.
var ErrValidation = errors.New("validation failed")

// One sentinel per sign-up rule. Each wraps ErrValidation so callers can
// match either the specific rule or the whole category.
var (
	ErrEmptyUsername    = fmt.Errorf("%w: username is required", ErrValidation)
	ErrUsernameTooShort = fmt.Errorf("%w: username must be at least 4 characters long", ErrValidation)
	ErrEmptyEmail       = fmt.Errorf("%w: email is required", ErrValidation)
	ErrInvalidEmail     = fmt.Errorf("%w: email must contain a local part, '@' and a domain", ErrValidation)
	ErrEmptyPassword    = fmt.Errorf("%w: password is required", ErrValidation)
	ErrPasswordTooShort = fmt.Errorf("%w: password must be at least 8 characters long", ErrValidation)
	ErrPasswordMismatch = fmt.Errorf("%w: password and confirmation do not match", ErrValidation)
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)
