package service

import "errors"

var (
	// ErrUnauthorized covers every login and token validation failure:
	// unknown username, wrong password, missing or wrong MFA code, unknown
	// or expired token. Callers must not be able to tell which rule fired.
	ErrUnauthorized = errors.New("invalid credentials")

	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrMFAProvisioning     = errors.New("MFA secret provisioning failed")
)
