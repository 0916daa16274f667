package models

import "time"

// SignUpResponse is returned to the client after a successful registration.
// It never echoes the password, its hash, or the raw MFA secret; the
// provisioning URI is disclosed exactly once, at enrollment time.
type SignUpResponse struct {
	Username   string `json:"username"`
	MFAEnabled bool   `json:"mfa_enabled"`

	// ProvisioningURI is set only when MFA was enabled during sign-up.
	ProvisioningURI string `json:"provisioning_uri,omitempty"`
}

// LoginResponse carries the freshly issued bearer token.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ValidateTokenResponse identifies the owner of a still-valid token.
// This is the only payload crossing the trust boundary to downstream
// services.
type ValidateTokenResponse struct {
	Username string `json:"username"`
}

// GreetingResponse is returned by the greeter service to a caller holding
// a valid bearer token.
type GreetingResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the uniform JSON error envelope. The message is
// intentionally coarse for authentication failures so that callers cannot
// distinguish an unknown user from a wrong password or a bad MFA code.
type ErrorResponse struct {
	Error string `json:"error"`
}
