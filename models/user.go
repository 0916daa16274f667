package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// Username is the unique user identifier used during authentication.
	// Minimum length 4; uniqueness is enforced by the storage layer.
	Username string `json:"username"`

	// Email is the user's contact address. Validated for a minimal
	// address shape (local part, "@", non-empty domain) at registration.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// This value MUST be a derived value, never plaintext.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// MFAEnabled reports whether the account requires a time-based
	// one-time code in addition to the password at login.
	MFAEnabled bool `json:"mfa_enabled"`

	// MFASecret is the shared TOTP secret (base32). Present iff
	// MFAEnabled is true. It is never exposed via JSON.
	MFASecret string `json:"-"`

	// ProvisioningURI is the otpauth:// URI for enrolling the secret in
	// a code-generator app. Transient: populated once at registration
	// when MFA was requested, never persisted.
	ProvisioningURI string `json:"-"`

	// Token is the currently active bearer token, or empty if the user
	// has never logged in or the token was cleared. At most one token is
	// active per user; issuing a new one replaces the previous value.
	Token string `json:"-"`

	// TokenExpiresAt is the expiry timestamp of Token. Meaningful only
	// while Token is non-empty. Validation compares against this stored
	// value on every request, so mutating it takes effect immediately.
	TokenExpiresAt time.Time `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
