package models

import "time"

// Token is an opaque bearer credential bound to a single user.
//
// The Value is an unguessable random string whose possession alone grants
// access until ExpiresAt passes. Tokens are stored server-side on the owning
// user record: validation is a storage lookup plus an expiry comparison, so
// a token can be revoked or its lifetime changed by mutating the record.
type Token struct {
	// Value is the opaque token string transmitted as a bearer credential.
	Value string `json:"token"`

	// ExpiresAt is the hard expiry cutoff recorded at issuance.
	// Validation never extends it.
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the token's expiry has passed at the given time.
func (t Token) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// String returns the opaque token value.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.Value
}
