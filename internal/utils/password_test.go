package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// TestHashPassword_RoundTrip verifies that a hashed password verifies
// against the exact raw input it was derived from.
func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("supersecretpassword", bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, VerifyPassword("supersecretpassword", hash))
}

// TestHashPassword_NeverEqualsRaw verifies that the stored digest is never
// the raw password itself.
func TestHashPassword_NeverEqualsRaw(t *testing.T) {
	const raw = "supersecretpassword"

	hash, err := HashPassword(raw, bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEmpty(t, hash)
	assert.NotEqual(t, raw, hash)
}

// TestHashPassword_SaltedOutputsDiffer verifies that hashing the same
// password twice yields different digests (per-hash random salt).
func TestHashPassword_SaltedOutputsDiffer(t *testing.T) {
	first, err := HashPassword("supersecretpassword", bcrypt.MinCost)
	require.NoError(t, err)

	second, err := HashPassword("supersecretpassword", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

// TestHashPassword_ZeroCostFallsBack verifies that an unset cost falls back
// to the bcrypt default instead of failing.
func TestHashPassword_ZeroCostFallsBack(t *testing.T) {
	hash, err := HashPassword("supersecretpassword", 0)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

// TestVerifyPassword_WrongPassword verifies that a different password does
// not verify against the digest.
func TestVerifyPassword_WrongPassword(t *testing.T) {
	hash, err := HashPassword("supersecretpassword", bcrypt.MinCost)
	require.NoError(t, err)

	assert.False(t, VerifyPassword("invalidpassword", hash))
}

// TestVerifyPassword_MalformedDigest verifies that malformed digests fail
// closed: verification returns false and never panics.
func TestVerifyPassword_MalformedDigest(t *testing.T) {
	for _, digest := range []string{"", "not-a-bcrypt-hash", "$2a$xx$garbage"} {
		assert.False(t, VerifyPassword("supersecretpassword", digest), "digest %q", digest)
	}
}
