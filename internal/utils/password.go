// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for password hashing, opaque token generation,
// HTTP response writing, and other common operations.
package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a salted, one-way bcrypt digest of the raw password.
//
// bcrypt embeds a random per-hash salt, so hashing the same password twice
// yields different outputs; VerifyPassword is the only way to test equality.
// The cost parameter tunes the computational price of each hash. Values
// below bcrypt.MinCost (including zero) fall back to bcrypt.DefaultCost.
//
// The raw password is never logged or stored by this function.
func HashPassword(raw string, cost int) (string, error) {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(raw), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// VerifyPassword reports whether raw is the password behind the given bcrypt
// digest.
//
// Any failure — wrong password, malformed or truncated digest, an empty
// string — yields false. The function never panics on attacker-controlled
// input; bcrypt's comparison is constant-time with respect to the password.
func VerifyPassword(raw, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(raw)) == nil
}
