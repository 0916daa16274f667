// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// tokenBytes is the entropy of a bearer token before hex encoding.
// 32 random bytes (256 bits) make the token value unguessable.
const tokenBytes = 32

// GenerateToken produces a new opaque bearer token value.
//
// The token is hex-encoded output of a cryptographically secure random
// source and carries no internal structure: it grants access only through
// a server-side lookup against the user record it is stored on.
func GenerateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error generating token: %w", err)
	}

	return hex.EncodeToString(buf), nil
}

// ParseBearerToken extracts the token string from a raw "Authorization"
// HTTP header value of the form "<scheme> <token>".
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
