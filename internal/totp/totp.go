// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package totp

import (
	"fmt"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

const (
	// DefaultPeriod is the standard TOTP time step in seconds.
	DefaultPeriod = 30

	// DefaultSkew is the number of adjacent time steps tolerated on either
	// side of the current one, absorbing client clock drift.
	DefaultSkew = 1
)

// Engine generates per-user shared secrets and produces/validates
// time-based one-time codes derived from them.
//
// All time-dependent operations take the reference time as an explicit
// parameter, never reading the system clock, so callers can verify codes
// deterministically in tests.
//
// The zero value is not usable; construct with NewEngine. An Engine is
// immutable after construction and safe for concurrent use.
type Engine struct {
	issuer string
	period uint
	skew   uint
}

// NewEngine constructs an Engine for the given issuer label (embedded in
// provisioning URIs). A period of 0 falls back to DefaultPeriod seconds.
// The skew is taken as given; 0 means only the current step is accepted.
func NewEngine(issuer string, period uint, skew uint) *Engine {
	if period == 0 {
		period = DefaultPeriod
	}

	return &Engine{
		issuer: issuer,
		period: period,
		skew:   skew,
	}
}

// GenerateSecret creates a cryptographically random shared secret for the
// given account name.
//
// It returns the base32-encoded secret for persistence and the otpauth://
// provisioning URI suitable for encoding into a QR code by the caller.
func (e *Engine) GenerateSecret(account string) (secret, uri string, err error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      e.issuer,
		AccountName: account,
		Period:      e.period,
		Digits:      otp.DigitsSix,
	})
	if err != nil {
		return "", "", fmt.Errorf("error generating totp secret: %w", err)
	}

	return key.Secret(), key.URL(), nil
}

// Code returns the 6-digit code valid for the time step containing at.
//
// It is a deterministic function of the secret and the coarse time step and
// is intended for internal use and test stubs only — never expose it to the
// registrant.
func (e *Engine) Code(secret string, at time.Time) (string, error) {
	code, err := totp.GenerateCodeCustom(secret, at, e.validateOpts())
	if err != nil {
		return "", fmt.Errorf("error generating totp code: %w", err)
	}

	return code, nil
}

// Verify reports whether the submitted code is valid for the secret at the
// given reference time, tolerating the configured skew window of adjacent
// time steps.
//
// Verification fails closed: a malformed secret, an empty or non-numeric
// code, or any library-level error all yield false, never a panic.
func (e *Engine) Verify(secret, code string, at time.Time) bool {
	ok, err := totp.ValidateCustom(code, secret, at, e.validateOpts())
	if err != nil {
		return false
	}

	return ok
}

func (e *Engine) validateOpts() totp.ValidateOpts {
	return totp.ValidateOpts{
		Period:    e.period,
		Skew:      e.skew,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	}
}
