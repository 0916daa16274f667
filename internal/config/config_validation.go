// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Fallback values applied by applyDefaults when no source set a field.
const (
	DefaultTokenTTL       = 24 * time.Hour
	DefaultTOTPIssuer     = "go-auth-gate"
	DefaultTOTPPeriod     = 30
	DefaultTOTPSkew       = 1
	DefaultHTTPAddress    = ":8080"
	DefaultRequestTimeout = 30 * time.Second
	DefaultSweepInterval  = time.Minute
)

// applyDefaults fills in fallback values for fields no configuration source
// provided. BcryptCost stays zero on purpose: the hashing helper maps it to
// the bcrypt library default.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenTTL == 0 {
		cfg.App.TokenTTL = DefaultTokenTTL
	}
	if cfg.App.TOTPIssuer == "" {
		cfg.App.TOTPIssuer = DefaultTOTPIssuer
	}
	if cfg.App.TOTPPeriod == 0 {
		cfg.App.TOTPPeriod = DefaultTOTPPeriod
	}
	if cfg.App.TOTPSkew == 0 {
		cfg.App.TOTPSkew = DefaultTOTPSkew
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Workers.SweepInterval == 0 {
		cfg.Workers.SweepInterval = DefaultSweepInterval
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenTTL < 0 {
		return ErrInvalidAppConfigs
	}

	// a DSN without a driver (or the other way round) is a broken storage setup
	if (cfg.Storage.DB.DSN == "") != (cfg.Storage.DB.Driver == "") {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func (cfg *GreeterConfig) validate() error {
	if cfg.HTTPAddress == "" {
		return ErrInvalidGreeterConfigs
	}

	if cfg.AuthServiceURL == "" {
		return ErrInvalidGreeterConfigs
	}

	return nil
}
