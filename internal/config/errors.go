package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a negative token lifetime).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, a DSN without a driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidGreeterConfigs indicates invalid greeter settings
	// (for example, a missing auth service URL).
	ErrInvalidGreeterConfigs = errors.New("invalid greeter configuration")
)
