package config

import (
	"fmt"
	"time"
)

// GreeterConfig is the flattened configuration view used by the greeter
// binary. It carries only the fields that runtime needs.
type GreeterConfig struct {
	// HTTPAddress is the TCP address on which the greeter listens.
	HTTPAddress string
	// AuthServiceURL is the base URL of the auth service used to validate
	// bearer tokens.
	AuthServiceURL string
	// RequestTimeout is the timeout applied to outbound validation calls.
	RequestTimeout time.Duration
}

// GetGreeterConfig builds and validates a greeter-specific config view from
// the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the greeter runtime, and validates the resulting
// [GreeterConfig].
func GetGreeterConfig() (*GreeterConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	greeterCfg := &GreeterConfig{
		HTTPAddress:    cfg.Greeter.HTTPAddress,
		AuthServiceURL: cfg.Greeter.AuthServiceURL,
		RequestTimeout: cfg.Greeter.RequestTimeout,
	}

	if greeterCfg.HTTPAddress == "" {
		greeterCfg.HTTPAddress = ":8081"
	}
	if greeterCfg.RequestTimeout == 0 {
		greeterCfg.RequestTimeout = DefaultRequestTimeout
	}

	return greeterCfg, greeterCfg.validate()
}
