// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package greeter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
	"github.com/MKhiriev/go-auth-gate/models"
	"github.com/go-resty/resty/v2"
)

type authClient struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewAuthClient constructs an HTTP/REST implementation of [TokenVerifier].
// It normalises and validates the base URL from cfg.AuthServiceURL and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if cfg.AuthServiceURL is empty or cannot be parsed as a
// valid URL.
func NewAuthClient(cfg *config.GreeterConfig, logger *logger.Logger) (TokenVerifier, error) {
	baseURL, err := normalizeBaseURL(cfg.AuthServiceURL)
	if err != nil {
		return nil, fmt.Errorf("invalid auth service url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &authClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Verify implements [TokenVerifier]. It POSTs the token to
// POST /api/token/validate and decodes the owner from the response.
// An HTTP 401 maps to [ErrUnauthorized]; any other non-2xx status is
// returned as a generic error.
func (c *authClient) Verify(ctx context.Context, token string) (models.ValidateTokenResponse, error) {
	var owner models.ValidateTokenResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ValidateTokenRequest{Token: token}).
		SetResult(&owner).
		Post("/api/token/validate")
	if err != nil {
		return models.ValidateTokenResponse{}, fmt.Errorf("validate token request: %w", err)
	}

	if err = mapHTTPError(resp); err != nil {
		return models.ValidateTokenResponse{}, err
	}

	return owner, nil
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}
