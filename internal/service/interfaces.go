// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-auth-gate/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, request models.SignUpRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.Token, error)
	ValidateToken(ctx context.Context, token string) (models.User, error)
}
