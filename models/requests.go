// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SignUpRequest carries the fields submitted by the registration form.
// ConfirmPassword must match Password exactly; EnableMFA opts the account
// into TOTP enrollment at creation time.
type SignUpRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	EnableMFA       bool   `json:"enable_mfa"`
}

// LoginRequest carries a login attempt. MFACode is required only for
// accounts registered with MFA enabled; it is ignored otherwise.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	MFACode  string `json:"mfa_code,omitempty"`
}

// ValidateTokenRequest is submitted by downstream services holding a bearer
// token obtained at login.
type ValidateTokenRequest struct {
	Token string `json:"token"`
}
