// Package totp implements the multi-factor authentication engine.
//
// It wraps RFC 6238 time-based one-time passwords: generating per-user
// shared secrets with provisioning URIs, deriving the current 6-digit code
// for a secret, and verifying submitted codes within a configurable drift
// window. The reference time is always an explicit parameter so the engine
// has no ambient clock dependency.
package totp
