package greeter

import "errors"

// ErrUnauthorized is returned by a TokenVerifier when the auth service
// rejects the presented token.
var ErrUnauthorized = errors.New("invalid or expired token")
