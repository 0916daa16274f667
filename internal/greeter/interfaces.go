package greeter

import (
	"context"

	"github.com/MKhiriev/go-auth-gate/models"
)

// TokenVerifier checks a bearer token against the auth service and reports
// who owns it.
type TokenVerifier interface {
	// Verify returns the token owner, or ErrUnauthorized when the token is
	// missing, unknown, or expired.
	Verify(ctx context.Context, token string) (models.ValidateTokenResponse, error)
}
