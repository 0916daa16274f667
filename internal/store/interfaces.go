package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-auth-gate/models"
)

// UserRepository is the persistence boundary of the authentication core.
// The core holds no ambient connection state; implementations are injected,
// which allows substituting the in-memory repository in tests.
type UserRepository interface {
	// CreateUser persists a new user record. Username uniqueness is
	// enforced atomically with the insert; a duplicate yields
	// [ErrUsernameTaken] and no partial record.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the user owning the given username or
	// [ErrNoUserWasFound].
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByToken returns the user currently holding the given bearer
	// token or [ErrNoUserWasFound]. Expiry is NOT checked here; the stored
	// timestamp is returned for the caller to compare.
	FindUserByToken(ctx context.Context, token string) (models.User, error)

	// UpdateUserToken stores a freshly issued token and its expiry on the
	// user record, replacing any previous token (last write wins).
	UpdateUserToken(ctx context.Context, username, token string, expiresAt time.Time) error

	// ClearExpiredTokens removes tokens whose expiry precedes the given
	// cutoff and reports how many records were affected.
	ClearExpiredTokens(ctx context.Context, before time.Time) (int64, error)
}

// ErrorClassificator inspects driver-level errors and maps them to a
// driver-independent [ErrorClassification] so that repository code stays
// free of backend-specific error handling.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
