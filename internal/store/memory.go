package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/models"
)

// MemoryUserRepository is a mutex-guarded in-memory implementation of
// [UserRepository]. It backs the server when no database is configured and
// substitutes for the SQL repository in tests.
//
// The single mutex makes the uniqueness check atomic with the insert, so
// concurrent registrations with the same username cannot both succeed —
// the same guarantee the SQL backends derive from their unique constraint.
type MemoryUserRepository struct {
	logger *logger.Logger

	mu    sync.RWMutex
	users map[string]models.User
}

// NewMemoryUserRepository constructs an empty in-memory [UserRepository].
func NewMemoryUserRepository(logger *logger.Logger) *MemoryUserRepository {
	logger.Debug().Msg("creating in-memory user repository")
	return &MemoryUserRepository{
		logger: logger,
		users:  make(map[string]models.User),
	}
}

func (r *MemoryUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Username]; exists {
		return models.User{}, ErrUsernameTaken
	}

	user.CreatedAt = time.Now()
	r.users[user.Username] = user

	return user, nil
}

func (r *MemoryUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[username]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}

	return user, nil
}

func (r *MemoryUserRepository) FindUserByToken(ctx context.Context, token string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if token == "" {
		return models.User{}, ErrNoUserWasFound
	}

	for _, user := range r.users {
		if user.Token == token {
			return user, nil
		}
	}

	return models.User{}, ErrNoUserWasFound
}

func (r *MemoryUserRepository) UpdateUserToken(ctx context.Context, username, token string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[username]
	if !ok {
		return ErrNoUserWasFound
	}

	// last write wins: a concurrent login replaces the previous token
	user.Token = token
	user.TokenExpiresAt = expiresAt
	r.users[username] = user

	return nil
}

func (r *MemoryUserRepository) ClearExpiredTokens(ctx context.Context, before time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var cleared int64
	for username, user := range r.users {
		if user.Token != "" && user.TokenExpiresAt.Before(before) {
			user.Token = ""
			user.TokenExpiresAt = time.Time{}
			r.users[username] = user
			cleared++
		}
	}

	return cleared, nil
}

// SetTokenExpiry rewrites the stored expiry for the user holding the given
// token. Test hook mirroring a direct database mutation: subsequent
// validations must observe the new timestamp immediately.
func (r *MemoryUserRepository) SetTokenExpiry(token string, expiresAt time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for username, user := range r.users {
		if user.Token == token {
			user.TokenExpiresAt = expiresAt
			r.users[username] = user
			return true
		}
	}

	return false
}
