package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles user account creation, lookup, and token-field updates against
// the "users" table and works with either configured backend through the
// [DB] wrapper's error classifier.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with the
// server-assigned CreatedAt field populated via the RETURNING clause.
//
// Error handling:
//   - uniqueness violation on username → [ErrUsernameTaken]; nothing is
//     persisted, so the registration invariant holds even under concurrent
//     attempts with the same username.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser,
		user.Username, user.Email, user.PasswordHash, user.MFAEnabled, nullString(user.MFASecret))

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: insert failed")
		return models.User{}, r.classifyCreateErr(err)
	}

	if err := row.Scan(&user.CreatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, r.classifyCreateErr(err)
	}

	return user, nil
}

// classifyCreateErr maps insert errors through the driver classifier.
// The unique violation can surface either from Row.Err or from Scan
// depending on the driver, so both paths funnel here.
func (r *userRepository) classifyCreateErr(err error) error {
	if r.db.errorClassificator.Classify(err) == UniqueViolation {
		return ErrUsernameTaken
	}
	return fmt.Errorf("unexpected DB error: %w", err)
}

// FindUserByUsername retrieves the user record matching the given username.
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findUserByUsername, username)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error: query failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// FindUserByToken retrieves the user record currently holding the given
// bearer token. The stored expiry is returned as-is: whether the token is
// still valid is decided by the caller against its own clock, so that a
// timestamp mutated in the database takes effect on the very next lookup.
//
// Error handling mirrors [userRepository.FindUserByUsername]; an unknown
// token is indistinguishable from a missing user ([ErrNoUserWasFound]).
func (r *userRepository) FindUserByToken(ctx context.Context, token string) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, findUserByToken, token)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByToken").Msg("error: query failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// UpdateUserToken stores the issued token and expiry on the user record.
// Reissuing overwrites the previous token unconditionally: concurrent logins
// for the same user race on last-write-wins, matching the single-session
// token model.
func (r *userRepository) UpdateUserToken(ctx context.Context, username, token string, expiresAt time.Time) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateUserToken, token, expiresAt, username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUserToken").Msg("error: update failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// ClearExpiredTokens nulls out token fields whose expiry precedes the
// cutoff. Used by the background sweeper; validation correctness never
// depends on it because expiry is compared on every lookup.
func (r *userRepository) ClearExpiredTokens(ctx context.Context, before time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, clearExpiredTokens, before)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ClearExpiredTokens").Msg("error: sweep failed")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}

// scanUser reads one users-table row, converting nullable columns
// (mfa_secret, token, token_expires_at) to their Go zero values.
func scanUser(row *sql.Row) (models.User, error) {
	var (
		user      models.User
		mfaSecret sql.NullString
		token     sql.NullString
		expiresAt sql.NullTime
	)

	err := row.Scan(&user.Username, &user.Email, &user.PasswordHash,
		&user.MFAEnabled, &mfaSecret, &token, &expiresAt, &user.CreatedAt)
	if err != nil {
		return models.User{}, err
	}

	user.MFASecret = mfaSecret.String
	user.Token = token.String
	user.TokenExpiresAt = expiresAt.Time

	return user, nil
}

// nullString maps an empty string to SQL NULL so that the partial unique
// index on token and the mfa_secret-iff-enabled invariant hold at the
// storage level.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
