package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func userColumns() []string {
	return []string{"username", "email", "password_hash", "mfa_enabled", "mfa_secret", "token", "token_expires_at", "created_at"}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		Username:     "testUser1",
		Email:        "testUser1@testuser.com",
		PasswordHash: "$2a$10$hash",
	}

	now := time.Now()

	rows := sqlmock.NewRows([]string{"created_at"}).AddRow(now)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Username, user.Email, user.PasswordHash, false, sql.NullString{}).
		WillReturnRows(rows)

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created.CreatedAt.Equal(now) {
		t.Errorf("expected CreatedAt=%v, got %v", now, created.CreatedAt)
	}
	if created.Username != user.Username {
		t.Errorf("expected username %s, got %s", user.Username, created.Username)
	}
}

func TestCreateUser_WithMFASecret(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		Username:     "testUser2",
		Email:        "testUser2@testuser.com",
		PasswordHash: "$2a$10$hash",
		MFAEnabled:   true,
		MFASecret:    "JBSWY3DPEHPK3PXP",
	}

	rows := sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now())

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Username, user.Email, user.PasswordHash, true, sql.NullString{String: user.MFASecret, Valid: true}).
		WillReturnRows(rows)

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.MFASecret != user.MFASecret {
		t.Errorf("expected mfa secret preserved, got %q", created.MFASecret)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Username: "testUser1"}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(ctx, user)
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Username: "testUser1"}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(ctx, user)
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFindUserByUsername_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	expiry := now.Add(10 * time.Second)

	rows := sqlmock.NewRows(userColumns()).
		AddRow("testUser1", "testUser1@testuser.com", "$2a$10$hash", true, "JBSWY3DPEHPK3PXP", "deadbeef", expiry, now)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("testUser1").
		WillReturnRows(rows)

	user, err := repo.FindUserByUsername(ctx, "testUser1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Username != "testUser1" || !user.MFAEnabled || user.MFASecret != "JBSWY3DPEHPK3PXP" {
		t.Errorf("unexpected user: %+v", user)
	}
	if user.Token != "deadbeef" || !user.TokenExpiresAt.Equal(expiry) {
		t.Errorf("unexpected token fields: %+v", user)
	}
}

func TestFindUserByUsername_NullableFields(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows(userColumns()).
		AddRow("testUser1", "testUser1@testuser.com", "$2a$10$hash", false, nil, nil, nil, time.Now())

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("testUser1").
		WillReturnRows(rows)

	user, err := repo.FindUserByUsername(ctx, "testUser1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.MFASecret != "" || user.Token != "" || !user.TokenExpiresAt.IsZero() {
		t.Errorf("expected zero values for nullable fields, got %+v", user)
	}
}

func TestFindUserByUsername_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByUsername(ctx, "missing")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestFindUserByToken_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	expiry := time.Now().Add(20 * time.Second)

	rows := sqlmock.NewRows(userColumns()).
		AddRow("testUser1", "testUser1@testuser.com", "$2a$10$hash", false, nil, "cafebabe", expiry, time.Now())

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("cafebabe").
		WillReturnRows(rows)

	user, err := repo.FindUserByToken(ctx, "cafebabe")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Token != "cafebabe" {
		t.Errorf("expected token cafebabe, got %q", user.Token)
	}
}

func TestFindUserByToken_Unknown(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("unknown-token").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByToken(ctx, "unknown-token")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestUpdateUserToken_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	expiry := time.Now().Add(10 * time.Second)

	mock.ExpectExec("UPDATE users").
		WithArgs("cafebabe", expiry, "testUser1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateUserToken(ctx, "testUser1", "cafebabe", expiry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateUserToken_NoSuchUser(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateUserToken(ctx, "missing", "cafebabe", time.Now())
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestClearExpiredTokens(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	cutoff := time.Now()

	mock.ExpectExec("UPDATE users").
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 3))

	cleared, err := repo.ClearExpiredTokens(ctx, cutoff)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cleared != 3 {
		t.Errorf("expected 3 cleared tokens, got %d", cleared)
	}
}
