package store

// Prepared-constant SQL for the users table. Placeholders use the $N form,
// which both PostgreSQL and SQLite accept, so the same statements serve
// either backend.
const (
	createUser = `INSERT INTO users (username, email, password_hash, mfa_enabled, mfa_secret)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING created_at;`

	findUserByUsername = `SELECT username, email, password_hash, mfa_enabled, mfa_secret, token, token_expires_at, created_at
    FROM users
    WHERE username = $1;`

	findUserByToken = `SELECT username, email, password_hash, mfa_enabled, mfa_secret, token, token_expires_at, created_at
    FROM users
    WHERE token = $1;`

	updateUserToken = `UPDATE users
    SET token = $1, token_expires_at = $2
    WHERE username = $3;`

	clearExpiredTokens = `UPDATE users
    SET token = NULL, token_expires_at = NULL
    WHERE token IS NOT NULL AND token_expires_at < $1;`
)
