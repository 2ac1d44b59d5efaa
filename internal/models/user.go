package models

import (
	"database/sql"
	"time"
)

// User mirrors a row of the users table.
type User struct {
	UserID       string `db:"user_id"`
	Username     string `db:"username"`
	Email        string `db:"email"`
	FullName     string `db:"full_name"`
	Avatar       string `db:"avatar"`
	CoverImage   string `db:"cover_image"`
	PasswordHash string `db:"password_hash"`

	// Refresh Token Fields
	RefreshTokenHash      sql.NullString `db:"refresh_token_hash"`
	RefreshTokenExpiresAt sql.NullTime   `db:"refresh_token_expires_at"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
