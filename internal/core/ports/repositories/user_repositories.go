package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/videotube/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsernameOrEmail retrieves the user matching either identifier.
	// Empty identifiers are ignored.
	FindUserByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email address.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindChannelProfile retrieves the public channel page for username.
	// viewerID may be empty for anonymous viewers.
	FindChannelProfile(ctx context.Context, username, viewerID string) (*domain.ChannelProfile, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user. Returns apperrors.ErrDuplicate on username or email collision.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates profile fields (full name, email, avatar, cover image).
	UpdateUser(ctx context.Context, user domain.User) error

	// UpdatePassword stores a new password hash.
	UpdatePassword(ctx context.Context, userID, passwordHash string, updatedAt time.Time) error
}

// UserSessionManager persists the single active refresh token of a user.
type UserSessionManager interface {
	// UpdateRefreshToken stores the hash of a newly issued refresh token, replacing any previous one.
	UpdateRefreshToken(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error

	// RotateRefreshToken replaces currentHash with newHash only if currentHash is still stored.
	// Returns apperrors.ErrNotFound when the stored hash no longer matches.
	RotateRefreshToken(ctx context.Context, userID, currentHash, newHash string, expiresAt time.Time) error

	// ClearRefreshToken revokes the stored refresh token.
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	UserSessionManager
}
