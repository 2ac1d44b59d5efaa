package services

import (
	"context"
	"time"

	"github.com/SscSPs/videotube/internal/core/domain"
	"github.com/SscSPs/videotube/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetChannelProfile retrieves the public channel page for username as seen by viewerID.
	GetChannelProfile(ctx context.Context, username, viewerID string) (*domain.ChannelProfile, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// Register creates a new user after validating input and uploading optional images.
	Register(ctx context.Context, req dto.RegisterUserRequest, files dto.RegisterFiles) (*domain.User, error)

	// UpdateAccountDetails changes the user's full name and email.
	UpdateAccountDetails(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error)

	// UpdateAvatar replaces the avatar with the image at localPath.
	UpdateAvatar(ctx context.Context, userID, localPath string) (*domain.User, error)

	// UpdateCoverImage replaces the cover image with the image at localPath.
	UpdateCoverImage(ctx context.Context, userID, localPath string) (*domain.User, error)
}

// UserSessionSvc persists refresh token state on the user record.
type UserSessionSvc interface {
	// UpdateRefreshToken updates the refresh token details for a user.
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error

	// RotateRefreshToken swaps currentHash for newHash if currentHash is still the stored one.
	RotateRefreshToken(ctx context.Context, userID, currentHash, newHash string, refreshTokenExpiryTime time.Time) error

	// ClearRefreshToken clears the refresh token for a user.
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// AuthenticateUser verifies username-or-email and password.
	AuthenticateUser(ctx context.Context, req dto.LoginRequest) (*domain.User, error)

	// ChangePassword verifies the old password and stores a hash of the new one.
	ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest) error

	// FindOrCreateGoogleUser returns the user owning the Google email, creating one on first sign-in.
	FindOrCreateGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserSessionSvc
	UserAuthSvc
}
