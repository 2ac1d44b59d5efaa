package services

import (
	"context"

	"github.com/SscSPs/videotube/internal/core/domain"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// TokenSvcFacade issues, rotates, revokes and verifies tokens.
type TokenSvcFacade interface {
	// IssueTokenPair signs a fresh access/refresh pair and persists the refresh token hash,
	// replacing any previous one.
	IssueTokenPair(ctx context.Context, user *domain.User) (*domain.TokenPair, error)

	// RefreshTokenPair verifies the presented refresh token against the stored one and rotates it.
	RefreshTokenPair(ctx context.Context, refreshToken string) (*domain.User, *domain.TokenPair, error)

	// RevokeRefreshToken clears the stored refresh token so it can no longer be used.
	RevokeRefreshToken(ctx context.Context, userID string) error

	// ValidateAccessToken verifies an access token and returns the user id it was issued to.
	ValidateAccessToken(ctx context.Context, accessToken string) (string, error)
}

// GoogleOAuthHandlerSvcFacade defines the interface for Google OAuth operations.
type GoogleOAuthHandlerSvcFacade interface {
	// GenerateStateString creates a secure random string to be used as a CSRF token for OAuth flow.
	GenerateStateString(ctx context.Context) (string, error)
	// GetGoogleLoginURL returns the URL to redirect the user to for Google login.
	GetGoogleLoginURL(ctx context.Context, state string) string
	// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
	// GetUserInfo uses the access token to get user information from Google.
	GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error)
	// ValidateGoogleIDToken validates an ID token string from Google and returns its payload.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
