package services

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/videotube/internal/apperrors"
	"github.com/SscSPs/videotube/internal/core/domain"
	portssvc "github.com/SscSPs/videotube/internal/core/ports/services"
	"github.com/SscSPs/videotube/internal/platform/config"
	"github.com/SscSPs/videotube/internal/utils"
	"github.com/golang-jwt/jwt/v5"
)

// tokenService implements the TokenSvcFacade.
// Access tokens are stateless. The hash of the single live refresh token is kept on the user record,
// so a refresh token is only accepted while it is the one last issued.
type tokenService struct {
	BaseService
	cfg         *config.Config
	userService portssvc.UserSvcFacade
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, userService portssvc.UserSvcFacade) portssvc.TokenSvcFacade {
	return &tokenService{
		cfg:         cfg,
		userService: userService,
	}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

func errRefreshRejected() error {
	return apperrors.NewAppError(http.StatusUnauthorized, "Refresh token is expired or used", apperrors.ErrRefreshTokenExpired)
}

// signPair signs a new access/refresh pair without persisting anything.
func (s *tokenService) signPair(user *domain.User) (*domain.TokenPair, error) {
	accessClaims := utils.TokenClaims{
		TokenType:        utils.TokenTypeAccess,
		Username:         user.Username,
		Email:            user.Email,
		RegisteredClaims: jwt.RegisteredClaims{Subject: user.UserID},
	}
	accessToken, accessExp, err := utils.GenerateJWT(accessClaims, s.cfg.AccessTokenSecret, s.cfg.AccessTokenExpiry, s.cfg.JWTIssuer)
	if err != nil {
		return nil, err
	}

	refreshClaims := utils.TokenClaims{
		TokenType:        utils.TokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{Subject: user.UserID},
	}
	refreshToken, refreshExp, err := utils.GenerateJWT(refreshClaims, s.cfg.RefreshTokenSecret, s.cfg.RefreshTokenExpiry, s.cfg.JWTIssuer)
	if err != nil {
		return nil, err
	}

	return &domain.TokenPair{
		AccessToken:           accessToken,
		AccessTokenExpiresAt:  accessExp,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: refreshExp,
	}, nil
}

// IssueTokenPair signs a new pair and overwrites the stored refresh token, revoking any earlier one.
func (s *tokenService) IssueTokenPair(ctx context.Context, user *domain.User) (*domain.TokenPair, error) {
	pair, err := s.signPair(user)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign tokens", slog.String("user_id", user.UserID))
		return nil, apperrors.Internal("Something went wrong while generating tokens", err)
	}

	hash := utils.HashRefreshToken(pair.RefreshToken)
	if err := s.userService.UpdateRefreshToken(ctx, user.UserID, hash, pair.RefreshTokenExpiresAt); err != nil {
		return nil, err
	}
	return pair, nil
}

// RefreshTokenPair verifies the presented token, checks it is still the stored one and rotates it.
func (s *tokenService) RefreshTokenPair(ctx context.Context, refreshToken string) (*domain.User, *domain.TokenPair, error) {
	if refreshToken == "" {
		return nil, nil, apperrors.Unauthorized("Unauthorized request")
	}

	claims, err := utils.ParseAndValidateJWT(refreshToken, s.cfg.RefreshTokenSecret, utils.TokenTypeRefresh)
	if err != nil {
		s.LogDebug(ctx, "Rejected refresh token", slog.String("reason", err.Error()))
		return nil, nil, apperrors.Unauthorized("Invalid refresh token")
	}

	user, err := s.userService.GetUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, apperrors.Unauthorized("Invalid refresh token")
		}
		return nil, nil, err
	}

	if !user.HasActiveRefreshToken() || !utils.CompareRefreshTokenHash(refreshToken, *user.RefreshTokenHash) {
		s.LogInfo(ctx, "Refresh token does not match the stored one", slog.String("user_id", user.UserID))
		return nil, nil, errRefreshRejected()
	}
	if user.RefreshTokenExpiresAt != nil && time.Now().After(*user.RefreshTokenExpiresAt) {
		return nil, nil, errRefreshRejected()
	}

	pair, err := s.signPair(user)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign tokens", slog.String("user_id", user.UserID))
		return nil, nil, apperrors.Internal("Something went wrong while generating tokens", err)
	}

	// Compare-and-swap: a concurrent refresh with the same token loses here.
	err = s.userService.RotateRefreshToken(ctx, user.UserID, *user.RefreshTokenHash, utils.HashRefreshToken(pair.RefreshToken), pair.RefreshTokenExpiresAt)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, errRefreshRejected()
		}
		s.LogError(ctx, err, "Failed to rotate refresh token", slog.String("user_id", user.UserID))
		return nil, nil, apperrors.Internal("Failed to refresh tokens", err)
	}

	return user, pair, nil
}

// RevokeRefreshToken clears the stored refresh token.
func (s *tokenService) RevokeRefreshToken(ctx context.Context, userID string) error {
	return s.userService.ClearRefreshToken(ctx, userID)
}

// ValidateAccessToken verifies an access token and returns its subject.
func (s *tokenService) ValidateAccessToken(ctx context.Context, accessToken string) (string, error) {
	if accessToken == "" {
		return "", apperrors.Unauthorized("Unauthorized request")
	}
	claims, err := utils.ParseAndValidateJWT(accessToken, s.cfg.AccessTokenSecret, utils.TokenTypeAccess)
	if err != nil {
		s.LogDebug(ctx, "Rejected access token", slog.String("reason", err.Error()))
		return "", apperrors.Unauthorized("Invalid access token")
	}
	return claims.Subject, nil
}
