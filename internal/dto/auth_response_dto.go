package dto

import "github.com/SscSPs/videotube/internal/core/domain"

// ToLoginResponse combines the user and the issued token pair.
func ToLoginResponse(user *domain.User, pair *domain.TokenPair) LoginResponse {
	return LoginResponse{
		User:         ToUserResponse(user),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}
}

// ToRefreshTokenResponse exposes a rotated token pair.
func ToRefreshTokenResponse(pair *domain.TokenPair) RefreshTokenResponse {
	return RefreshTokenResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken}
}
