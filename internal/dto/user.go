package dto

import (
	"time"

	"github.com/SscSPs/videotube/internal/core/domain"
)

// RegisterUserRequest carries the registration form. Avatar and cover image arrive as files.
type RegisterUserRequest struct {
	FullName string `form:"fullName" json:"fullName"`
	Email    string `form:"email" json:"email"`
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

// RegisterFiles are the optional images uploaded alongside registration, saved as local temp files.
type RegisterFiles struct {
	AvatarPath     string
	CoverImagePath string
}

// LoginRequest identifies the user by username or email.
type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshTokenRequest is the body fallback when the refresh cookie is absent.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// ChangePasswordRequest carries the current and the new password.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,notblank"`
}

// UpdateUserRequest carries the editable account details. At least one field must be set.
type UpdateUserRequest struct {
	FullName *string `json:"fullName" binding:"omitempty,notblank"`
	Email    *string `json:"email" binding:"omitempty,email"`
}

// GoogleTokenRequest carries a Google ID token obtained by the client.
type GoogleTokenRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// UserResponse is the public representation of a user. It never contains credentials.
type UserResponse struct {
	UserID     string    `json:"_id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	FullName   string    `json:"fullName"`
	Avatar     string    `json:"avatar"`
	CoverImage string    `json:"coverImage"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// LoginResponse is returned by login and carries both tokens for non-cookie clients.
type LoginResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

// RefreshTokenResponse is returned after a successful rotation.
type RefreshTokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// ChannelProfileResponse is a user's public channel page.
type ChannelProfileResponse struct {
	UserID                  string `json:"_id"`
	Username                string `json:"username"`
	FullName                string `json:"fullName"`
	Email                   string `json:"email"`
	Avatar                  string `json:"avatar"`
	CoverImage              string `json:"coverImage"`
	SubscribersCount        int64  `json:"subscribersCount"`
	ChannelsSubscribedCount int64  `json:"channelsSubscribedToCount"`
	IsSubscribed            bool   `json:"isSubscribed"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:     user.UserID,
		Username:   user.Username,
		Email:      user.Email,
		FullName:   user.FullName,
		Avatar:     user.Avatar,
		CoverImage: user.CoverImage,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}

// ToChannelProfileResponse converts a domain.ChannelProfile to its DTO.
func ToChannelProfileResponse(p *domain.ChannelProfile) ChannelProfileResponse {
	return ChannelProfileResponse{
		UserID:                  p.UserID,
		Username:                p.Username,
		FullName:                p.FullName,
		Email:                   p.Email,
		Avatar:                  p.Avatar,
		CoverImage:              p.CoverImage,
		SubscribersCount:        p.SubscribersCount,
		ChannelsSubscribedCount: p.ChannelsSubscribedCount,
		IsSubscribed:            p.IsSubscribed,
	}
}
