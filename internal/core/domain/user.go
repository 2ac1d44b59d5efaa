package domain

import (
	"time"

	"github.com/SscSPs/videotube/internal/utils"
)

// User is a registered account. PasswordHash and RefreshTokenHash never leave the server.
type User struct {
	UserID                string
	Username              string
	Email                 string
	FullName              string
	Avatar                string
	CoverImage            string
	PasswordHash          string
	RefreshTokenHash      *string
	RefreshTokenExpiresAt *time.Time
	Timestamps
}

// SetPassword replaces the stored hash with a bcrypt hash of plain.
func (u *User) SetPassword(plain string) error {
	hash, err := utils.HashPassword(plain)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

// VerifyPassword reports whether candidate matches the stored hash.
func (u *User) VerifyPassword(candidate string) bool {
	return utils.CheckPasswordHash(candidate, u.PasswordHash)
}

// HasActiveRefreshToken reports whether the user holds a non-revoked session.
func (u *User) HasActiveRefreshToken() bool {
	return u.RefreshTokenHash != nil && *u.RefreshTokenHash != ""
}

// Profile returns the public projection of the user.
func (u *User) Profile() OwnerProfile {
	return OwnerProfile{UserID: u.UserID, Username: u.Username, FullName: u.FullName, Avatar: u.Avatar}
}

// ChannelProfile is a user's public channel page as seen by a viewer.
type ChannelProfile struct {
	UserID                  string
	Username                string
	FullName                string
	Email                   string
	Avatar                  string
	CoverImage              string
	SubscribersCount        int64
	ChannelsSubscribedCount int64
	IsSubscribed            bool
}

// GoogleUserInfo is the subset of a Google identity used for sign-in.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
