package testutil

import (
	"time"

	"github.com/SscSPs/videotube/internal/core/domain"
	"github.com/SscSPs/videotube/internal/platform/config"
	"github.com/google/uuid"
)

// NewTestConfig returns a config with distinct token secrets and short expiries.
func NewTestConfig() *config.Config {
	return &config.Config{
		Port:               "0",
		AccessTokenSecret:  "test-access-secret",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenSecret: "test-refresh-secret",
		RefreshTokenExpiry: time.Hour,
		JWTIssuer:          "videotube-test",
		CORSOrigins:        []string{"http://localhost:5173"},
		MaxUploadBytes:     10 << 20,
		LoginRateLimit:     "1000-M",
	}
}

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	user     domain.User
	password string
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	suffix := uuid.NewString()[:8]
	now := time.Now().UTC()
	return &UserBuilder{
		user: domain.User{
			UserID:     uuid.NewString(),
			Username:   "user_" + suffix,
			Email:      "user_" + suffix + "@example.com",
			FullName:   "Test User",
			Timestamps: domain.Timestamps{CreatedAt: now, UpdatedAt: now},
		},
		password: "Secret123",
	}
}

// WithUsername sets the username
func (b *UserBuilder) WithUsername(username string) *UserBuilder {
	b.user.Username = username
	return b
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.user.Email = email
	return b
}

// WithPassword sets the plain password that will be hashed
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// Build hashes the password and returns the user.
func (b *UserBuilder) Build() domain.User {
	u := b.user
	if err := u.SetPassword(b.password); err != nil {
		panic(err)
	}
	return u
}
