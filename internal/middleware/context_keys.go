package middleware

import (
	"context"

	"github.com/SscSPs/videotube/internal/core/domain"
	"github.com/gin-gonic/gin"
)

const (
	userIDKey = contextKey("userID")
	userKey   = contextKey("user")
)

// WithUser returns a copy of ctx carrying the authenticated user.
func WithUser(ctx context.Context, user *domain.User) context.Context {
	ctx = context.WithValue(ctx, userIDKey, user.UserID)
	return context.WithValue(ctx, userKey, user)
}

// UserIDFromCtx returns the authenticated user id carried by ctx.
func UserIDFromCtx(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if userID := c.GetString(string(userIDKey)); userID != "" {
		return userID, true
	}
	return UserIDFromCtx(c.Request.Context())
}

// GetUserFromContext retrieves the authenticated user loaded by the auth middleware.
func GetUserFromContext(c *gin.Context) (*domain.User, bool) {
	if v, ok := c.Get(string(userKey)); ok {
		if user, ok := v.(*domain.User); ok {
			return user, true
		}
	}
	user, ok := c.Request.Context().Value(userKey).(*domain.User)
	return user, ok && user != nil
}
