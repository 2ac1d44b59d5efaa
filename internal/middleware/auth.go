package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/videotube/internal/apperrors"
	portssvc "github.com/SscSPs/videotube/internal/core/ports/services"
	"github.com/SscSPs/videotube/internal/dto"
	"github.com/gin-gonic/gin"
)

// AccessTokenCookie is the cookie carrying the access token.
const AccessTokenCookie = "accessToken"

// extractAccessToken reads the access token from the cookie, falling back to a Bearer header.
func extractAccessToken(c *gin.Context) string {
	if token, err := c.Cookie(AccessTokenCookie); err == nil && token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	scheme, token, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// authenticate verifies the access token and loads its user. It never writes a response.
func authenticate(c *gin.Context, tokens portssvc.TokenSvcFacade, users portssvc.UserReaderSvc) error {
	token := extractAccessToken(c)
	if token == "" {
		return apperrors.Unauthorized("Unauthorized request")
	}

	ctx := c.Request.Context()
	userID, err := tokens.ValidateAccessToken(ctx, token)
	if err != nil {
		return err
	}

	user, err := users.GetUserByID(ctx, userID)
	if err != nil {
		if apperrors.HTTPStatus(err) == http.StatusNotFound {
			return apperrors.Unauthorized("Invalid access token")
		}
		return err
	}

	enrichedLogger := GetLoggerFromCtx(ctx).With(slog.String("user_id", user.UserID))
	ctx = WithLogger(WithUser(ctx, user), enrichedLogger)
	c.Request = c.Request.WithContext(ctx)
	c.Set(string(userIDKey), user.UserID)
	c.Set(string(userKey), user)
	c.Set(string(loggerCtxKey), enrichedLogger)
	return nil
}

// AuthMiddleware rejects requests without a valid access token for an existing user.
func AuthMiddleware(tokens portssvc.TokenSvcFacade, users portssvc.UserReaderSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := authenticate(c, tokens, users); err != nil {
			status := apperrors.HTTPStatus(err)
			GetLoggerFromCtx(c.Request.Context()).Warn("Authentication failed",
				slog.Int("status", status),
				slog.String("error", err.Error()))
			c.AbortWithStatusJSON(status, dto.NewErrorResponse(status, apperrors.PublicMessage(err)))
			return
		}
		c.Next()
	}
}

// OptionalAuthMiddleware attaches the user when a valid token is present and lets anonymous requests through.
func OptionalAuthMiddleware(tokens portssvc.TokenSvcFacade, users portssvc.UserReaderSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if extractAccessToken(c) != "" {
			if err := authenticate(c, tokens, users); err != nil {
				GetLoggerFromCtx(c.Request.Context()).Debug("Ignoring invalid optional credentials", slog.String("error", err.Error()))
			}
		}
		c.Next()
	}
}
