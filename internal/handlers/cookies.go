package handlers

import (
	"net/http"
	"time"

	"github.com/SscSPs/videotube/internal/core/domain"
	"github.com/SscSPs/videotube/internal/middleware"
	"github.com/SscSPs/videotube/internal/platform/config"
	"github.com/gin-gonic/gin"
)

const (
	refreshTokenCookie = "refreshToken"
	oauthStateCookie   = "oauthState"
)

// cookieOptions are the attributes shared by every auth cookie.
type cookieOptions struct {
	secure   bool
	sameSite http.SameSite
}

func newCookieOptions(cfg *config.Config) cookieOptions {
	opts := cookieOptions{secure: cfg.CookieSecure, sameSite: http.SameSiteLaxMode}
	if cfg.CookieSecure {
		// The frontend lives on another origin in production.
		opts.sameSite = http.SameSiteNoneMode
	}
	return opts
}

func (o cookieOptions) set(c *gin.Context, name, value string, expires time.Time) {
	maxAge := int(time.Until(expires).Seconds())
	if maxAge < 0 {
		maxAge = -1
	}
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		Expires:  expires,
		Secure:   o.secure,
		HttpOnly: true,
		SameSite: o.sameSite,
	})
}

func (o cookieOptions) clear(c *gin.Context, name string) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   o.secure,
		HttpOnly: true,
		SameSite: o.sameSite,
	})
}

func (o cookieOptions) setTokenPair(c *gin.Context, pair *domain.TokenPair) {
	o.set(c, middleware.AccessTokenCookie, pair.AccessToken, pair.AccessTokenExpiresAt)
	o.set(c, refreshTokenCookie, pair.RefreshToken, pair.RefreshTokenExpiresAt)
}

func (o cookieOptions) clearTokenPair(c *gin.Context) {
	o.clear(c, middleware.AccessTokenCookie)
	o.clear(c, refreshTokenCookie)
}
