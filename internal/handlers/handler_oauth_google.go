package handlers

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/videotube/internal/apperrors"
	"github.com/SscSPs/videotube/internal/core/domain"
	portssvc "github.com/SscSPs/videotube/internal/core/ports/services"
	"github.com/SscSPs/videotube/internal/dto"
	"github.com/SscSPs/videotube/internal/middleware"
	"github.com/gin-gonic/gin"
)

const oauthStateTTL = 10 * time.Minute

// GoogleOAuthHandler handles Google sign-in. Both flows end with the same session cookies as a password login.
type GoogleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade
	userService        portssvc.UserSvcFacade
	tokenService       portssvc.TokenSvcFacade
	cookies            cookieOptions
	frontendBaseURL    string
}

// NewGoogleOAuthHandler creates a new instance of GoogleOAuthHandler.
func NewGoogleOAuthHandler(
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade,
	userService portssvc.UserSvcFacade,
	tokenService portssvc.TokenSvcFacade,
	cookies cookieOptions,
	frontendBaseURL string,
) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		googleOAuthService: googleOAuthService,
		userService:        userService,
		tokenService:       tokenService,
		cookies:            cookies,
		frontendBaseURL:    strings.TrimSuffix(frontendBaseURL, "/"),
	}
}

// registerGoogleOAuthRoutes registers the Google OAuth routes.
func registerGoogleOAuthRoutes(rg *gin.RouterGroup, d routeDeps) {
	h := NewGoogleOAuthHandler(d.services.GoogleOAuth, d.services.User, d.services.Token, d.cookies, d.cfg.FrontendBaseURL)
	googleRoutes := rg.Group("/auth/google")
	{
		googleRoutes.GET("/login", h.LoginGoogle)
		googleRoutes.GET("/callback", d.authLimit, h.CallbackGoogle)
		googleRoutes.POST("/token", d.authLimit, h.TokenGoogle)
	}
}

// LoginGoogle redirects the browser to Google's consent screen.
// @Summary Start Google sign-in
// @Tags oauth
// @Success 307
// @Router /auth/google/login [get]
func (h *GoogleOAuthHandler) LoginGoogle(c *gin.Context) {
	state, err := h.googleOAuthService.GenerateStateString(c.Request.Context())
	if err != nil {
		respondError(c, apperrors.Internal("Failed to start Google sign-in", err))
		return
	}
	h.cookies.set(c, oauthStateCookie, state, time.Now().Add(oauthStateTTL))
	c.Redirect(http.StatusTemporaryRedirect, h.googleOAuthService.GetGoogleLoginURL(c.Request.Context(), state))
}

// CallbackGoogle completes the redirect flow and sends the browser back to the frontend.
// @Summary Google sign-in callback
// @Tags oauth
// @Param state query string true "CSRF state"
// @Param code query string true "Authorization code"
// @Success 307
// @Failure 400 {object} dto.ErrorResponse "State mismatch"
// @Router /auth/google/callback [get]
func (h *GoogleOAuthHandler) CallbackGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	expected, _ := c.Cookie(oauthStateCookie)
	h.cookies.clear(c, oauthStateCookie)
	state := c.Query("state")
	if expected == "" || subtle.ConstantTimeCompare([]byte(expected), []byte(state)) != 1 {
		respondError(c, apperrors.Validation("Invalid OAuth state"))
		return
	}

	if googleErr := c.Query("error"); googleErr != "" {
		logger.Warn("Google sign-in was not completed", slog.String("google_error", googleErr))
		h.redirectToFrontend(c, googleErr)
		return
	}

	code := c.Query("code")
	if code == "" {
		h.redirectToFrontend(c, "missing_code")
		return
	}

	token, err := h.googleOAuthService.ExchangeCodeForToken(ctx, code)
	if err != nil {
		logger.Error("Failed to exchange authorization code with Google", slog.String("error", err.Error()))
		h.redirectToFrontend(c, "exchange_failed")
		return
	}

	info, err := h.googleOAuthService.GetUserInfo(ctx, token)
	if err != nil {
		logger.Error("Failed to fetch Google user info", slog.String("error", err.Error()))
		h.redirectToFrontend(c, "userinfo_failed")
		return
	}

	if _, _, err := h.signIn(c, *info); err != nil {
		logger.Error("Failed to sign in Google user", slog.String("error", err.Error()))
		h.redirectToFrontend(c, "signin_failed")
		return
	}
	h.redirectToFrontend(c, "")
}

// TokenGoogle signs in with an ID token the frontend obtained from Google directly.
// @Summary Sign in with a Google ID token
// @Tags oauth
// @Accept json
// @Produce json
// @Param body body dto.GoogleTokenRequest true "Google ID token"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse "Invalid Google ID token"
// @Router /auth/google/token [post]
func (h *GoogleOAuthHandler) TokenGoogle(c *gin.Context) {
	var req dto.GoogleTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	payload, err := h.googleOAuthService.ValidateGoogleIDToken(c.Request.Context(), req.IDToken)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Google ID token validation failed", slog.String("error", err.Error()))
		respondError(c, apperrors.Unauthorized("Invalid Google ID token"))
		return
	}

	email, _ := payload.Claims["email"].(string)
	verified, _ := payload.Claims["email_verified"].(bool)
	if email == "" || !verified {
		respondError(c, apperrors.Unauthorized("Google account email is not verified"))
		return
	}
	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)

	user, pair, err := h.signIn(c, domain.GoogleUserInfo{
		ID:            payload.Subject,
		Email:         email,
		VerifiedEmail: verified,
		Name:          name,
		Picture:       picture,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.ToLoginResponse(user, pair), "User logged in successfully")
}

// signIn finds or creates the user, issues a session and sets its cookies.
func (h *GoogleOAuthHandler) signIn(c *gin.Context, info domain.GoogleUserInfo) (*domain.User, *domain.TokenPair, error) {
	ctx := c.Request.Context()
	if !info.VerifiedEmail {
		return nil, nil, apperrors.Unauthorized("Google account email is not verified")
	}
	user, err := h.userService.FindOrCreateGoogleUser(ctx, info)
	if err != nil {
		return nil, nil, err
	}
	pair, err := h.tokenService.IssueTokenPair(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	h.cookies.setTokenPair(c, pair)
	middleware.GetLoggerFromCtx(ctx).Info("User signed in with Google", slog.String("user_id", user.UserID))
	return user, pair, nil
}

func (h *GoogleOAuthHandler) redirectToFrontend(c *gin.Context, errCode string) {
	target := h.frontendBaseURL + "/"
	if errCode != "" {
		target = h.frontendBaseURL + "/login?error=" + url.QueryEscape(errCode)
	}
	c.Redirect(http.StatusTemporaryRedirect, target)
}
