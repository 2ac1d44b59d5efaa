package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/videotube/internal/core/ports/services"
	"github.com/SscSPs/videotube/internal/dto"
	"github.com/SscSPs/videotube/internal/middleware"
	"github.com/SscSPs/videotube/internal/utils"
	"github.com/gin-gonic/gin"
)

// authHandler handles registration and the session lifecycle.
type authHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	cookies      cookieOptions
	uploads      uploader
	analytics    *utils.PosthogClientWrapper
}

func newAuthHandler(d routeDeps) *authHandler {
	return &authHandler{
		userService:  d.services.User,
		tokenService: d.services.Token,
		cookies:      d.cookies,
		uploads:      d.uploads,
		analytics:    d.analytics,
	}
}

// registerAuthRoutes sets up registration, login, token refresh, logout and password change.
func registerAuthRoutes(rg *gin.RouterGroup, d routeDeps) {
	h := newAuthHandler(d)

	users := rg.Group("/users")
	{
		users.POST("/register", d.authLimit, d.uploads.limitBody(), h.register)
		users.POST("/login", d.authLimit, h.login)
		users.POST("/refresh-token", d.authLimit, h.refreshToken)
		users.POST("/logout", d.requireAuth, h.logout)
		users.POST("/change-password", d.requireAuth, h.changePassword)
	}
}

// register godoc
// @Summary Register new user
// @Description Creates a user account. Accepts multipart form data with optional avatar and coverImage files, or JSON.
// @Tags auth
// @Accept multipart/form-data,json
// @Produce json
// @Param fullName formData string true "Full name"
// @Param email formData string true "Email"
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Param avatar formData file false "Avatar image"
// @Param coverImage formData file false "Cover image"
// @Success 201 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Username or email already exists"
// @Failure 500 {object} dto.ErrorResponse
// @Router /users/register [post]
func (h *authHandler) register(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err)
		return
	}

	var files dto.RegisterFiles
	defer func() { cleanup(c, files.AvatarPath, files.CoverImagePath) }()

	var err error
	if files.AvatarPath, err = h.uploads.save(c, "avatar"); err != nil {
		respondError(c, err)
		return
	}
	if files.CoverImagePath, err = h.uploads.save(c, "coverImage"); err != nil {
		respondError(c, err)
		return
	}

	user, err := h.userService.Register(c.Request.Context(), req, files)
	if err != nil {
		respondError(c, err)
		return
	}

	h.analytics.IdentifyChannel(user.UserID, user.Username, user.FullName)
	middleware.PosthogEvent(c, h.analytics, user.UserID, "user_registered", nil)
	respond(c, http.StatusCreated, dto.ToUserResponse(user), "User registered successfully")
}

// login godoc
// @Summary User login
// @Description Authenticates by username or email and sets accessToken and refreshToken cookies.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 404 {object} dto.ErrorResponse "User does not exist"
// @Failure 429 {object} dto.ErrorResponse
// @Router /users/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	ctx := c.Request.Context()
	user, err := h.userService.AuthenticateUser(ctx, req)
	if err != nil {
		respondError(c, err)
		return
	}

	pair, err := h.tokenService.IssueTokenPair(ctx, user)
	if err != nil {
		respondError(c, err)
		return
	}

	h.cookies.setTokenPair(c, pair)
	middleware.GetLoggerFromCtx(ctx).Info("User logged in", slog.String("user_id", user.UserID))
	middleware.PosthogEvent(c, h.analytics, user.UserID, "user_logged_in", nil)
	respond(c, http.StatusOK, dto.ToLoginResponse(user, pair), "User logged in successfully")
}

// refreshToken godoc
// @Summary Rotate the session tokens
// @Description Exchanges the current refresh token (cookie or body) for a new token pair. A token can be used once.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.RefreshTokenRequest false "Refresh token when the cookie is not sent"
// @Success 200 {object} dto.APIResponse{data=dto.RefreshTokenResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Router /users/refresh-token [post]
func (h *authHandler) refreshToken(c *gin.Context) {
	token, err := c.Cookie(refreshTokenCookie)
	if err != nil || token == "" {
		var req dto.RefreshTokenRequest
		// An empty body simply means no token was presented.
		_ = c.ShouldBindJSON(&req)
		token = req.RefreshToken
	}

	_, pair, err := h.tokenService.RefreshTokenPair(c.Request.Context(), token)
	if err != nil {
		respondError(c, err)
		return
	}

	h.cookies.setTokenPair(c, pair)
	respond(c, http.StatusOK, dto.ToRefreshTokenResponse(pair), "Access token refreshed")
}

// logout godoc
// @Summary Log out
// @Description Revokes the stored refresh token and clears the auth cookies.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.APIResponse
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.tokenService.RevokeRefreshToken(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}

	h.cookies.clearTokenPair(c)
	respond(c, http.StatusOK, gin.H{}, "User logged out")
}

// changePassword godoc
// @Summary Change password
// @Description Verifies the old password and stores the new one. Existing sessions stay valid.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.ChangePasswordRequest true "Old and new password"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse "Invalid old password"
// @Security BearerAuth
// @Router /users/change-password [post]
func (h *authHandler) changePassword(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.userService.ChangePassword(c.Request.Context(), userID, req); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{}, "Password changed successfully")
}
