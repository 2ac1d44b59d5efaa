package handlers

import (
	"context"
	"net/http"

	"github.com/SscSPs/videotube/internal/apperrors"
	"github.com/SscSPs/videotube/internal/core/domain"
	portssvc "github.com/SscSPs/videotube/internal/core/ports/services"
	"github.com/SscSPs/videotube/internal/dto"
	"github.com/gin-gonic/gin"
)

// userHandler handles HTTP requests related to the caller's account and public channels.
type userHandler struct {
	userService         portssvc.UserSvcFacade
	videoService        portssvc.VideoSvcFacade
	subscriptionService portssvc.SubscriptionSvcFacade
	uploads             uploader
}

func newUserHandler(d routeDeps) *userHandler {
	return &userHandler{
		userService:         d.services.User,
		videoService:        d.services.Video,
		subscriptionService: d.services.Subscription,
		uploads:             d.uploads,
	}
}

// registerUserRoutes registers all user-related routes.
func registerUserRoutes(rg *gin.RouterGroup, d routeDeps) {
	h := newUserHandler(d)

	users := rg.Group("/users")
	{
		users.GET("/get-user", d.requireAuth, h.getCurrentUser)
		users.PATCH("/update-user", d.requireAuth, h.updateAccountDetails)
		users.PATCH("/update-avatar", d.requireAuth, d.uploads.limitBody(), h.updateAvatar)
		users.PATCH("/update-cover-img", d.requireAuth, d.uploads.limitBody(), h.updateCoverImage)
		users.GET("/c/:username", d.optionalAuth, h.getChannelProfile)
		users.GET("/history", d.requireAuth, h.getWatchHistory)
		users.POST("/subscribe-channel", d.requireAuth, h.subscribeChannel)
	}
}

// getCurrentUser godoc
// @Summary Current user
// @Tags users
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/get-user [get]
func (h *userHandler) getCurrentUser(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.ToUserResponse(user), "Current user fetched successfully")
}

// updateAccountDetails godoc
// @Summary Update account details
// @Tags users
// @Accept json
// @Produce json
// @Param body body dto.UpdateUserRequest true "Full name and/or email"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Email already in use"
// @Security BearerAuth
// @Router /users/update-user [patch]
func (h *userHandler) updateAccountDetails(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	user, err := h.userService.UpdateAccountDetails(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.ToUserResponse(user), "Account details updated successfully")
}

// updateAvatar godoc
// @Summary Replace avatar
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Param avatar formData file true "Avatar image"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/update-avatar [patch]
func (h *userHandler) updateAvatar(c *gin.Context) {
	h.replaceImage(c, "avatar", "Avatar file is missing", h.userService.UpdateAvatar, "Avatar updated successfully")
}

// updateCoverImage godoc
// @Summary Replace cover image
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Param coverImage formData file true "Cover image"
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/update-cover-img [patch]
func (h *userHandler) updateCoverImage(c *gin.Context) {
	h.replaceImage(c, "coverImage", "Cover image file is missing", h.userService.UpdateCoverImage, "Cover image updated successfully")
}

type imageUpdater func(ctx context.Context, userID, localPath string) (*domain.User, error)

func (h *userHandler) replaceImage(c *gin.Context, field, missingMsg string, update imageUpdater, okMsg string) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	path, err := h.uploads.save(c, field)
	defer cleanup(c, path)
	if err != nil {
		respondError(c, err)
		return
	}
	if path == "" {
		respondError(c, apperrors.Validation(missingMsg))
		return
	}

	user, err := update(c.Request.Context(), userID, path)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.ToUserResponse(user), okMsg)
}

// getChannelProfile godoc
// @Summary Channel profile
// @Description Public channel page with subscriber counts; isSubscribed reflects the caller when authenticated.
// @Tags users
// @Produce json
// @Param username path string true "Channel username"
// @Success 200 {object} dto.APIResponse{data=dto.ChannelProfileResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /users/c/{username} [get]
func (h *userHandler) getChannelProfile(c *gin.Context) {
	profile, err := h.userService.GetChannelProfile(c.Request.Context(), c.Param("username"), viewerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.ToChannelProfileResponse(profile), "User channel fetched successfully")
}

// getWatchHistory godoc
// @Summary Watch history
// @Description Videos the caller watched, most recent first.
// @Tags users
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.VideoResponse}
// @Security BearerAuth
// @Router /users/history [get]
func (h *userHandler) getWatchHistory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	videos, err := h.videoService.GetWatchHistory(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.ToVideoResponses(videos), "Watch history fetched successfully")
}

// subscribeChannel godoc
// @Summary Toggle channel subscription
// @Tags users
// @Accept json
// @Produce json
// @Param body body dto.SubscribeChannelRequest true "Channel to toggle"
// @Success 200 {object} dto.APIResponse{data=dto.SubscriptionToggleResponse}
// @Failure 400 {object} dto.ErrorResponse "Self-subscription"
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /users/subscribe-channel [post]
func (h *userHandler) subscribeChannel(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.SubscribeChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	toggleSubscription(c, h.subscriptionService, req.ChannelID, userID)
}

// toggleSubscription is shared by /users/subscribe-channel and /subscriptions/c/:channelId.
func toggleSubscription(c *gin.Context, subscriptions portssvc.SubscriptionSvcFacade, channelID, subscriberID string) {
	subscribed, err := subscriptions.ToggleSubscription(c.Request.Context(), channelID, subscriberID)
	if err != nil {
		respondError(c, err)
		return
	}
	message := "Unsubscribed successfully"
	if subscribed {
		message = "Subscribed successfully"
	}
	respond(c, http.StatusOK, dto.SubscriptionToggleResponse{Subscribed: subscribed}, message)
}
