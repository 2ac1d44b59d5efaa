package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/videotube/internal/core/ports/services"
	"github.com/SscSPs/videotube/internal/dto"
	"github.com/gin-gonic/gin"
)

type subscriptionHandler struct {
	subscriptionService portssvc.SubscriptionSvcFacade
}

func registerSubscriptionRoutes(rg *gin.RouterGroup, d routeDeps) {
	h := &subscriptionHandler{subscriptionService: d.services.Subscription}

	subs := rg.Group("/subscriptions", d.requireAuth)
	{
		subs.POST("/c/:channelId", h.toggleSubscription)
		subs.GET("/c/:channelId", h.listSubscribers)
		subs.GET("/u/:subscriberId", h.listSubscribedChannels)
	}
}

// toggleSubscription godoc
// @Summary Toggle channel subscription
// @Tags subscriptions
// @Produce json
// @Param channelId path string true "Channel (user) id"
// @Success 200 {object} dto.APIResponse{data=dto.SubscriptionToggleResponse}
// @Failure 400 {object} dto.ErrorResponse "Self-subscription"
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /subscriptions/c/{channelId} [post]
func (h *subscriptionHandler) toggleSubscription(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	toggleSubscription(c, h.subscriptionService, c.Param("channelId"), userID)
}

// listSubscribers godoc
// @Summary Subscribers of a channel
// @Tags subscriptions
// @Produce json
// @Param channelId path string true "Channel (user) id"
// @Success 200 {object} dto.APIResponse{data=[]dto.SubscriptionResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /subscriptions/c/{channelId} [get]
func (h *subscriptionHandler) listSubscribers(c *gin.Context) {
	subs, err := h.subscriptionService.ListSubscribers(c.Request.Context(), c.Param("channelId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.ToSubscriptionResponses(subs), "Subscribers fetched successfully")
}

// listSubscribedChannels godoc
// @Summary Channels a user subscribes to
// @Tags subscriptions
// @Produce json
// @Param subscriberId path string true "Subscriber (user) id"
// @Success 200 {object} dto.APIResponse{data=[]dto.SubscriptionResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /subscriptions/u/{subscriberId} [get]
func (h *subscriptionHandler) listSubscribedChannels(c *gin.Context) {
	subs, err := h.subscriptionService.ListSubscribedChannels(c.Request.Context(), c.Param("subscriberId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.ToSubscriptionResponses(subs), "Subscribed channels fetched successfully")
}
