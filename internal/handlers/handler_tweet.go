package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/videotube/internal/core/ports/services"
	"github.com/SscSPs/videotube/internal/dto"
	"github.com/gin-gonic/gin"
)

type tweetHandler struct {
	tweetService portssvc.TweetSvcFacade
}

func registerTweetRoutes(rg *gin.RouterGroup, d routeDeps) {
	h := &tweetHandler{tweetService: d.services.Tweet}

	tweets := rg.Group("/tweets")
	{
		tweets.POST("", d.requireAuth, h.createTweet)
		tweets.GET("/user/:userId", h.listUserTweets)
		tweets.PATCH("/:tweetId", d.requireAuth, h.updateTweet)
		tweets.DELETE("/:tweetId", d.requireAuth, h.deleteTweet)
	}
}

// createTweet godoc
// @Summary Post a tweet
// @Tags tweets
// @Accept json
// @Produce json
// @Param body body dto.TweetRequest true "Tweet"
// @Success 201 {object} dto.APIResponse{data=dto.TweetResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tweets [post]
func (h *tweetHandler) createTweet(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.TweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	tweet, err := h.tweetService.CreateTweet(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, dto.ToTweetResponse(*tweet), "Tweet created successfully")
}

// listUserTweets godoc
// @Summary List a user's tweets
// @Tags tweets
// @Produce json
// @Param userId path string true "User id"
// @Success 200 {object} dto.APIResponse{data=[]dto.TweetResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /tweets/user/{userId} [get]
func (h *tweetHandler) listUserTweets(c *gin.Context) {
	tweets, err := h.tweetService.ListUserTweets(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.ToTweetResponses(tweets), "Tweets fetched successfully")
}

// updateTweet godoc
// @Summary Edit a tweet
// @Tags tweets
// @Accept json
// @Produce json
// @Param tweetId path string true "Tweet id"
// @Param body body dto.TweetRequest true "Tweet"
// @Success 200 {object} dto.APIResponse{data=dto.TweetResponse}
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tweets/{tweetId} [patch]
func (h *tweetHandler) updateTweet(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.TweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	tweet, err := h.tweetService.UpdateTweet(c.Request.Context(), c.Param("tweetId"), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.ToTweetResponse(*tweet), "Tweet updated successfully")
}

// deleteTweet godoc
// @Summary Delete a tweet
// @Tags tweets
// @Produce json
// @Param tweetId path string true "Tweet id"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /tweets/{tweetId} [delete]
func (h *tweetHandler) deleteTweet(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.tweetService.DeleteTweet(c.Request.Context(), c.Param("tweetId"), userID); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{}, "Tweet deleted successfully")
}
