package handlers

import (
	"net/http"

	"github.com/SscSPs/videotube/internal/core/domain"
	portssvc "github.com/SscSPs/videotube/internal/core/ports/services"
	"github.com/SscSPs/videotube/internal/dto"
	"github.com/gin-gonic/gin"
)

type likeHandler struct {
	likeService portssvc.LikeSvcFacade
}

func registerLikeRoutes(rg *gin.RouterGroup, d routeDeps) {
	h := &likeHandler{likeService: d.services.Like}

	likes := rg.Group("/likes", d.requireAuth)
	{
		likes.POST("/toggle/v/:videoId", h.toggle(domain.LikeTargetVideo, "videoId"))
		likes.POST("/toggle/c/:commentId", h.toggle(domain.LikeTargetComment, "commentId"))
		likes.POST("/toggle/t/:tweetId", h.toggle(domain.LikeTargetTweet, "tweetId"))
		likes.GET("/videos", h.listLikedVideos)
	}
}

// toggle godoc
// @Summary Toggle a like
// @Description Likes the video, comment or tweet, or removes the caller's like if present.
// @Tags likes
// @Produce json
// @Param videoId path string true "Video, comment or tweet id"
// @Success 200 {object} dto.APIResponse{data=dto.LikeToggleResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /likes/toggle/v/{videoId} [post]
// @Router /likes/toggle/c/{commentId} [post]
// @Router /likes/toggle/t/{tweetId} [post]
func (h *likeHandler) toggle(target domain.LikeTarget, param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		liked, err := h.likeService.ToggleLike(c.Request.Context(), target, c.Param(param), userID)
		if err != nil {
			respondError(c, err)
			return
		}
		message := "Like removed"
		if liked {
			message = "Liked successfully"
		}
		respond(c, http.StatusOK, dto.LikeToggleResponse{Liked: liked}, message)
	}
}

// listLikedVideos godoc
// @Summary Liked videos
// @Tags likes
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.VideoResponse}
// @Security BearerAuth
// @Router /likes/videos [get]
func (h *likeHandler) listLikedVideos(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	videos, err := h.likeService.ListLikedVideos(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.ToVideoResponses(videos), "Liked videos fetched successfully")
}
