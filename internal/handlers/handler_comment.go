package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/videotube/internal/core/ports/services"
	"github.com/SscSPs/videotube/internal/dto"
	"github.com/gin-gonic/gin"
)

type commentHandler struct {
	commentService portssvc.CommentSvcFacade
}

func registerCommentRoutes(rg *gin.RouterGroup, d routeDeps) {
	h := &commentHandler{commentService: d.services.Comment}

	comments := rg.Group("/comments")
	{
		comments.GET("/:videoId", d.optionalAuth, h.listVideoComments)
		comments.POST("/:videoId", d.requireAuth, h.addComment)
		comments.PATCH("/c/:commentId", d.requireAuth, h.updateComment)
		comments.DELETE("/c/:commentId", d.requireAuth, h.deleteComment)
	}
}

// listVideoComments godoc
// @Summary List comments of a video
// @Tags comments
// @Produce json
// @Param videoId path string true "Video id"
// @Param cursor query string false "Cursor from the previous page"
// @Param limit query int false "Page size (default 10, max 50)"
// @Param sortOrder query string false "asc or desc (default)"
// @Success 200 {object} dto.APIResponse{data=dto.PageResponse[dto.CommentResponse]}
// @Failure 404 {object} dto.ErrorResponse
// @Router /comments/{videoId} [get]
func (h *commentHandler) listVideoComments(c *gin.Context) {
	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}
	page, err := q.ToPageRequest()
	if err != nil {
		respondError(c, err)
		return
	}
	result, err := h.commentService.ListVideoComments(c.Request.Context(), c.Param("videoId"), page)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.ToPageResponse(result, page.Limit, dto.ToCommentResponse), "Comments fetched successfully")
}

// addComment godoc
// @Summary Comment on a video
// @Tags comments
// @Accept json
// @Produce json
// @Param videoId path string true "Video id"
// @Param body body dto.CommentRequest true "Comment"
// @Success 201 {object} dto.APIResponse{data=dto.CommentResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /comments/{videoId} [post]
func (h *commentHandler) addComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	comment, err := h.commentService.AddComment(c.Request.Context(), c.Param("videoId"), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, dto.ToCommentResponse(*comment), "Comment added successfully")
}

// updateComment godoc
// @Summary Edit a comment
// @Tags comments
// @Accept json
// @Produce json
// @Param commentId path string true "Comment id"
// @Param body body dto.CommentRequest true "Comment"
// @Success 200 {object} dto.APIResponse{data=dto.CommentResponse}
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /comments/c/{commentId} [patch]
func (h *commentHandler) updateComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	comment, err := h.commentService.UpdateComment(c.Request.Context(), c.Param("commentId"), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.ToCommentResponse(*comment), "Comment updated successfully")
}

// deleteComment godoc
// @Summary Delete a comment
// @Tags comments
// @Produce json
// @Param commentId path string true "Comment id"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /comments/c/{commentId} [delete]
func (h *commentHandler) deleteComment(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.commentService.DeleteComment(c.Request.Context(), c.Param("commentId"), userID); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{}, "Comment deleted successfully")
}
