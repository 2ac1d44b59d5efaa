package handlers

import (
	"net/http"

	"github.com/SscSPs/videotube/internal/core/domain"
	portssvc "github.com/SscSPs/videotube/internal/core/ports/services"
	"github.com/SscSPs/videotube/internal/dto"
	"github.com/gin-gonic/gin"
)

type videoHandler struct {
	videoService       portssvc.VideoSvcFacade
	descriptionService portssvc.DescriptionSvcFacade
	uploads            uploader
}

func newVideoHandler(d routeDeps) *videoHandler {
	return &videoHandler{
		videoService:       d.services.Video,
		descriptionService: d.services.Description,
		uploads:            d.uploads,
	}
}

// registerVideoRoutes registers the video catalogue routes.
func registerVideoRoutes(rg *gin.RouterGroup, d routeDeps) {
	h := newVideoHandler(d)

	videos := rg.Group("/videos")
	{
		videos.GET("", h.listVideos)
		videos.POST("", d.requireAuth, d.uploads.limitBody(), h.publishVideo)
		videos.GET("/v/:videoId", d.optionalAuth, h.getVideo)
		videos.PATCH("/v/:videoId", d.requireAuth, d.uploads.limitBody(), h.updateVideo)
		videos.DELETE("/v/:videoId", d.requireAuth, h.deleteVideo)
		videos.PATCH("/toggle/publish/:videoId", d.requireAuth, h.togglePublishStatus)
		videos.POST("/ai-description", d.requireAuth, h.generateDescription)
	}
}

// listVideos godoc
// @Summary List published videos
// @Tags videos
// @Produce json
// @Param query query string false "Search in title and description"
// @Param userId query string false "Only videos of this channel"
// @Param cursor query string false "Cursor from the previous page"
// @Param limit query int false "Page size (default 10, max 50)"
// @Param sortOrder query string false "asc or desc (default)"
// @Success 200 {object} dto.APIResponse{data=dto.PageResponse[dto.VideoResponse]}
// @Failure 400 {object} dto.ErrorResponse
// @Router /videos [get]
func (h *videoHandler) listVideos(c *gin.Context) {
	var q dto.ListVideosQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}
	page, err := q.ToPageRequest()
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.videoService.ListVideos(c.Request.Context(), domain.VideoFilter{Query: q.Query, OwnerID: q.UserID}, page)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.ToPageResponse(result, page.Limit, dto.ToVideoResponse), "Videos fetched successfully")
}

// publishVideo godoc
// @Summary Publish a video
// @Tags videos
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Title"
// @Param description formData string true "Description"
// @Param video formData file true "Video file"
// @Param thumbnail formData file true "Thumbnail image"
// @Param isPublished formData bool false "Publish immediately (default true)"
// @Param categoryId formData string false "Category id"
// @Param duration formData string false "Duration in seconds"
// @Success 201 {object} dto.APIResponse{data=dto.VideoResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /videos [post]
func (h *videoHandler) publishVideo(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.PublishVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err)
		return
	}

	var files dto.VideoFiles
	defer func() { cleanup(c, files.VideoPath, files.ThumbnailPath) }()

	var err error
	if files.VideoPath, err = h.uploads.save(c, "video"); err != nil {
		respondError(c, err)
		return
	}
	if files.ThumbnailPath, err = h.uploads.save(c, "thumbnail"); err != nil {
		respondError(c, err)
		return
	}

	video, err := h.videoService.PublishVideo(c.Request.Context(), userID, req, files)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, dto.ToVideoResponse(*video), "Video published successfully")
}

// getVideo godoc
// @Summary Get a video
// @Description Records a view. Unpublished videos are only visible to their owner.
// @Tags videos
// @Produce json
// @Param videoId path string true "Video id"
// @Success 200 {object} dto.APIResponse{data=dto.VideoResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /videos/v/{videoId} [get]
func (h *videoHandler) getVideo(c *gin.Context) {
	video, err := h.videoService.GetVideo(c.Request.Context(), c.Param("videoId"), viewerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.ToVideoResponse(*video), "Video fetched successfully")
}

// updateVideo godoc
// @Summary Update a video
// @Tags videos
// @Accept multipart/form-data,json
// @Produce json
// @Param videoId path string true "Video id"
// @Param title formData string false "Title"
// @Param description formData string false "Description"
// @Param categoryId formData string false "Category id"
// @Param thumbnail formData file false "New thumbnail"
// @Success 200 {object} dto.APIResponse{data=dto.VideoResponse}
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /videos/v/{videoId} [patch]
func (h *videoHandler) updateVideo(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateVideoRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err)
		return
	}

	thumbnailPath, err := h.uploads.save(c, "thumbnail")
	defer cleanup(c, thumbnailPath)
	if err != nil {
		respondError(c, err)
		return
	}

	video, err := h.videoService.UpdateVideo(c.Request.Context(), c.Param("videoId"), userID, req, thumbnailPath)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.ToVideoResponse(*video), "Video updated successfully")
}

// deleteVideo godoc
// @Summary Delete a video
// @Tags videos
// @Produce json
// @Param videoId path string true "Video id"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /videos/v/{videoId} [delete]
func (h *videoHandler) deleteVideo(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.videoService.DeleteVideo(c.Request.Context(), c.Param("videoId"), userID); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{}, "Video deleted successfully")
}

// togglePublishStatus godoc
// @Summary Toggle publish status
// @Tags videos
// @Produce json
// @Param videoId path string true "Video id"
// @Success 200 {object} dto.APIResponse{data=dto.VideoResponse}
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /videos/toggle/publish/{videoId} [patch]
func (h *videoHandler) togglePublishStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	video, err := h.videoService.TogglePublishStatus(c.Request.Context(), c.Param("videoId"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.ToVideoResponse(*video), "Publish status toggled successfully")
}

// generateDescription godoc
// @Summary Suggest a description
// @Description Asks the language model for a description of the given title.
// @Tags videos
// @Accept json
// @Produce json
// @Param body body dto.GenerateDescriptionRequest true "Video title"
// @Success 200 {object} dto.APIResponse{data=dto.GenerateDescriptionResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /videos/ai-description [post]
func (h *videoHandler) generateDescription(c *gin.Context) {
	var req dto.GenerateDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	description, err := h.descriptionService.GenerateDescription(c.Request.Context(), req.VideoTitle)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.GenerateDescriptionResponse{Description: description}, "Description generated successfully")
}
