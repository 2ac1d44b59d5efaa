package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/videotube/internal/core/ports/services"
	"github.com/SscSPs/videotube/internal/dto"
	"github.com/gin-gonic/gin"
)

type dashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
}

func registerDashboardRoutes(rg *gin.RouterGroup, d routeDeps) {
	h := &dashboardHandler{dashboardService: d.services.Dashboard}

	dashboard := rg.Group("/dashboard", d.requireAuth)
	{
		dashboard.GET("/stats", h.getChannelStats)
		dashboard.GET("/videos", h.listChannelVideos)
		dashboard.GET("/videos/:videoId", h.getChannelVideo)
	}
}

// getChannelStats godoc
// @Summary Channel statistics
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ChannelStatsResponse}
// @Security BearerAuth
// @Router /dashboard/stats [get]
func (h *dashboardHandler) getChannelStats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	stats, err := h.dashboardService.GetChannelStats(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.ToChannelStatsResponse(stats), "Channel stats fetched successfully")
}

// listChannelVideos godoc
// @Summary The caller's videos, published or not
// @Tags dashboard
// @Produce json
// @Param cursor query string false "Cursor from the previous page"
// @Param limit query int false "Page size (default 10, max 50)"
// @Param sortOrder query string false "asc or desc (default)"
// @Success 200 {object} dto.APIResponse{data=dto.PageResponse[dto.VideoStatsResponse]}
// @Security BearerAuth
// @Router /dashboard/videos [get]
func (h *dashboardHandler) listChannelVideos(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
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
	result, err := h.dashboardService.ListChannelVideos(c.Request.Context(), userID, page)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.ToPageResponse(result, page.Limit, dto.ToVideoStatsResponse), "Channel videos fetched successfully")
}

// getChannelVideo godoc
// @Summary One of the caller's videos with its counters
// @Tags dashboard
// @Produce json
// @Param videoId path string true "Video id"
// @Success 200 {object} dto.APIResponse{data=dto.VideoStatsResponse}
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /dashboard/videos/{videoId} [get]
func (h *dashboardHandler) getChannelVideo(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	video, err := h.dashboardService.GetChannelVideo(c.Request.Context(), c.Param("videoId"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.ToVideoStatsResponse(*video), "Video fetched successfully")
}
