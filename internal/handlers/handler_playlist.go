package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/videotube/internal/core/ports/services"
	"github.com/SscSPs/videotube/internal/dto"
	"github.com/gin-gonic/gin"
)

type playlistHandler struct {
	playlistService portssvc.PlaylistSvcFacade
}

func registerPlaylistRoutes(rg *gin.RouterGroup, d routeDeps) {
	h := &playlistHandler{playlistService: d.services.Playlist}

	playlists := rg.Group("/playlists")
	{
		playlists.POST("", d.requireAuth, h.createPlaylist)
		playlists.GET("/my-playlists", d.requireAuth, h.listMyPlaylists)
		playlists.GET("/:playlistId", h.getPlaylist)
		playlists.PATCH("/:playlistId", d.requireAuth, h.updatePlaylist)
		playlists.DELETE("/:playlistId", d.requireAuth, h.deletePlaylist)
		playlists.PATCH("/add/:videoId/:playlistId", d.requireAuth, h.addVideo)
		playlists.PATCH("/remove/:videoId/:playlistId", d.requireAuth, h.removeVideo)
	}
}

// createPlaylist godoc
// @Summary Create a playlist
// @Tags playlists
// @Accept json
// @Produce json
// @Param body body dto.CreatePlaylistRequest true "Playlist"
// @Success 201 {object} dto.APIResponse{data=dto.PlaylistResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Unknown video"
// @Security BearerAuth
// @Router /playlists [post]
func (h *playlistHandler) createPlaylist(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.CreatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	playlist, err := h.playlistService.CreatePlaylist(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, dto.ToPlaylistResponse(*playlist), "Playlist created successfully")
}

// listMyPlaylists godoc
// @Summary The caller's playlists
// @Tags playlists
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.PlaylistResponse}
// @Security BearerAuth
// @Router /playlists/my-playlists [get]
func (h *playlistHandler) listMyPlaylists(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	playlists, err := h.playlistService.ListUserPlaylists(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.ToPlaylistResponses(playlists), "Playlists fetched successfully")
}

// getPlaylist godoc
// @Summary Get a playlist with its videos
// @Tags playlists
// @Produce json
// @Param playlistId path string true "Playlist id"
// @Success 200 {object} dto.APIResponse{data=dto.PlaylistResponse}
// @Failure 404 {object} dto.ErrorResponse
// @Router /playlists/{playlistId} [get]
func (h *playlistHandler) getPlaylist(c *gin.Context) {
	playlist, err := h.playlistService.GetPlaylist(c.Request.Context(), c.Param("playlistId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.ToPlaylistResponse(*playlist), "Playlist fetched successfully")
}

// updatePlaylist godoc
// @Summary Rename or redescribe a playlist
// @Tags playlists
// @Accept json
// @Produce json
// @Param playlistId path string true "Playlist id"
// @Param body body dto.UpdatePlaylistRequest true "Name and/or description"
// @Success 200 {object} dto.APIResponse{data=dto.PlaylistResponse}
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /playlists/{playlistId} [patch]
func (h *playlistHandler) updatePlaylist(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.UpdatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	playlist, err := h.playlistService.UpdatePlaylist(c.Request.Context(), c.Param("playlistId"), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.ToPlaylistResponse(*playlist), "Playlist updated successfully")
}

// deletePlaylist godoc
// @Summary Delete a playlist
// @Tags playlists
// @Produce json
// @Param playlistId path string true "Playlist id"
// @Success 200 {object} dto.APIResponse
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /playlists/{playlistId} [delete]
func (h *playlistHandler) deletePlaylist(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.playlistService.DeletePlaylist(c.Request.Context(), c.Param("playlistId"), userID); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{}, "Playlist deleted successfully")
}

// addVideo godoc
// @Summary Add a video to a playlist
// @Tags playlists
// @Produce json
// @Param videoId path string true "Video id"
// @Param playlistId path string true "Playlist id"
// @Success 200 {object} dto.APIResponse{data=dto.PlaylistResponse}
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Already in the playlist"
// @Security BearerAuth
// @Router /playlists/add/{videoId}/{playlistId} [patch]
func (h *playlistHandler) addVideo(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	playlist, err := h.playlistService.AddVideo(c.Request.Context(), c.Param("playlistId"), c.Param("videoId"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.ToPlaylistResponse(*playlist), "Video added to playlist")
}

// removeVideo godoc
// @Summary Remove a video from a playlist
// @Tags playlists
// @Produce json
// @Param videoId path string true "Video id"
// @Param playlistId path string true "Playlist id"
// @Success 200 {object} dto.APIResponse{data=dto.PlaylistResponse}
// @Failure 400 {object} dto.ErrorResponse "Not in the playlist"
// @Failure 403 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /playlists/remove/{videoId}/{playlistId} [patch]
func (h *playlistHandler) removeVideo(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	playlist, err := h.playlistService.RemoveVideo(c.Request.Context(), c.Param("playlistId"), c.Param("videoId"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.ToPlaylistResponse(*playlist), "Video removed from playlist")
}
