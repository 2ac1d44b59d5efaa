package dto

import (
	"time"

	"github.com/SscSPs/videotube/internal/core/domain"
)

// DefaultPlaylistName is used when a playlist is created or renamed with a blank name.
const DefaultPlaylistName = "Untitled"

// CreatePlaylistRequest carries a new playlist's details and its initial videos.
type CreatePlaylistRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Videos      []string `json:"videos" binding:"required,min=1,dive,uuid"`
}

// UpdatePlaylistRequest carries the editable playlist details. Omitted fields are left unchanged.
type UpdatePlaylistRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// PlaylistResponse is the public representation of a playlist.
type PlaylistResponse struct {
	PlaylistID  string               `json:"_id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	OwnerID     string               `json:"ownerId"`
	Owner       *domain.OwnerProfile `json:"owner,omitempty"`
	VideoIDs    []string             `json:"videoIds"`
	Videos      []VideoResponse      `json:"videos,omitempty"`
	TotalVideos int                  `json:"totalVideos"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

// ToPlaylistResponse converts a domain.Playlist to PlaylistResponse DTO
func ToPlaylistResponse(p domain.Playlist) PlaylistResponse {
	resp := PlaylistResponse{
		PlaylistID:  p.PlaylistID,
		Name:        p.Name,
		Description: p.Description,
		OwnerID:     p.OwnerID,
		Owner:       p.Owner,
		VideoIDs:    p.VideoIDs,
		TotalVideos: len(p.VideoIDs),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if resp.VideoIDs == nil {
		resp.VideoIDs = []string{}
	}
	if p.Videos != nil {
		resp.Videos = ToVideoResponses(p.Videos)
	}
	return resp
}

// ToPlaylistResponses converts a slice of playlists.
func ToPlaylistResponses(playlists []domain.Playlist) []PlaylistResponse {
	out := make([]PlaylistResponse, 0, len(playlists))
	for _, p := range playlists {
		out = append(out, ToPlaylistResponse(p))
	}
	return out
}
