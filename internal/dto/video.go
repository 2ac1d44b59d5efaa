package dto

import (
	"time"

	"github.com/SscSPs/videotube/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListVideosQuery filters the public video feed.
type ListVideosQuery struct {
	PageQuery
	Query  string `form:"query"`
	UserID string `form:"userId" binding:"omitempty,uuid"`
}

// PublishVideoRequest is the multipart form for a new video. Files arrive separately.
type PublishVideoRequest struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	IsPublished *bool  `form:"isPublished"`
	CategoryID  string `form:"categoryId" binding:"omitempty,uuid"`
	Duration    string `form:"duration"`
}

// VideoFiles are the uploaded video and thumbnail, saved as local temp files.
type VideoFiles struct {
	VideoPath     string
	ThumbnailPath string
}

// UpdateVideoRequest carries the editable video details. Omitted fields are left unchanged.
type UpdateVideoRequest struct {
	Title       *string `form:"title" json:"title"`
	Description *string `form:"description" json:"description"`
	CategoryID  *string `form:"categoryId" json:"categoryId"`
}

// GenerateDescriptionRequest asks for a suggested description for a title.
type GenerateDescriptionRequest struct {
	VideoTitle string `json:"videoTitle" binding:"required,notblank"`
}

// GenerateDescriptionResponse carries the suggested description.
type GenerateDescriptionResponse struct {
	Description string `json:"description"`
}

// VideoResponse is the public representation of a video.
type VideoResponse struct {
	VideoID     string               `json:"_id"`
	VideoFile   string               `json:"videoFile"`
	Thumbnail   string               `json:"thumbnail"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Duration    decimal.Decimal      `json:"duration"`
	Views       int64                `json:"views"`
	IsPublished bool                 `json:"isPublished"`
	OwnerID     string               `json:"ownerId"`
	Owner       *domain.OwnerProfile `json:"owner,omitempty"`
	CategoryID  *string              `json:"categoryId"`
	Category    *string              `json:"category,omitempty"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

// ToVideoResponse converts a domain.Video to VideoResponse DTO
func ToVideoResponse(v domain.Video) VideoResponse {
	return VideoResponse{
		VideoID:     v.VideoID,
		VideoFile:   v.VideoFile,
		Thumbnail:   v.Thumbnail,
		Title:       v.Title,
		Description: v.Description,
		Duration:    v.Duration,
		Views:       v.Views,
		IsPublished: v.IsPublished,
		OwnerID:     v.OwnerID,
		Owner:       v.Owner,
		CategoryID:  v.CategoryID,
		Category:    v.Category,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

// ToVideoResponses converts a slice of videos.
func ToVideoResponses(videos []domain.Video) []VideoResponse {
	out := make([]VideoResponse, 0, len(videos))
	for _, v := range videos {
		out = append(out, ToVideoResponse(v))
	}
	return out
}
