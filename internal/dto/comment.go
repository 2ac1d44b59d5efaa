package dto

import (
	"time"

	"github.com/SscSPs/videotube/internal/core/domain"
)

// CommentRequest carries comment text for create and update.
type CommentRequest struct {
	Content string `json:"content" binding:"required,notblank"`
}

// CommentResponse is the public representation of a comment.
type CommentResponse struct {
	CommentID  string               `json:"_id"`
	VideoID    string               `json:"video"`
	Content    string               `json:"content"`
	OwnerID    string               `json:"ownerId"`
	Owner      *domain.OwnerProfile `json:"owner,omitempty"`
	LikesCount int64                `json:"likesCount"`
	CreatedAt  time.Time            `json:"createdAt"`
	UpdatedAt  time.Time            `json:"updatedAt"`
}

// ToCommentResponse converts a domain.Comment to CommentResponse DTO
func ToCommentResponse(c domain.Comment) CommentResponse {
	return CommentResponse{
		CommentID:  c.CommentID,
		VideoID:    c.VideoID,
		Content:    c.Content,
		OwnerID:    c.OwnerID,
		Owner:      c.Owner,
		LikesCount: c.LikesCount,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
