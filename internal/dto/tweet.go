package dto

import (
	"time"

	"github.com/SscSPs/videotube/internal/core/domain"
)

// TweetRequest carries tweet text for create and update.
type TweetRequest struct {
	Content string `json:"content" binding:"required,notblank"`
}

// TweetResponse is the public representation of a tweet.
type TweetResponse struct {
	TweetID    string               `json:"_id"`
	Content    string               `json:"content"`
	OwnerID    string               `json:"ownerId"`
	Owner      *domain.OwnerProfile `json:"owner,omitempty"`
	LikesCount int64                `json:"likesCount"`
	CreatedAt  time.Time            `json:"createdAt"`
	UpdatedAt  time.Time            `json:"updatedAt"`
}

// ToTweetResponse converts a domain.Tweet to TweetResponse DTO
func ToTweetResponse(t domain.Tweet) TweetResponse {
	return TweetResponse{
		TweetID:    t.TweetID,
		Content:    t.Content,
		OwnerID:    t.OwnerID,
		Owner:      t.Owner,
		LikesCount: t.LikesCount,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

// ToTweetResponses converts a slice of tweets.
func ToTweetResponses(tweets []domain.Tweet) []TweetResponse {
	out := make([]TweetResponse, 0, len(tweets))
	for _, t := range tweets {
		out = append(out, ToTweetResponse(t))
	}
	return out
}
