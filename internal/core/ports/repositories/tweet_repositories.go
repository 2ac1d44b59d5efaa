package repositories

import (
	"context"

	"github.com/SscSPs/videotube/internal/core/domain"
)

// TweetRepositoryFacade defines persistence for tweets.
type TweetRepositoryFacade interface {
	FindTweetByID(ctx context.Context, tweetID string) (*domain.Tweet, error)
	ListUserTweets(ctx context.Context, userID string) ([]domain.Tweet, error)
	SaveTweet(ctx context.Context, tweet domain.Tweet) error
	UpdateTweet(ctx context.Context, tweet domain.Tweet) error
	DeleteTweet(ctx context.Context, tweetID string) error
}
