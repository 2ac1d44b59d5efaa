package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/videotube/internal/apperrors"
	"github.com/SscSPs/videotube/internal/core/domain"
	portsrepo "github.com/SscSPs/videotube/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/videotube/internal/core/ports/services"
	"github.com/SscSPs/videotube/internal/dto"
	"github.com/google/uuid"
)

// tweetService implements the TweetSvcFacade interface
type tweetService struct {
	BaseService
	tweetRepo portsrepo.TweetRepositoryFacade
	userRepo  portsrepo.UserReader
}

// NewTweetService creates a new tweet service.
func NewTweetService(tweetRepo portsrepo.TweetRepositoryFacade, userRepo portsrepo.UserReader) portssvc.TweetSvcFacade {
	return &tweetService{tweetRepo: tweetRepo, userRepo: userRepo}
}

var _ portssvc.TweetSvcFacade = (*tweetService)(nil)

func (s *tweetService) findTweet(ctx context.Context, tweetID string) (*domain.Tweet, error) {
	if _, err := uuid.Parse(tweetID); err != nil {
		return nil, apperrors.Validation("Invalid tweet id")
	}
	tweet, err := s.tweetRepo.FindTweetByID(ctx, tweetID)
	if err != nil {
		return nil, s.wrapRepoError(ctx, err, "Tweet not found", "Failed to load tweet", slog.String("tweet_id", tweetID))
	}
	return tweet, nil
}

func (s *tweetService) CreateTweet(ctx context.Context, ownerID string, req dto.TweetRequest) (*domain.Tweet, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, apperrors.Validation("Content is required")
	}

	now := time.Now().UTC()
	tweet := domain.Tweet{
		TweetID:    uuid.NewString(),
		OwnerID:    ownerID,
		Content:    content,
		Timestamps: domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.tweetRepo.SaveTweet(ctx, tweet); err != nil {
		return nil, s.wrapRepoError(ctx, err, "User not found", "Failed to create tweet", slog.String("owner_id", ownerID))
	}
	return &tweet, nil
}

func (s *tweetService) ListUserTweets(ctx context.Context, userID string) ([]domain.Tweet, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, apperrors.Validation("Invalid user id")
	}
	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		return nil, s.wrapRepoError(ctx, err, "User not found", "Failed to load user", slog.String("user_id", userID))
	}
	tweets, err := s.tweetRepo.ListUserTweets(ctx, userID)
	if err != nil {
		return nil, s.wrapRepoError(ctx, err, "", "Failed to list tweets", slog.String("user_id", userID))
	}
	return tweets, nil
}

func (s *tweetService) UpdateTweet(ctx context.Context, tweetID, actorID string, req dto.TweetRequest) (*domain.Tweet, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, apperrors.Validation("Content is required")
	}
	tweet, err := s.findTweet(ctx, tweetID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeOwner(ctx, actorID, tweet.OwnerID, "You are not allowed to update this tweet"); err != nil {
		return nil, err
	}

	tweet.Content = content
	tweet.UpdatedAt = time.Now().UTC()
	if err := s.tweetRepo.UpdateTweet(ctx, *tweet); err != nil {
		return nil, s.wrapRepoError(ctx, err, "Tweet not found", "Failed to update tweet", slog.String("tweet_id", tweetID))
	}
	return tweet, nil
}

func (s *tweetService) DeleteTweet(ctx context.Context, tweetID, actorID string) error {
	tweet, err := s.findTweet(ctx, tweetID)
	if err != nil {
		return err
	}
	if err := s.AuthorizeOwner(ctx, actorID, tweet.OwnerID, "You are not allowed to delete this tweet"); err != nil {
		return err
	}
	if err := s.tweetRepo.DeleteTweet(ctx, tweetID); err != nil {
		return s.wrapRepoError(ctx, err, "Tweet not found", "Failed to delete tweet", slog.String("tweet_id", tweetID))
	}
	return nil
}
