package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/videotube/internal/apperrors"
	"github.com/SscSPs/videotube/internal/core/domain"
	portsrepo "github.com/SscSPs/videotube/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/videotube/internal/core/ports/services"
	"github.com/google/uuid"
)

// likeService implements the LikeSvcFacade interface
type likeService struct {
	BaseService
	likeRepo    portsrepo.LikeRepositoryFacade
	videoRepo   portsrepo.VideoReader
	commentRepo portsrepo.CommentRepositoryFacade
	tweetRepo   portsrepo.TweetRepositoryFacade
}

// NewLikeService creates a new like service.
func NewLikeService(
	likeRepo portsrepo.LikeRepositoryFacade,
	videoRepo portsrepo.VideoReader,
	commentRepo portsrepo.CommentRepositoryFacade,
	tweetRepo portsrepo.TweetRepositoryFacade,
) portssvc.LikeSvcFacade {
	return &likeService{
		likeRepo:    likeRepo,
		videoRepo:   videoRepo,
		commentRepo: commentRepo,
		tweetRepo:   tweetRepo,
	}
}

var _ portssvc.LikeSvcFacade = (*likeService)(nil)

var notFoundMessages = map[domain.LikeTarget]string{
	domain.LikeTargetVideo:   "Video not found",
	domain.LikeTargetComment: "Comment not found",
	domain.LikeTargetTweet:   "Tweet not found",
}

// requireTarget checks that the liked resource exists.
func (s *likeService) requireTarget(ctx context.Context, target domain.LikeTarget, targetID, userID string) error {
	var err error
	switch target {
	case domain.LikeTargetVideo:
		var video *domain.Video
		video, err = s.videoRepo.FindVideoByID(ctx, targetID)
		if err == nil && !video.VisibleTo(userID) {
			return apperrors.NotFound("Video not found")
		}
	case domain.LikeTargetComment:
		_, err = s.commentRepo.FindCommentByID(ctx, targetID)
	case domain.LikeTargetTweet:
		_, err = s.tweetRepo.FindTweetByID(ctx, targetID)
	}
	if err != nil {
		return s.wrapRepoError(ctx, err, notFoundMessages[target], "Failed to load "+string(target),
			slog.String("target_id", targetID))
	}
	return nil
}

func (s *likeService) ToggleLike(ctx context.Context, target domain.LikeTarget, targetID, userID string) (bool, error) {
	if !target.Valid() {
		return false, apperrors.Validation("Unknown like target")
	}
	if _, err := uuid.Parse(targetID); err != nil {
		return false, apperrors.Validation("Invalid " + string(target) + " id")
	}
	if err := s.requireTarget(ctx, target, targetID, userID); err != nil {
		return false, err
	}

	liked, err := s.likeRepo.ToggleLike(ctx, target, targetID, userID)
	if err != nil {
		return false, s.wrapRepoError(ctx, err, notFoundMessages[target], "Failed to toggle like",
			slog.String("target", string(target)),
			slog.String("target_id", targetID))
	}
	return liked, nil
}

func (s *likeService) ListLikedVideos(ctx context.Context, userID string) ([]domain.Video, error) {
	videos, err := s.videoRepo.FindLikedVideos(ctx, userID)
	if err != nil {
		return nil, s.wrapRepoError(ctx, err, "", "Failed to load liked videos", slog.String("user_id", userID))
	}
	return videos, nil
}
