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
	"github.com/SscSPs/videotube/internal/utils/pagination"
	"github.com/google/uuid"
)

// commentService implements the CommentSvcFacade interface
type commentService struct {
	BaseService
	commentRepo portsrepo.CommentRepositoryFacade
	videoRepo   portsrepo.VideoReader
}

// NewCommentService creates a new comment service.
func NewCommentService(commentRepo portsrepo.CommentRepositoryFacade, videoRepo portsrepo.VideoReader) portssvc.CommentSvcFacade {
	return &commentService{commentRepo: commentRepo, videoRepo: videoRepo}
}

var _ portssvc.CommentSvcFacade = (*commentService)(nil)

// requireVideo checks that the video exists and is visible to viewerID.
func (s *commentService) requireVideo(ctx context.Context, videoID, viewerID string) error {
	if _, err := uuid.Parse(videoID); err != nil {
		return apperrors.Validation("Invalid video id")
	}
	video, err := s.videoRepo.FindVideoByID(ctx, videoID)
	if err != nil {
		return s.wrapRepoError(ctx, err, "Video not found", "Failed to load video", slog.String("video_id", videoID))
	}
	if !video.VisibleTo(viewerID) {
		return apperrors.NotFound("Video not found")
	}
	return nil
}

func (s *commentService) findComment(ctx context.Context, commentID string) (*domain.Comment, error) {
	if _, err := uuid.Parse(commentID); err != nil {
		return nil, apperrors.Validation("Invalid comment id")
	}
	comment, err := s.commentRepo.FindCommentByID(ctx, commentID)
	if err != nil {
		return nil, s.wrapRepoError(ctx, err, "Comment not found", "Failed to load comment", slog.String("comment_id", commentID))
	}
	return comment, nil
}

func (s *commentService) ListVideoComments(ctx context.Context, videoID string, page domain.PageRequest) (domain.Page[domain.Comment], error) {
	if err := s.requireVideo(ctx, videoID, ""); err != nil {
		return domain.Page[domain.Comment]{}, err
	}
	page.Limit = pagination.NormalizeLimit(page.Limit)
	result, err := s.commentRepo.ListVideoComments(ctx, videoID, page)
	if err != nil {
		return domain.Page[domain.Comment]{}, s.wrapRepoError(ctx, err, "", "Failed to list comments", slog.String("video_id", videoID))
	}
	return result, nil
}

func (s *commentService) AddComment(ctx context.Context, videoID, ownerID string, req dto.CommentRequest) (*domain.Comment, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, apperrors.Validation("Content is required")
	}
	if err := s.requireVideo(ctx, videoID, ownerID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	comment := domain.Comment{
		CommentID:  uuid.NewString(),
		VideoID:    videoID,
		OwnerID:    ownerID,
		Content:    content,
		Timestamps: domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.commentRepo.SaveComment(ctx, comment); err != nil {
		return nil, s.wrapRepoError(ctx, err, "Video not found", "Failed to add comment", slog.String("video_id", videoID))
	}
	return s.reload(ctx, comment), nil
}

func (s *commentService) reload(ctx context.Context, comment domain.Comment) *domain.Comment {
	stored, err := s.commentRepo.FindCommentByID(ctx, comment.CommentID)
	if err != nil {
		s.LogError(ctx, err, "Failed to reload comment", slog.String("comment_id", comment.CommentID))
		return &comment
	}
	return stored
}

func (s *commentService) UpdateComment(ctx context.Context, commentID, actorID string, req dto.CommentRequest) (*domain.Comment, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, apperrors.Validation("Content is required")
	}
	comment, err := s.findComment(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeOwner(ctx, actorID, comment.OwnerID, "You are not allowed to update this comment"); err != nil {
		return nil, err
	}

	comment.Content = content
	comment.UpdatedAt = time.Now().UTC()
	if err := s.commentRepo.UpdateComment(ctx, *comment); err != nil {
		return nil, s.wrapRepoError(ctx, err, "Comment not found", "Failed to update comment", slog.String("comment_id", commentID))
	}
	return comment, nil
}

func (s *commentService) DeleteComment(ctx context.Context, commentID, actorID string) error {
	comment, err := s.findComment(ctx, commentID)
	if err != nil {
		return err
	}
	if err := s.AuthorizeOwner(ctx, actorID, comment.OwnerID, "You are not allowed to delete this comment"); err != nil {
		return err
	}
	if err := s.commentRepo.DeleteComment(ctx, commentID); err != nil {
		return s.wrapRepoError(ctx, err, "Comment not found", "Failed to delete comment", slog.String("comment_id", commentID))
	}
	return nil
}
