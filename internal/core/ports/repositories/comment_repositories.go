package repositories

import (
	"context"

	"github.com/SscSPs/videotube/internal/core/domain"
)

// CommentRepositoryFacade defines persistence for video comments.
type CommentRepositoryFacade interface {
	FindCommentByID(ctx context.Context, commentID string) (*domain.Comment, error)
	ListVideoComments(ctx context.Context, videoID string, page domain.PageRequest) (domain.Page[domain.Comment], error)
	SaveComment(ctx context.Context, comment domain.Comment) error
	UpdateComment(ctx context.Context, comment domain.Comment) error
	DeleteComment(ctx context.Context, commentID string) error
}
