package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/videotube/internal/apperrors"
	"github.com/SscSPs/videotube/internal/core/domain"
	portssvc "github.com/SscSPs/videotube/internal/core/ports/services"
	"github.com/SscSPs/videotube/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeOwner permits a mutation only when actorID is the resource's recorded owner.
func (s *BaseService) AuthorizeOwner(ctx context.Context, actorID, ownerID, message string) error {
	if actorID == "" || actorID != ownerID {
		s.LogDebug(ctx, "Ownership check failed",
			slog.String("actor_id", actorID),
			slog.String("owner_id", ownerID))
		return apperrors.Forbidden(message)
	}
	return nil
}

// wrapRepoError keeps typed application errors and turns anything else into a 500.
func (s *BaseService) wrapRepoError(ctx context.Context, err error, notFoundMsg, internalMsg string, keyvals ...any) error {
	if errors.Is(err, apperrors.ErrNotFound) && notFoundMsg != "" {
		return apperrors.NotFound(notFoundMsg)
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrDuplicate) || errors.Is(err, apperrors.ErrValidation) {
		return err
	}
	s.LogError(ctx, err, internalMsg, keyvals...)
	return apperrors.Internal(internalMsg, err)
}

// discardAsset removes an uploaded asset whose record was never written or was replaced.
// Failures are logged only.
func (s *BaseService) discardAsset(ctx context.Context, media portssvc.MediaStore, url string, kind domain.AssetKind) {
	if media == nil || url == "" {
		return
	}
	if err := media.DeleteByURL(ctx, url, kind); err != nil {
		s.LogError(ctx, err, "Failed to delete stored asset",
			slog.String("url", url),
			slog.String("kind", string(kind)))
	}
}
