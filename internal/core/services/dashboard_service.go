package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/videotube/internal/apperrors"
	"github.com/SscSPs/videotube/internal/core/domain"
	portsrepo "github.com/SscSPs/videotube/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/videotube/internal/core/ports/services"
	"github.com/SscSPs/videotube/internal/utils/pagination"
	"github.com/google/uuid"
)

// dashboardService implements the DashboardSvcFacade interface
type dashboardService struct {
	BaseService
	dashboardRepo portsrepo.DashboardRepositoryFacade
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(dashboardRepo portsrepo.DashboardRepositoryFacade) portssvc.DashboardSvcFacade {
	return &dashboardService{dashboardRepo: dashboardRepo}
}

var _ portssvc.DashboardSvcFacade = (*dashboardService)(nil)

func (s *dashboardService) GetChannelStats(ctx context.Context, userID string) (*domain.ChannelStats, error) {
	stats, err := s.dashboardRepo.GetChannelStats(ctx, userID)
	if err != nil {
		return nil, s.wrapRepoError(ctx, err, "Channel not found", "Failed to load channel stats", slog.String("user_id", userID))
	}
	return stats, nil
}

func (s *dashboardService) ListChannelVideos(ctx context.Context, userID string, page domain.PageRequest) (domain.Page[domain.VideoStats], error) {
	page.Limit = pagination.NormalizeLimit(page.Limit)
	result, err := s.dashboardRepo.ListChannelVideos(ctx, userID, page)
	if err != nil {
		return domain.Page[domain.VideoStats]{}, s.wrapRepoError(ctx, err, "", "Failed to list channel videos", slog.String("user_id", userID))
	}
	return result, nil
}

// GetChannelVideo returns one of the caller's own videos, published or not.
func (s *dashboardService) GetChannelVideo(ctx context.Context, videoID, actorID string) (*domain.VideoStats, error) {
	if _, err := uuid.Parse(videoID); err != nil {
		return nil, apperrors.Validation("Invalid video id")
	}
	stats, err := s.dashboardRepo.GetVideoStats(ctx, videoID)
	if err != nil {
		return nil, s.wrapRepoError(ctx, err, "Video not found", "Failed to load video", slog.String("video_id", videoID))
	}
	if err := s.AuthorizeOwner(ctx, actorID, stats.OwnerID, "You are not allowed to view this video"); err != nil {
		return nil, err
	}
	return stats, nil
}
