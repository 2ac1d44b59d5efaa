package repositories

import (
	"context"

	"github.com/SscSPs/videotube/internal/core/domain"
)

// DashboardRepositoryFacade defines the aggregate reads behind the channel dashboard.
type DashboardRepositoryFacade interface {
	GetChannelStats(ctx context.Context, channelID string) (*domain.ChannelStats, error)
	ListChannelVideos(ctx context.Context, channelID string, page domain.PageRequest) (domain.Page[domain.VideoStats], error)
	GetVideoStats(ctx context.Context, videoID string) (*domain.VideoStats, error)
}
