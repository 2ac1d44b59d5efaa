package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/videotube/internal/core/domain"
)

// VideoReader defines read operations for videos.
type VideoReader interface {
	// FindVideoByID returns the video with its owner profile.
	FindVideoByID(ctx context.Context, videoID string) (*domain.Video, error)

	// ListVideos returns a keyset page of videos matching filter.
	ListVideos(ctx context.Context, filter domain.VideoFilter, page domain.PageRequest) (domain.Page[domain.Video], error)

	// FindWatchHistory returns the videos the user watched, most recent first.
	FindWatchHistory(ctx context.Context, userID string) ([]domain.Video, error)

	// FindLikedVideos returns published videos liked by userID, most recent like first.
	FindLikedVideos(ctx context.Context, userID string) ([]domain.Video, error)
}

// VideoWriter defines write operations for videos.
type VideoWriter interface {
	SaveVideo(ctx context.Context, video domain.Video) error
	UpdateVideo(ctx context.Context, video domain.Video) error
	DeleteVideo(ctx context.Context, videoID string) error

	// RecordView increments the view counter and upserts the viewer's watch history entry.
	// viewerID may be empty for anonymous views.
	RecordView(ctx context.Context, videoID, viewerID string, at time.Time) error
}

// VideoRepositoryFacade combines all video-related repository interfaces
type VideoRepositoryFacade interface {
	VideoReader
	VideoWriter
}
