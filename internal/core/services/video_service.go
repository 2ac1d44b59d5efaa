package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/videotube/internal/apperrors"
	"github.com/SscSPs/videotube/internal/core/domain"
	portsrepo "github.com/SscSPs/videotube/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/videotube/internal/core/ports/services"
	"github.com/SscSPs/videotube/internal/dto"
	"github.com/SscSPs/videotube/internal/utils"
	"github.com/SscSPs/videotube/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// videoService implements the VideoSvcFacade interface
type videoService struct {
	BaseService
	videoRepo    portsrepo.VideoRepositoryFacade
	categoryRepo portsrepo.CategoryRepositoryFacade
	media        portssvc.MediaStore
}

// NewVideoService creates a new video service.
func NewVideoService(videoRepo portsrepo.VideoRepositoryFacade, categoryRepo portsrepo.CategoryRepositoryFacade, media portssvc.MediaStore) portssvc.VideoSvcFacade {
	return &videoService{
		videoRepo:    videoRepo,
		categoryRepo: categoryRepo,
		media:        media,
	}
}

var _ portssvc.VideoSvcFacade = (*videoService)(nil)

// findVideo loads a video or reports 404.
func (s *videoService) findVideo(ctx context.Context, videoID string) (*domain.Video, error) {
	if _, err := uuid.Parse(videoID); err != nil {
		return nil, apperrors.Validation("Invalid video id")
	}
	video, err := s.videoRepo.FindVideoByID(ctx, videoID)
	if err != nil {
		return nil, s.wrapRepoError(ctx, err, "Video not found", "Failed to load video", slog.String("video_id", videoID))
	}
	return video, nil
}

func (s *videoService) ListVideos(ctx context.Context, filter domain.VideoFilter, page domain.PageRequest) (domain.Page[domain.Video], error) {
	filter.Query = strings.TrimSpace(filter.Query)
	filter.OnlyPublished = true
	page.Limit = pagination.NormalizeLimit(page.Limit)

	result, err := s.videoRepo.ListVideos(ctx, filter, page)
	if err != nil {
		return domain.Page[domain.Video]{}, s.wrapRepoError(ctx, err, "", "Failed to list videos")
	}
	return result, nil
}

func (s *videoService) PublishVideo(ctx context.Context, ownerID string, req dto.PublishVideoRequest, files dto.VideoFiles) (*domain.Video, error) {
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	if title == "" || description == "" {
		return nil, apperrors.Validation("Title and description are required")
	}
	if files.VideoPath == "" {
		return nil, apperrors.Validation("Video file is required")
	}
	if files.ThumbnailPath == "" {
		return nil, apperrors.Validation("Thumbnail is required")
	}
	if !utils.IsVideoFile(files.VideoPath) {
		return nil, apperrors.Validation("Invalid video file type")
	}
	if !utils.IsImageFile(files.ThumbnailPath) {
		return nil, apperrors.Validation("Thumbnail must be an image file")
	}

	duration := decimal.Zero
	if raw := strings.TrimSpace(req.Duration); raw != "" {
		d, err := decimal.NewFromString(raw)
		if err != nil || d.IsNegative() {
			return nil, apperrors.Validation("Invalid duration")
		}
		duration = d.Round(3)
	}

	categoryID, err := s.resolveCategory(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	if s.media == nil {
		return nil, apperrors.Internal("Failed to upload video", errors.New("media store not configured"))
	}
	videoAsset, err := s.media.Upload(ctx, files.VideoPath, domain.AssetVideo)
	if err != nil {
		s.LogError(ctx, err, "Failed to upload video file", slog.String("owner_id", ownerID))
		return nil, apperrors.Internal("Failed to upload video", err)
	}
	if videoAsset.Duration != nil {
		duration = videoAsset.Duration.Round(3)
	}
	thumbAsset, err := s.media.Upload(ctx, files.ThumbnailPath, domain.AssetThumbnail)
	if err != nil {
		s.discardAsset(ctx, s.media, videoAsset.URL, domain.AssetVideo)
		s.LogError(ctx, err, "Failed to upload thumbnail", slog.String("owner_id", ownerID))
		return nil, apperrors.Internal("Failed to upload thumbnail", err)
	}

	isPublished := true
	if req.IsPublished != nil {
		isPublished = *req.IsPublished
	}

	now := time.Now().UTC()
	video := domain.Video{
		VideoID:     uuid.NewString(),
		OwnerID:     ownerID,
		CategoryID:  categoryID,
		Title:       title,
		Description: description,
		VideoFile:   videoAsset.URL,
		Thumbnail:   thumbAsset.URL,
		Duration:    duration,
		IsPublished: isPublished,
		Timestamps:  domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.videoRepo.SaveVideo(ctx, video); err != nil {
		s.discardAsset(ctx, s.media, videoAsset.URL, domain.AssetVideo)
		s.discardAsset(ctx, s.media, thumbAsset.URL, domain.AssetThumbnail)
		return nil, s.wrapRepoError(ctx, err, "", "Failed to save video", slog.String("owner_id", ownerID))
	}

	s.LogInfo(ctx, "Video published", slog.String("video_id", video.VideoID), slog.String("owner_id", ownerID))
	return s.reload(ctx, video), nil
}

// resolveCategory validates an explicit category or falls back to the default one, if seeded.
func (s *videoService) resolveCategory(ctx context.Context, categoryID string) (*string, error) {
	categoryID = strings.TrimSpace(categoryID)
	if categoryID != "" {
		if _, err := uuid.Parse(categoryID); err != nil {
			return nil, apperrors.Validation("Invalid category id")
		}
		category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
		if err != nil {
			return nil, s.wrapRepoError(ctx, err, "Category not found", "Failed to load category")
		}
		return &category.CategoryID, nil
	}

	category, err := s.categoryRepo.FindCategoryByTitle(ctx, domain.DefaultCategoryTitle)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, s.wrapRepoError(ctx, err, "", "Failed to load category")
	}
	return &category.CategoryID, nil
}

// reload returns the stored record with its joins, falling back to the in-memory copy.
func (s *videoService) reload(ctx context.Context, video domain.Video) *domain.Video {
	stored, err := s.videoRepo.FindVideoByID(ctx, video.VideoID)
	if err != nil {
		s.LogError(ctx, err, "Failed to reload video", slog.String("video_id", video.VideoID))
		return &video
	}
	return stored
}

func (s *videoService) GetVideo(ctx context.Context, videoID, viewerID string) (*domain.Video, error) {
	video, err := s.findVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if !video.VisibleTo(viewerID) {
		return nil, apperrors.NotFound("Video not found")
	}

	if err := s.videoRepo.RecordView(ctx, videoID, viewerID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to record view", slog.String("video_id", videoID))
	} else {
		video.Views++
	}
	return video, nil
}

func (s *videoService) UpdateVideo(ctx context.Context, videoID, actorID string, req dto.UpdateVideoRequest, thumbnailPath string) (*domain.Video, error) {
	if thumbnailPath != "" && !utils.IsImageFile(thumbnailPath) {
		return nil, apperrors.Validation("Thumbnail must be an image file")
	}

	video, err := s.findVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeOwner(ctx, actorID, video.OwnerID, "You are not allowed to update this video"); err != nil {
		return nil, err
	}

	if req.Title != nil {
		if title := strings.TrimSpace(*req.Title); title != "" {
			video.Title = title
		}
	}
	if req.Description != nil {
		if description := strings.TrimSpace(*req.Description); description != "" {
			video.Description = description
		}
	}
	if req.CategoryID != nil {
		categoryID, err := s.resolveCategory(ctx, *req.CategoryID)
		if err != nil {
			return nil, err
		}
		video.CategoryID = categoryID
	}

	previousThumbnail := ""
	if thumbnailPath != "" {
		if s.media == nil {
			return nil, apperrors.Internal("Failed to upload thumbnail", errors.New("media store not configured"))
		}
		asset, err := s.media.Upload(ctx, thumbnailPath, domain.AssetThumbnail)
		if err != nil {
			s.LogError(ctx, err, "Failed to upload thumbnail", slog.String("video_id", videoID))
			return nil, apperrors.Internal("Failed to upload thumbnail", err)
		}
		previousThumbnail = video.Thumbnail
		video.Thumbnail = asset.URL
	}
	video.UpdatedAt = time.Now().UTC()

	if err := s.videoRepo.UpdateVideo(ctx, *video); err != nil {
		if previousThumbnail != "" {
			s.discardAsset(ctx, s.media, video.Thumbnail, domain.AssetThumbnail)
		}
		return nil, s.wrapRepoError(ctx, err, "Video not found", "Failed to update video", slog.String("video_id", videoID))
	}
	s.discardAsset(ctx, s.media, previousThumbnail, domain.AssetThumbnail)

	return s.reload(ctx, *video), nil
}

func (s *videoService) DeleteVideo(ctx context.Context, videoID, actorID string) error {
	video, err := s.findVideo(ctx, videoID)
	if err != nil {
		return err
	}
	if err := s.AuthorizeOwner(ctx, actorID, video.OwnerID, "You are not allowed to delete this video"); err != nil {
		return err
	}

	if err := s.videoRepo.DeleteVideo(ctx, videoID); err != nil {
		return s.wrapRepoError(ctx, err, "Video not found", "Failed to delete video", slog.String("video_id", videoID))
	}
	s.discardAsset(ctx, s.media, video.VideoFile, domain.AssetVideo)
	s.discardAsset(ctx, s.media, video.Thumbnail, domain.AssetThumbnail)
	s.LogInfo(ctx, "Video deleted", slog.String("video_id", videoID))
	return nil
}

func (s *videoService) TogglePublishStatus(ctx context.Context, videoID, actorID string) (*domain.Video, error) {
	video, err := s.findVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeOwner(ctx, actorID, video.OwnerID, "You are not allowed to change this video"); err != nil {
		return nil, err
	}

	video.IsPublished = !video.IsPublished
	video.UpdatedAt = time.Now().UTC()
	if err := s.videoRepo.UpdateVideo(ctx, *video); err != nil {
		return nil, s.wrapRepoError(ctx, err, "Video not found", "Failed to toggle publish status", slog.String("video_id", videoID))
	}
	return video, nil
}

func (s *videoService) GetWatchHistory(ctx context.Context, userID string) ([]domain.Video, error) {
	videos, err := s.videoRepo.FindWatchHistory(ctx, userID)
	if err != nil {
		return nil, s.wrapRepoError(ctx, err, "", "Failed to load watch history", slog.String("user_id", userID))
	}
	return videos, nil
}
