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
	"github.com/google/uuid"
)

// playlistService implements the PlaylistSvcFacade interface
type playlistService struct {
	BaseService
	playlistRepo portsrepo.PlaylistRepositoryFacade
	videoRepo    portsrepo.VideoReader
}

// NewPlaylistService creates a new playlist service.
func NewPlaylistService(playlistRepo portsrepo.PlaylistRepositoryFacade, videoRepo portsrepo.VideoReader) portssvc.PlaylistSvcFacade {
	return &playlistService{playlistRepo: playlistRepo, videoRepo: videoRepo}
}

var _ portssvc.PlaylistSvcFacade = (*playlistService)(nil)

func playlistName(name string) string {
	if name = strings.TrimSpace(name); name == "" {
		return dto.DefaultPlaylistName
	}
	return name
}

func (s *playlistService) findPlaylist(ctx context.Context, playlistID string) (*domain.Playlist, error) {
	if _, err := uuid.Parse(playlistID); err != nil {
		return nil, apperrors.Validation("Invalid playlist id")
	}
	playlist, err := s.playlistRepo.FindPlaylistByID(ctx, playlistID)
	if err != nil {
		return nil, s.wrapRepoError(ctx, err, "Playlist not found", "Failed to load playlist", slog.String("playlist_id", playlistID))
	}
	return playlist, nil
}

func (s *playlistService) requireVideo(ctx context.Context, videoID string) error {
	if _, err := uuid.Parse(videoID); err != nil {
		return apperrors.Validation("Invalid video id")
	}
	if _, err := s.videoRepo.FindVideoByID(ctx, videoID); err != nil {
		return s.wrapRepoError(ctx, err, "Video not found", "Failed to load video", slog.String("video_id", videoID))
	}
	return nil
}

func (s *playlistService) reload(ctx context.Context, playlistID string) (*domain.Playlist, error) {
	playlist, err := s.playlistRepo.FindPlaylistByID(ctx, playlistID)
	if err != nil {
		return nil, s.wrapRepoError(ctx, err, "Playlist not found", "Failed to load playlist", slog.String("playlist_id", playlistID))
	}
	return playlist, nil
}

func (s *playlistService) CreatePlaylist(ctx context.Context, ownerID string, req dto.CreatePlaylistRequest) (*domain.Playlist, error) {
	if len(req.Videos) == 0 {
		return nil, apperrors.Validation("At least one video is required")
	}

	seen := make(map[string]struct{}, len(req.Videos))
	videoIDs := make([]string, 0, len(req.Videos))
	for _, id := range req.Videos {
		if _, dup := seen[id]; dup {
			continue
		}
		if err := s.requireVideo(ctx, id); err != nil {
			return nil, err
		}
		seen[id] = struct{}{}
		videoIDs = append(videoIDs, id)
	}

	now := time.Now().UTC()
	playlist := domain.Playlist{
		PlaylistID:  uuid.NewString(),
		OwnerID:     ownerID,
		Name:        playlistName(req.Name),
		Description: strings.TrimSpace(req.Description),
		VideoIDs:    videoIDs,
		Timestamps:  domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.playlistRepo.SavePlaylist(ctx, playlist); err != nil {
		return nil, s.wrapRepoError(ctx, err, "Video not found", "Failed to create playlist", slog.String("owner_id", ownerID))
	}
	s.LogInfo(ctx, "Playlist created", slog.String("playlist_id", playlist.PlaylistID))
	return &playlist, nil
}

func (s *playlistService) ListUserPlaylists(ctx context.Context, ownerID string) ([]domain.Playlist, error) {
	playlists, err := s.playlistRepo.ListUserPlaylists(ctx, ownerID)
	if err != nil {
		return nil, s.wrapRepoError(ctx, err, "", "Failed to list playlists", slog.String("owner_id", ownerID))
	}
	return playlists, nil
}

func (s *playlistService) GetPlaylist(ctx context.Context, playlistID string) (*domain.Playlist, error) {
	if _, err := uuid.Parse(playlistID); err != nil {
		return nil, apperrors.Validation("Invalid playlist id")
	}
	playlist, err := s.playlistRepo.FindPlaylistWithVideos(ctx, playlistID)
	if err != nil {
		return nil, s.wrapRepoError(ctx, err, "Playlist not found", "Failed to load playlist", slog.String("playlist_id", playlistID))
	}
	return playlist, nil
}

func (s *playlistService) UpdatePlaylist(ctx context.Context, playlistID, actorID string, req dto.UpdatePlaylistRequest) (*domain.Playlist, error) {
	if req.Name == nil && req.Description == nil {
		return nil, apperrors.Validation("Name or description is required")
	}
	playlist, err := s.findPlaylist(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeOwner(ctx, actorID, playlist.OwnerID, "You are not allowed to update this playlist"); err != nil {
		return nil, err
	}

	if req.Name != nil {
		playlist.Name = playlistName(*req.Name)
	}
	if req.Description != nil {
		playlist.Description = strings.TrimSpace(*req.Description)
	}
	playlist.UpdatedAt = time.Now().UTC()

	if err := s.playlistRepo.UpdatePlaylist(ctx, *playlist); err != nil {
		return nil, s.wrapRepoError(ctx, err, "Playlist not found", "Failed to update playlist", slog.String("playlist_id", playlistID))
	}
	return playlist, nil
}

func (s *playlistService) DeletePlaylist(ctx context.Context, playlistID, actorID string) error {
	playlist, err := s.findPlaylist(ctx, playlistID)
	if err != nil {
		return err
	}
	if err := s.AuthorizeOwner(ctx, actorID, playlist.OwnerID, "You are not allowed to delete this playlist"); err != nil {
		return err
	}
	if err := s.playlistRepo.DeletePlaylist(ctx, playlistID); err != nil {
		return s.wrapRepoError(ctx, err, "Playlist not found", "Failed to delete playlist", slog.String("playlist_id", playlistID))
	}
	return nil
}

func (s *playlistService) AddVideo(ctx context.Context, playlistID, videoID, actorID string) (*domain.Playlist, error) {
	playlist, err := s.findPlaylist(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeOwner(ctx, actorID, playlist.OwnerID, "You are not allowed to modify this playlist"); err != nil {
		return nil, err
	}
	if err := s.requireVideo(ctx, videoID); err != nil {
		return nil, err
	}
	if playlist.Contains(videoID) {
		return nil, apperrors.Duplicate("Video is already in the playlist")
	}

	if err := s.playlistRepo.AddVideo(ctx, playlistID, videoID, time.Now().UTC()); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.Duplicate("Video is already in the playlist")
		}
		return nil, s.wrapRepoError(ctx, err, "Video not found", "Failed to add video to playlist", slog.String("playlist_id", playlistID))
	}
	return s.reload(ctx, playlistID)
}

func (s *playlistService) RemoveVideo(ctx context.Context, playlistID, videoID, actorID string) (*domain.Playlist, error) {
	if _, err := uuid.Parse(videoID); err != nil {
		return nil, apperrors.Validation("Invalid video id")
	}
	playlist, err := s.findPlaylist(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if err := s.AuthorizeOwner(ctx, actorID, playlist.OwnerID, "You are not allowed to modify this playlist"); err != nil {
		return nil, err
	}
	if !playlist.Contains(videoID) {
		return nil, apperrors.Validation("Video is not in the playlist")
	}

	if err := s.playlistRepo.RemoveVideo(ctx, playlistID, videoID, time.Now().UTC()); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.Validation("Video is not in the playlist")
		}
		return nil, s.wrapRepoError(ctx, err, "", "Failed to remove video from playlist", slog.String("playlist_id", playlistID))
	}
	return s.reload(ctx, playlistID)
}
