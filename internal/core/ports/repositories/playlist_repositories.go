package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/videotube/internal/core/domain"
)

// PlaylistRepositoryFacade defines persistence for playlists and their entries.
type PlaylistRepositoryFacade interface {
	// FindPlaylistByID returns the playlist with its video ids in insertion order.
	FindPlaylistByID(ctx context.Context, playlistID string) (*domain.Playlist, error)

	// FindPlaylistWithVideos returns the playlist, its owner and its published videos.
	FindPlaylistWithVideos(ctx context.Context, playlistID string) (*domain.Playlist, error)

	ListUserPlaylists(ctx context.Context, ownerID string) ([]domain.Playlist, error)
	// SavePlaylist persists the playlist and its initial VideoIDs.
	SavePlaylist(ctx context.Context, playlist domain.Playlist) error
	UpdatePlaylist(ctx context.Context, playlist domain.Playlist) error
	DeletePlaylist(ctx context.Context, playlistID string) error

	// AddVideo appends videoID. Returns apperrors.ErrDuplicate if already present.
	AddVideo(ctx context.Context, playlistID, videoID string, at time.Time) error

	// RemoveVideo removes videoID. Returns apperrors.ErrNotFound if absent.
	RemoveVideo(ctx context.Context, playlistID, videoID string, at time.Time) error
}
