package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/videotube/internal/apperrors"
	"github.com/SscSPs/videotube/internal/core/domain"
	portsrepo "github.com/SscSPs/videotube/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const playlistSelect = `
	SELECT p.playlist_id, p.owner_id, p.name, p.description, p.created_at, p.updated_at,
		u.username, u.full_name, u.avatar,
		ARRAY(
			SELECT pv.video_id::text FROM playlist_videos pv
			WHERE pv.playlist_id = p.playlist_id
			ORDER BY pv.added_at, pv.video_id
		)
	FROM playlists p
	JOIN users u ON u.user_id = p.owner_id`

type PgxPlaylistRepository struct {
	BaseRepository
}

func newPgxPlaylistRepository(db *pgxpool.Pool) *PgxPlaylistRepository {
	return &PgxPlaylistRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.PlaylistRepositoryFacade = (*PgxPlaylistRepository)(nil)

func scanPlaylist(row pgx.Row) (domain.Playlist, error) {
	var p domain.Playlist
	owner := domain.OwnerProfile{}
	err := row.Scan(
		&p.PlaylistID,
		&p.OwnerID,
		&p.Name,
		&p.Description,
		&p.CreatedAt,
		&p.UpdatedAt,
		&owner.Username,
		&owner.FullName,
		&owner.Avatar,
		&p.VideoIDs,
	)
	if err != nil {
		return domain.Playlist{}, err
	}
	owner.UserID = p.OwnerID
	p.Owner = &owner
	return p, nil
}

func (r *PgxPlaylistRepository) FindPlaylistByID(ctx context.Context, playlistID string) (*domain.Playlist, error) {
	p, err := scanPlaylist(r.Pool.QueryRow(ctx, playlistSelect+` WHERE p.playlist_id = $1;`, playlistID))
	if err != nil {
		return nil, translateReadError(err, fmt.Sprintf("find playlist by ID %s", playlistID))
	}
	return &p, nil
}

func (r *PgxPlaylistRepository) FindPlaylistWithVideos(ctx context.Context, playlistID string) (*domain.Playlist, error) {
	p, err := r.FindPlaylistByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	query := videoSelect + `
		JOIN playlist_videos pv ON pv.video_id = v.video_id
		WHERE pv.playlist_id = $1 AND v.is_published
		ORDER BY pv.added_at, pv.video_id;
	`
	rows, err := r.Pool.Query(ctx, query, playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to query playlist videos: %w", err)
	}
	videos, err := collectVideos(rows)
	if err != nil {
		return nil, err
	}
	p.Videos = videos
	return p, nil
}

func (r *PgxPlaylistRepository) ListUserPlaylists(ctx context.Context, ownerID string) ([]domain.Playlist, error) {
	rows, err := r.Pool.Query(ctx, playlistSelect+` WHERE p.owner_id = $1 ORDER BY p.created_at DESC;`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list playlists: %w", err)
	}
	defer rows.Close()

	playlists := []domain.Playlist{}
	for rows.Next() {
		p, err := scanPlaylist(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan playlist row: %w", err)
		}
		playlists = append(playlists, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating playlist rows: %w", err)
	}
	return playlists, nil
}

// SavePlaylist inserts the playlist together with its initial videos in one transaction.
func (r *PgxPlaylistRepository) SavePlaylist(ctx context.Context, playlist domain.Playlist) error {
	return r.WithTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO playlists (playlist_id, owner_id, name, description, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6);
		`, playlist.PlaylistID, playlist.OwnerID, playlist.Name, playlist.Description, playlist.CreatedAt, playlist.UpdatedAt)
		if err != nil {
			return translateWriteError(err, "save playlist")
		}

		batch := &pgx.Batch{}
		for i, videoID := range playlist.VideoIDs {
			// Distinct added_at values keep the insertion order stable.
			batch.Queue(
				`INSERT INTO playlist_videos (playlist_id, video_id, added_at) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING;`,
				playlist.PlaylistID, videoID, playlist.CreatedAt.Add(time.Duration(i)*time.Microsecond),
			)
		}
		if batch.Len() == 0 {
			return nil
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return translateWriteError(err, "save playlist videos")
		}
		return nil
	})
}

func (r *PgxPlaylistRepository) UpdatePlaylist(ctx context.Context, playlist domain.Playlist) error {
	cmdTag, err := r.Pool.Exec(ctx,
		`UPDATE playlists SET name = $2, description = $3, updated_at = $4 WHERE playlist_id = $1;`,
		playlist.PlaylistID, playlist.Name, playlist.Description, playlist.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update playlist %s: %w", playlist.PlaylistID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPlaylistRepository) DeletePlaylist(ctx context.Context, playlistID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM playlists WHERE playlist_id = $1;`, playlistID)
	if err != nil {
		return fmt.Errorf("failed to delete playlist %s: %w", playlistID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPlaylistRepository) AddVideo(ctx context.Context, playlistID, videoID string, at time.Time) error {
	return r.WithTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO playlist_videos (playlist_id, video_id, added_at) VALUES ($1, $2, $3);`,
			playlistID, videoID, at,
		)
		if err != nil {
			return translateWriteError(err, "add video to playlist")
		}
		return touchPlaylist(ctx, tx, playlistID, at)
	})
}

func (r *PgxPlaylistRepository) RemoveVideo(ctx context.Context, playlistID, videoID string, at time.Time) error {
	return r.WithTx(ctx, func(tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx,
			`DELETE FROM playlist_videos WHERE playlist_id = $1 AND video_id = $2;`,
			playlistID, videoID,
		)
		if err != nil {
			return fmt.Errorf("failed to remove video from playlist: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrNotFound
		}
		return touchPlaylist(ctx, tx, playlistID, at)
	})
}

func touchPlaylist(ctx context.Context, tx pgx.Tx, playlistID string, at time.Time) error {
	if _, err := tx.Exec(ctx, `UPDATE playlists SET updated_at = $2 WHERE playlist_id = $1;`, playlistID, at); err != nil {
		return fmt.Errorf("failed to touch playlist: %w", err)
	}
	return nil
}
