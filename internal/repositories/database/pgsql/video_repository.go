package pgsql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/videotube/internal/apperrors"
	"github.com/SscSPs/videotube/internal/core/domain"
	portsrepo "github.com/SscSPs/videotube/internal/core/ports/repositories"
	"github.com/SscSPs/videotube/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	videoColumns = `v.video_id, v.owner_id, v.category_id, v.title, v.description, v.video_file, v.thumbnail,
		v.duration, v.views, v.is_published, v.created_at, v.updated_at,
		u.username, u.full_name, u.avatar, c.title`
	videoFrom = `
	FROM videos v
	JOIN users u ON u.user_id = v.owner_id
	LEFT JOIN categories c ON c.category_id = v.category_id`
	videoSelect = `SELECT ` + videoColumns + videoFrom
)

type PgxVideoRepository struct {
	BaseRepository
}

func newPgxVideoRepository(db *pgxpool.Pool) *PgxVideoRepository {
	return &PgxVideoRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.VideoRepositoryFacade = (*PgxVideoRepository)(nil)

func toDomainVideo(m models.Video) domain.Video {
	v := domain.Video{
		VideoID:     m.VideoID,
		OwnerID:     m.OwnerID,
		CategoryID:  m.CategoryID,
		Title:       m.Title,
		Description: m.Description,
		VideoFile:   m.VideoFile,
		Thumbnail:   m.Thumbnail,
		Duration:    m.Duration,
		Views:       m.Views,
		IsPublished: m.IsPublished,
		Owner: &domain.OwnerProfile{
			UserID:   m.OwnerID,
			Username: m.OwnerUsername,
			FullName: m.OwnerFullName,
			Avatar:   m.OwnerAvatar,
		},
		Timestamps: domain.Timestamps{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
	}
	if m.CategoryTitle.Valid {
		title := m.CategoryTitle.String
		v.Category = &title
	}
	return v
}

// scanVideo scans a row produced by videoSelect plus any trailing columns in extra.
func scanVideo(row pgx.Row, extra ...any) (domain.Video, error) {
	var m models.Video
	dest := []any{
		&m.VideoID,
		&m.OwnerID,
		&m.CategoryID,
		&m.Title,
		&m.Description,
		&m.VideoFile,
		&m.Thumbnail,
		&m.Duration,
		&m.Views,
		&m.IsPublished,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.OwnerUsername,
		&m.OwnerFullName,
		&m.OwnerAvatar,
		&m.CategoryTitle,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return domain.Video{}, err
	}
	return toDomainVideo(m), nil
}

func collectVideos(rows pgx.Rows) ([]domain.Video, error) {
	defer rows.Close()
	videos := []domain.Video{}
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan video row: %w", err)
		}
		videos = append(videos, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating video rows: %w", err)
	}
	return videos, nil
}

func (r *PgxVideoRepository) SaveVideo(ctx context.Context, video domain.Video) error {
	query := `
		INSERT INTO videos (video_id, owner_id, category_id, title, description, video_file, thumbnail,
			duration, views, is_published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		video.VideoID,
		video.OwnerID,
		video.CategoryID,
		video.Title,
		video.Description,
		video.VideoFile,
		video.Thumbnail,
		video.Duration,
		video.Views,
		video.IsPublished,
		video.CreatedAt,
		video.UpdatedAt,
	)
	if err != nil {
		return translateWriteError(err, "save video")
	}
	return nil
}

func (r *PgxVideoRepository) FindVideoByID(ctx context.Context, videoID string) (*domain.Video, error) {
	video, err := scanVideo(r.Pool.QueryRow(ctx, videoSelect+` WHERE v.video_id = $1;`, videoID))
	if err != nil {
		return nil, translateReadError(err, fmt.Sprintf("find video by ID %s", videoID))
	}
	return &video, nil
}

func (r *PgxVideoRepository) ListVideos(ctx context.Context, filter domain.VideoFilter, page domain.PageRequest) (domain.Page[domain.Video], error) {
	var conditions []string
	var args []any

	if filter.OnlyPublished {
		conditions = append(conditions, "v.is_published")
	}
	if filter.OwnerID != "" {
		args = append(args, filter.OwnerID)
		conditions = append(conditions, fmt.Sprintf("v.owner_id = $%d", len(args)))
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		args = append(args, "%"+escapeLike(q)+"%")
		conditions = append(conditions, fmt.Sprintf("(v.title ILIKE $%d OR v.description ILIKE $%d)", len(args), len(args)))
	}

	predicate, tail, args := keyset("v.created_at", "v.video_id", page, args)
	if predicate != "" {
		conditions = append(conditions, predicate)
	}

	query := videoSelect
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += tail

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return domain.Page[domain.Video]{}, fmt.Errorf("failed to list videos: %w", err)
	}
	videos, err := collectVideos(rows)
	if err != nil {
		return domain.Page[domain.Video]{}, err
	}
	return domain.NewPage(videos, page.Limit, domain.Video.PageCursor), nil
}

func (r *PgxVideoRepository) FindWatchHistory(ctx context.Context, userID string) ([]domain.Video, error) {
	query := videoSelect + `
		JOIN watch_history w ON w.video_id = v.video_id
		WHERE w.user_id = $1
		ORDER BY w.watched_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query watch history: %w", err)
	}
	return collectVideos(rows)
}

func (r *PgxVideoRepository) FindLikedVideos(ctx context.Context, userID string) ([]domain.Video, error) {
	query := videoSelect + `
		JOIN likes l ON l.video_id = v.video_id
		WHERE l.liked_by = $1 AND v.is_published
		ORDER BY l.created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query liked videos: %w", err)
	}
	return collectVideos(rows)
}

func (r *PgxVideoRepository) UpdateVideo(ctx context.Context, video domain.Video) error {
	query := `
		UPDATE videos
		SET title = $2, description = $3, thumbnail = $4, category_id = $5, is_published = $6, updated_at = $7
		WHERE video_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		video.VideoID,
		video.Title,
		video.Description,
		video.Thumbnail,
		video.CategoryID,
		video.IsPublished,
		video.UpdatedAt,
	)
	if err != nil {
		return translateWriteError(err, "update video")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxVideoRepository) DeleteVideo(ctx context.Context, videoID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM videos WHERE video_id = $1;`, videoID)
	if err != nil {
		return fmt.Errorf("failed to delete video %s: %w", videoID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxVideoRepository) RecordView(ctx context.Context, videoID, viewerID string, at time.Time) error {
	return r.WithTx(ctx, func(tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, `UPDATE videos SET views = views + 1 WHERE video_id = $1;`, videoID)
		if err != nil {
			return fmt.Errorf("failed to increment views: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrNotFound
		}
		if viewerID == "" {
			return nil
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO watch_history (user_id, video_id, watched_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (user_id, video_id) DO UPDATE SET watched_at = EXCLUDED.watched_at;
		`, viewerID, videoID, at)
		if err != nil {
			return fmt.Errorf("failed to record watch history: %w", err)
		}
		return nil
	})
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
