package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/videotube/internal/core/domain"
	portsrepo "github.com/SscSPs/videotube/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

const videoStatsColumns = `,
		(SELECT COUNT(*) FROM likes l WHERE l.video_id = v.video_id),
		(SELECT COUNT(*) FROM comments cm WHERE cm.video_id = v.video_id)`

type PgxDashboardRepository struct {
	BaseRepository
}

func newPgxDashboardRepository(db *pgxpool.Pool) *PgxDashboardRepository {
	return &PgxDashboardRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.DashboardRepositoryFacade = (*PgxDashboardRepository)(nil)

const videoStatsSelect = `SELECT ` + videoColumns + videoStatsColumns + videoFrom

func (r *PgxDashboardRepository) GetChannelStats(ctx context.Context, channelID string) (*domain.ChannelStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM videos WHERE owner_id = $1),
			(SELECT COALESCE(SUM(views), 0)::bigint FROM videos WHERE owner_id = $1),
			(SELECT COUNT(*) FROM likes l JOIN videos v ON v.video_id = l.video_id WHERE v.owner_id = $1),
			(SELECT COUNT(*) FROM subscriptions WHERE channel_id = $1),
			(SELECT COUNT(*) FROM tweets WHERE owner_id = $1),
			(SELECT COUNT(*) FROM comments c JOIN videos v ON v.video_id = c.video_id WHERE v.owner_id = $1);
	`
	var s domain.ChannelStats
	err := r.Pool.QueryRow(ctx, query, channelID).Scan(
		&s.TotalVideos,
		&s.TotalViews,
		&s.TotalLikes,
		&s.TotalSubscribers,
		&s.TotalTweets,
		&s.TotalComments,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load channel stats: %w", err)
	}
	return &s, nil
}

func (r *PgxDashboardRepository) ListChannelVideos(ctx context.Context, channelID string, page domain.PageRequest) (domain.Page[domain.VideoStats], error) {
	predicate, tail, args := keyset("v.created_at", "v.video_id", page, []any{channelID})
	query := videoStatsSelect + ` WHERE v.owner_id = $1`
	if predicate != "" {
		query += " AND " + predicate
	}
	query += tail

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return domain.Page[domain.VideoStats]{}, fmt.Errorf("failed to list channel videos: %w", err)
	}
	defer rows.Close()

	items := []domain.VideoStats{}
	for rows.Next() {
		var s domain.VideoStats
		video, err := scanVideo(rows, &s.LikesCount, &s.CommentsCount)
		if err != nil {
			return domain.Page[domain.VideoStats]{}, fmt.Errorf("failed to scan channel video row: %w", err)
		}
		s.Video = video
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return domain.Page[domain.VideoStats]{}, fmt.Errorf("error iterating channel video rows: %w", err)
	}
	return domain.NewPage(items, page.Limit, func(s domain.VideoStats) domain.Cursor { return s.PageCursor() }), nil
}

func (r *PgxDashboardRepository) GetVideoStats(ctx context.Context, videoID string) (*domain.VideoStats, error) {
	var s domain.VideoStats
	video, err := scanVideo(r.Pool.QueryRow(ctx, videoStatsSelect+` WHERE v.video_id = $1;`, videoID), &s.LikesCount, &s.CommentsCount)
	if err != nil {
		return nil, translateReadError(err, fmt.Sprintf("load stats for video %s", videoID))
	}
	s.Video = video
	return &s, nil
}
