package pgsql

import (
	portsrepo "github.com/SscSPs/videotube/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:         newPgxUserRepository(dbPool),
		VideoRepo:        newPgxVideoRepository(dbPool),
		CommentRepo:      newPgxCommentRepository(dbPool),
		TweetRepo:        newPgxTweetRepository(dbPool),
		LikeRepo:         newPgxLikeRepository(dbPool),
		SubscriptionRepo: newPgxSubscriptionRepository(dbPool),
		PlaylistRepo:     newPgxPlaylistRepository(dbPool),
		CategoryRepo:     newPgxCategoryRepository(dbPool),
		DashboardRepo:    newPgxDashboardRepository(dbPool),
	}
}
