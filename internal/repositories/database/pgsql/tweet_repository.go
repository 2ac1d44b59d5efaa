package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/videotube/internal/apperrors"
	"github.com/SscSPs/videotube/internal/core/domain"
	portsrepo "github.com/SscSPs/videotube/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const tweetSelect = `
	SELECT t.tweet_id, t.owner_id, t.content, t.created_at, t.updated_at,
		u.username, u.full_name, u.avatar,
		(SELECT COUNT(*) FROM likes l WHERE l.tweet_id = t.tweet_id)
	FROM tweets t
	JOIN users u ON u.user_id = t.owner_id`

type PgxTweetRepository struct {
	BaseRepository
}

func newPgxTweetRepository(db *pgxpool.Pool) *PgxTweetRepository {
	return &PgxTweetRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.TweetRepositoryFacade = (*PgxTweetRepository)(nil)

func scanTweet(row pgx.Row) (domain.Tweet, error) {
	var t domain.Tweet
	owner := domain.OwnerProfile{}
	err := row.Scan(
		&t.TweetID,
		&t.OwnerID,
		&t.Content,
		&t.CreatedAt,
		&t.UpdatedAt,
		&owner.Username,
		&owner.FullName,
		&owner.Avatar,
		&t.LikesCount,
	)
	if err != nil {
		return domain.Tweet{}, err
	}
	owner.UserID = t.OwnerID
	t.Owner = &owner
	return t, nil
}

func (r *PgxTweetRepository) FindTweetByID(ctx context.Context, tweetID string) (*domain.Tweet, error) {
	t, err := scanTweet(r.Pool.QueryRow(ctx, tweetSelect+` WHERE t.tweet_id = $1;`, tweetID))
	if err != nil {
		return nil, translateReadError(err, fmt.Sprintf("find tweet by ID %s", tweetID))
	}
	return &t, nil
}

func (r *PgxTweetRepository) ListUserTweets(ctx context.Context, userID string) ([]domain.Tweet, error) {
	rows, err := r.Pool.Query(ctx, tweetSelect+` WHERE t.owner_id = $1 ORDER BY t.created_at DESC;`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tweets: %w", err)
	}
	defer rows.Close()

	tweets := []domain.Tweet{}
	for rows.Next() {
		t, err := scanTweet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tweet row: %w", err)
		}
		tweets = append(tweets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tweet rows: %w", err)
	}
	return tweets, nil
}

func (r *PgxTweetRepository) SaveTweet(ctx context.Context, tweet domain.Tweet) error {
	_, err := r.Pool.Exec(ctx,
		`INSERT INTO tweets (tweet_id, owner_id, content, created_at, updated_at) VALUES ($1, $2, $3, $4, $5);`,
		tweet.TweetID, tweet.OwnerID, tweet.Content, tweet.CreatedAt, tweet.UpdatedAt,
	)
	if err != nil {
		return translateWriteError(err, "save tweet")
	}
	return nil
}

func (r *PgxTweetRepository) UpdateTweet(ctx context.Context, tweet domain.Tweet) error {
	cmdTag, err := r.Pool.Exec(ctx,
		`UPDATE tweets SET content = $2, updated_at = $3 WHERE tweet_id = $1;`,
		tweet.TweetID, tweet.Content, tweet.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update tweet %s: %w", tweet.TweetID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTweetRepository) DeleteTweet(ctx context.Context, tweetID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM tweets WHERE tweet_id = $1;`, tweetID)
	if err != nil {
		return fmt.Errorf("failed to delete tweet %s: %w", tweetID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
