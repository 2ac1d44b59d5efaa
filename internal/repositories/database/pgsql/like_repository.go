package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/videotube/internal/apperrors"
	"github.com/SscSPs/videotube/internal/core/domain"
	portsrepo "github.com/SscSPs/videotube/internal/core/ports/repositories"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLikeRepository struct {
	BaseRepository
}

func newPgxLikeRepository(db *pgxpool.Pool) *PgxLikeRepository {
	return &PgxLikeRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.LikeRepositoryFacade = (*PgxLikeRepository)(nil)

func likeColumn(target domain.LikeTarget) (string, error) {
	switch target {
	case domain.LikeTargetVideo:
		return "video_id", nil
	case domain.LikeTargetComment:
		return "comment_id", nil
	case domain.LikeTargetTweet:
		return "tweet_id", nil
	}
	return "", fmt.Errorf("unknown like target %q: %w", target, apperrors.ErrValidation)
}

// ToggleLike deletes first and only inserts when nothing was deleted. The partial unique
// indexes make a concurrent double insert collapse into a single row.
func (r *PgxLikeRepository) ToggleLike(ctx context.Context, target domain.LikeTarget, targetID, userID string) (bool, error) {
	column, err := likeColumn(target)
	if err != nil {
		return false, err
	}

	deleteQuery := fmt.Sprintf(`DELETE FROM likes WHERE liked_by = $1 AND %s = $2;`, column)
	cmdTag, err := r.Pool.Exec(ctx, deleteQuery, userID, targetID)
	if err != nil {
		return false, fmt.Errorf("failed to remove %s like: %w", target, err)
	}
	if cmdTag.RowsAffected() > 0 {
		return false, nil
	}

	insertQuery := fmt.Sprintf(`
		INSERT INTO likes (like_id, liked_by, %s, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT DO NOTHING;
	`, column)
	if _, err := r.Pool.Exec(ctx, insertQuery, uuid.NewString(), userID, targetID, time.Now().UTC()); err != nil {
		return false, translateWriteError(err, fmt.Sprintf("add %s like", target))
	}
	return true, nil
}
