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

const commentSelect = `
	SELECT c.comment_id, c.video_id, c.owner_id, c.content, c.created_at, c.updated_at,
		u.username, u.full_name, u.avatar,
		(SELECT COUNT(*) FROM likes l WHERE l.comment_id = c.comment_id)
	FROM comments c
	JOIN users u ON u.user_id = c.owner_id`

type PgxCommentRepository struct {
	BaseRepository
}

func newPgxCommentRepository(db *pgxpool.Pool) *PgxCommentRepository {
	return &PgxCommentRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.CommentRepositoryFacade = (*PgxCommentRepository)(nil)

func scanComment(row pgx.Row) (domain.Comment, error) {
	var c domain.Comment
	owner := domain.OwnerProfile{}
	err := row.Scan(
		&c.CommentID,
		&c.VideoID,
		&c.OwnerID,
		&c.Content,
		&c.CreatedAt,
		&c.UpdatedAt,
		&owner.Username,
		&owner.FullName,
		&owner.Avatar,
		&c.LikesCount,
	)
	if err != nil {
		return domain.Comment{}, err
	}
	owner.UserID = c.OwnerID
	c.Owner = &owner
	return c, nil
}

func (r *PgxCommentRepository) FindCommentByID(ctx context.Context, commentID string) (*domain.Comment, error) {
	c, err := scanComment(r.Pool.QueryRow(ctx, commentSelect+` WHERE c.comment_id = $1;`, commentID))
	if err != nil {
		return nil, translateReadError(err, fmt.Sprintf("find comment by ID %s", commentID))
	}
	return &c, nil
}

func (r *PgxCommentRepository) ListVideoComments(ctx context.Context, videoID string, page domain.PageRequest) (domain.Page[domain.Comment], error) {
	predicate, tail, args := keyset("c.created_at", "c.comment_id", page, []any{videoID})
	query := commentSelect + ` WHERE c.video_id = $1`
	if predicate != "" {
		query += " AND " + predicate
	}
	query += tail

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return domain.Page[domain.Comment]{}, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := []domain.Comment{}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return domain.Page[domain.Comment]{}, fmt.Errorf("failed to scan comment row: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return domain.Page[domain.Comment]{}, fmt.Errorf("error iterating comment rows: %w", err)
	}
	return domain.NewPage(comments, page.Limit, domain.Comment.PageCursor), nil
}

func (r *PgxCommentRepository) SaveComment(ctx context.Context, comment domain.Comment) error {
	query := `
		INSERT INTO comments (comment_id, video_id, owner_id, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		comment.CommentID,
		comment.VideoID,
		comment.OwnerID,
		comment.Content,
		comment.CreatedAt,
		comment.UpdatedAt,
	)
	if err != nil {
		return translateWriteError(err, "save comment")
	}
	return nil
}

func (r *PgxCommentRepository) UpdateComment(ctx context.Context, comment domain.Comment) error {
	cmdTag, err := r.Pool.Exec(ctx,
		`UPDATE comments SET content = $2, updated_at = $3 WHERE comment_id = $1;`,
		comment.CommentID, comment.Content, comment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update comment %s: %w", comment.CommentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCommentRepository) DeleteComment(ctx context.Context, commentID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM comments WHERE comment_id = $1;`, commentID)
	if err != nil {
		return fmt.Errorf("failed to delete comment %s: %w", commentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
