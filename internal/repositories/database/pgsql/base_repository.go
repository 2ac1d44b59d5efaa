package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/videotube/internal/apperrors"
	"github.com/SscSPs/videotube/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// WithTx runs fn inside a transaction, committing on success and rolling back otherwise.
func (r *BaseRepository) WithTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = r.Rollback(ctx, tx)
		return err
	}
	return r.Commit(ctx, tx)
}

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// translateWriteError maps constraint violations onto domain sentinels.
func translateWriteError(err error, what string) error {
	switch pgErrorCode(err) {
	case pgUniqueViolation:
		return fmt.Errorf("%s: %w", what, apperrors.ErrDuplicate)
	case pgForeignKeyViolation:
		return fmt.Errorf("%s: referenced record missing: %w", what, apperrors.ErrNotFound)
	}
	return fmt.Errorf("failed to %s: %w", what, err)
}

// translateReadError maps pgx.ErrNoRows onto apperrors.ErrNotFound.
func translateReadError(err error, what string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	return fmt.Errorf("failed to %s: %w", what, err)
}

// nullableID turns an empty id into SQL NULL.
func nullableID(id string) any {
	if id == "" {
		return nil
	}
	return id
}

// keyset builds the cursor predicate and the ORDER BY/LIMIT tail for a (created_at, id) keyset page.
// It fetches one extra row so the caller can tell whether another page exists.
func keyset(createdCol, idCol string, page domain.PageRequest, args []any) (string, string, []any) {
	op, dir := "<", "DESC"
	if page.Ascending {
		op, dir = ">", "ASC"
	}

	predicate := ""
	if page.After != nil {
		args = append(args, page.After.CreatedAt, page.After.ID)
		predicate = fmt.Sprintf("(%s, %s) %s ($%d, $%d)", createdCol, idCol, op, len(args)-1, len(args))
	}

	args = append(args, page.Limit+1)
	tail := fmt.Sprintf(" ORDER BY %s %s, %s %s LIMIT $%d", createdCol, dir, idCol, dir, len(args))
	return predicate, tail, args
}
