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

const categoryColumns = `category_id, title, created_at, updated_at`

type PgxCategoryRepository struct {
	BaseRepository
}

func newPgxCategoryRepository(db *pgxpool.Pool) *PgxCategoryRepository {
	return &PgxCategoryRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var c domain.Category
	if err := row.Scan(&c.CategoryID, &c.Title, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *PgxCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+categoryColumns+` FROM categories ORDER BY title;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}
	return categories, nil
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	c, err := scanCategory(r.Pool.QueryRow(ctx, `SELECT `+categoryColumns+` FROM categories WHERE category_id = $1;`, categoryID))
	if err != nil {
		return nil, translateReadError(err, "find category by ID")
	}
	return c, nil
}

func (r *PgxCategoryRepository) FindCategoryByTitle(ctx context.Context, title string) (*domain.Category, error) {
	c, err := scanCategory(r.Pool.QueryRow(ctx, `SELECT `+categoryColumns+` FROM categories WHERE LOWER(title) = LOWER($1);`, title))
	if err != nil {
		return nil, translateReadError(err, "find category by title")
	}
	return c, nil
}

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	_, err := r.Pool.Exec(ctx,
		`INSERT INTO categories (category_id, title, created_at, updated_at) VALUES ($1, $2, $3, $4);`,
		category.CategoryID, category.Title, category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		return translateWriteError(err, "save category")
	}
	return nil
}

func (r *PgxCategoryRepository) RenameCategory(ctx context.Context, oldTitle, newTitle string) (*domain.Category, error) {
	query := `
		UPDATE categories SET title = $2, updated_at = $3
		WHERE LOWER(title) = LOWER($1)
		RETURNING ` + categoryColumns + `;`
	c, err := scanCategory(r.Pool.QueryRow(ctx, query, oldTitle, newTitle, time.Now().UTC()))
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return nil, translateWriteError(err, "rename category")
		}
		return nil, translateReadError(err, "rename category")
	}
	return c, nil
}

func (r *PgxCategoryRepository) DeleteCategoryByTitle(ctx context.Context, title string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM categories WHERE LOWER(title) = LOWER($1);`, title)
	if err != nil {
		return fmt.Errorf("failed to delete category %q: %w", title, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
