package repositories

import (
	"context"

	"github.com/SscSPs/videotube/internal/core/domain"
)

// CategoryRepositoryFacade defines persistence for video categories.
type CategoryRepositoryFacade interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	FindCategoryByTitle(ctx context.Context, title string) (*domain.Category, error)
	SaveCategory(ctx context.Context, category domain.Category) error
	RenameCategory(ctx context.Context, oldTitle, newTitle string) (*domain.Category, error)
	DeleteCategoryByTitle(ctx context.Context, title string) error
}
