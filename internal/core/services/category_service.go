package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/videotube/internal/apperrors"
	"github.com/SscSPs/videotube/internal/core/domain"
	portsrepo "github.com/SscSPs/videotube/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/videotube/internal/core/ports/services"
	"github.com/SscSPs/videotube/internal/dto"
	"github.com/google/uuid"
)

// categoryService implements the CategorySvcFacade interface
type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new category service.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, s.wrapRepoError(ctx, err, "", "Failed to list categories")
	}
	return categories, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, req dto.CategoryRequest) (*domain.Category, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, apperrors.Validation("Title is required")
	}

	now := time.Now().UTC()
	category := domain.Category{
		CategoryID: uuid.NewString(),
		Title:      title,
		Timestamps: domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.Duplicate("Category already exists")
		}
		return nil, s.wrapRepoError(ctx, err, "", "Failed to create category", slog.String("title", title))
	}
	return &category, nil
}

func (s *categoryService) RemoveCategory(ctx context.Context, req dto.CategoryRequest) error {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return apperrors.Validation("Title is required")
	}
	if strings.EqualFold(title, domain.DefaultCategoryTitle) {
		return apperrors.Validation("The default category cannot be removed")
	}
	if err := s.categoryRepo.DeleteCategoryByTitle(ctx, title); err != nil {
		return s.wrapRepoError(ctx, err, "Category not found", "Failed to remove category", slog.String("title", title))
	}
	return nil
}

func (s *categoryService) RenameCategory(ctx context.Context, req dto.RenameCategoryRequest) (*domain.Category, error) {
	oldTitle := strings.TrimSpace(req.OldTitle)
	title := strings.TrimSpace(req.Title)
	if oldTitle == "" || title == "" {
		return nil, apperrors.Validation("Old and new title are required")
	}
	if oldTitle == title {
		return nil, apperrors.Validation("New title must be different from the old title")
	}
	if strings.EqualFold(oldTitle, domain.DefaultCategoryTitle) {
		return nil, apperrors.Validation("The default category cannot be renamed")
	}

	category, err := s.categoryRepo.RenameCategory(ctx, oldTitle, title)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.Duplicate("Category already exists")
		}
		return nil, s.wrapRepoError(ctx, err, "Category not found", "Failed to rename category", slog.String("title", oldTitle))
	}
	return category, nil
}
