package dto

import (
	"time"

	"github.com/SscSPs/videotube/internal/core/domain"
)

// CategoryRequest names a category to add or remove.
type CategoryRequest struct {
	Title string `json:"title" binding:"required,notblank"`
}

// RenameCategoryRequest renames an existing category.
type RenameCategoryRequest struct {
	OldTitle string `json:"oldTitle" binding:"required,notblank"`
	Title    string `json:"title" binding:"required,notblank"`
}

// CategoryResponse is the public representation of a category.
type CategoryResponse struct {
	CategoryID string    `json:"_id"`
	Title      string    `json:"title"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ToCategoryResponse converts a domain.Category to CategoryResponse DTO
func ToCategoryResponse(c domain.Category) CategoryResponse {
	return CategoryResponse{CategoryID: c.CategoryID, Title: c.Title, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}
}

// ToCategoryResponses converts a slice of categories.
func ToCategoryResponses(categories []domain.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, ToCategoryResponse(c))
	}
	return out
}
