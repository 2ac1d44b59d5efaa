package dto

import (
	"github.com/SscSPs/videotube/internal/apperrors"
	"github.com/SscSPs/videotube/internal/core/domain"
	"github.com/SscSPs/videotube/internal/utils/pagination"
)

// PageQuery holds the cursor pagination query parameters shared by list endpoints.
type PageQuery struct {
	Cursor    string `form:"cursor"`
	Limit     int    `form:"limit"`
	SortOrder string `form:"sortOrder" binding:"omitempty,oneof=asc desc"`
}

// ToPageRequest decodes the cursor and normalizes the limit.
func (q PageQuery) ToPageRequest() (domain.PageRequest, error) {
	req := domain.PageRequest{
		Limit:     pagination.NormalizeLimit(q.Limit),
		Ascending: q.SortOrder == "asc",
	}
	if q.Cursor != "" {
		createdAt, id, err := pagination.DecodeCursor(q.Cursor)
		if err != nil {
			return domain.PageRequest{}, apperrors.Validation("Invalid pagination cursor")
		}
		req.After = &domain.Cursor{CreatedAt: createdAt, ID: id}
	}
	return req, nil
}

// PageResponse is a page of items plus the cursor for the next page.
type PageResponse[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"nextCursor,omitempty"`
	HasMore    bool   `json:"hasMore"`
	Limit      int    `json:"limit"`
}

// ToPageResponse maps a domain page with convert and encodes the next cursor.
func ToPageResponse[S, T any](page domain.Page[S], limit int, convert func(S) T) PageResponse[T] {
	resp := PageResponse[T]{Items: make([]T, 0, len(page.Items)), HasMore: page.HasMore, Limit: limit}
	for _, item := range page.Items {
		resp.Items = append(resp.Items, convert(item))
	}
	if page.NextCursor != nil {
		resp.NextCursor = pagination.EncodeCursor(page.NextCursor.CreatedAt, page.NextCursor.ID)
	}
	return resp
}
