package dto

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/SscSPs/videotube/internal/apperrors"
	"github.com/SscSPs/videotube/internal/core/domain"
	"github.com/SscSPs/videotube/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserResponseNeverLeaksCredentials(t *testing.T) {
	hash := "refresh-hash"
	user := &domain.User{
		UserID:           "u1",
		Username:         "alice",
		Email:            "alice@example.com",
		PasswordHash:     "$2a$10$secret",
		RefreshTokenHash: &hash,
	}

	raw, err := json.Marshal(ToUserResponse(user))
	require.NoError(t, err)

	body := string(raw)
	assert.NotContains(t, body, "password")
	assert.NotContains(t, body, "refreshToken")
	assert.NotContains(t, body, "$2a$10$secret")
	assert.NotContains(t, body, hash)
	assert.Contains(t, body, `"_id":"u1"`)
}

func TestEnvelopes(t *testing.T) {
	ok := NewAPIResponse(http.StatusCreated, map[string]string{"a": "b"}, "")
	assert.True(t, ok.Success)
	assert.Equal(t, "Success", ok.Message)

	failed := NewErrorResponse(http.StatusNotFound, "Video not found")
	assert.False(t, failed.Success)
	assert.NotNil(t, failed.Errors)
}

func TestPageQueryToPageRequest(t *testing.T) {
	req, err := PageQuery{Limit: 500, SortOrder: "asc"}.ToPageRequest()
	require.NoError(t, err)
	assert.Equal(t, pagination.MaxLimit, req.Limit)
	assert.True(t, req.Ascending)
	assert.Nil(t, req.After)

	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	id := uuid.NewString()
	req, err = PageQuery{Cursor: pagination.EncodeCursor(at, id)}.ToPageRequest()
	require.NoError(t, err)
	require.NotNil(t, req.After)
	assert.Equal(t, id, req.After.ID)
	assert.Equal(t, pagination.DefaultLimit, req.Limit)

	_, err = PageQuery{Cursor: "%%%"}.ToPageRequest()
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestToPageResponse(t *testing.T) {
	at := time.Now().UTC()
	page := domain.Page[domain.Video]{
		Items:      []domain.Video{{VideoID: "v1"}},
		HasMore:    true,
		NextCursor: &domain.Cursor{CreatedAt: at, ID: uuid.NewString()},
	}

	resp := ToPageResponse(page, 1, ToVideoResponse)
	assert.Len(t, resp.Items, 1)
	assert.True(t, resp.HasMore)
	assert.NotEmpty(t, resp.NextCursor)
	assert.Equal(t, 1, resp.Limit)
}

func TestToPlaylistResponseEmptyVideos(t *testing.T) {
	resp := ToPlaylistResponse(domain.Playlist{PlaylistID: "p1"})
	assert.NotNil(t, resp.VideoIDs)
	assert.Equal(t, 0, resp.TotalVideos)
}
