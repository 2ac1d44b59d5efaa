package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserPassword(t *testing.T) {
	u := &User{}
	require.NoError(t, u.SetPassword("hunter22"))

	assert.NotEqual(t, "hunter22", u.PasswordHash)
	assert.True(t, u.VerifyPassword("hunter22"))
	assert.False(t, u.VerifyPassword("hunter23"))
}

func TestUserHasActiveRefreshToken(t *testing.T) {
	u := &User{}
	assert.False(t, u.HasActiveRefreshToken())

	empty := ""
	u.RefreshTokenHash = &empty
	assert.False(t, u.HasActiveRefreshToken())

	hash := "abc"
	u.RefreshTokenHash = &hash
	assert.True(t, u.HasActiveRefreshToken())
}

func TestVideoVisibleTo(t *testing.T) {
	v := Video{OwnerID: "owner", IsPublished: false}
	assert.True(t, v.VisibleTo("owner"))
	assert.False(t, v.VisibleTo("someone"))
	assert.False(t, v.VisibleTo(""))

	v.IsPublished = true
	assert.True(t, v.VisibleTo(""))
}

func TestNewPage(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	videos := []Video{
		{VideoID: "a", Timestamps: Timestamps{CreatedAt: base}},
		{VideoID: "b", Timestamps: Timestamps{CreatedAt: base.Add(-time.Hour)}},
		{VideoID: "c", Timestamps: Timestamps{CreatedAt: base.Add(-2 * time.Hour)}},
	}

	page := NewPage(videos, 2, Video.PageCursor)
	assert.Len(t, page.Items, 2)
	assert.True(t, page.HasMore)
	require.NotNil(t, page.NextCursor)
	assert.Equal(t, "b", page.NextCursor.ID)

	last := NewPage(videos[:1], 2, Video.PageCursor)
	assert.False(t, last.HasMore)
	assert.Nil(t, last.NextCursor)

	empty := NewPage[Video](nil, 2, Video.PageCursor)
	assert.NotNil(t, empty.Items)
	assert.Empty(t, empty.Items)
}

func TestPlaylistContains(t *testing.T) {
	p := Playlist{VideoIDs: []string{"v1", "v2"}}
	assert.True(t, p.Contains("v2"))
	assert.False(t, p.Contains("v3"))
}

func TestLikeTargetValid(t *testing.T) {
	assert.True(t, LikeTargetComment.Valid())
	assert.False(t, LikeTarget("playlist").Valid())
}
