package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/videotube/internal/apperrors"
	"github.com/SscSPs/videotube/internal/core/domain"
	"github.com/SscSPs/videotube/internal/core/services"
	"github.com/SscSPs/videotube/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPlaylistService_Create(t *testing.T) {
	ctx := context.Background()
	videos := new(MockVideoRepository)
	playlists := new(MockPlaylistRepository)
	svc := services.NewPlaylistService(playlists, videos)
	ownerID := uuid.NewString()
	v1, v2 := uuid.NewString(), uuid.NewString()

	videos.On("FindVideoByID", ctx, v1).Return(&domain.Video{VideoID: v1}, nil).Once()
	videos.On("FindVideoByID", ctx, v2).Return(&domain.Video{VideoID: v2}, nil).Once()
	playlists.On("SavePlaylist", ctx, mock.MatchedBy(func(p domain.Playlist) bool {
		return p.Name == dto.DefaultPlaylistName && assert.ObjectsAreEqual([]string{v1, v2}, p.VideoIDs)
	})).Return(nil).Once()

	created, err := svc.CreatePlaylist(ctx, ownerID, dto.CreatePlaylistRequest{Name: "  ", Videos: []string{v1, v2, v1}})

	require.NoError(t, err)
	assert.Equal(t, ownerID, created.OwnerID)
	videos.AssertExpectations(t)
	playlists.AssertExpectations(t)
}

func TestPlaylistService_CreateUnknownVideo(t *testing.T) {
	ctx := context.Background()
	videos := new(MockVideoRepository)
	playlists := new(MockPlaylistRepository)
	missing := uuid.NewString()
	videos.On("FindVideoByID", ctx, missing).Return(nil, apperrors.ErrNotFound).Once()

	_, err := services.NewPlaylistService(playlists, videos).CreatePlaylist(ctx, uuid.NewString(), dto.CreatePlaylistRequest{Videos: []string{missing}})

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	playlists.AssertNotCalled(t, "SavePlaylist", mock.Anything, mock.Anything)
}

func TestPlaylistService_AddAndRemoveVideo(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.NewString()
	playlistID := uuid.NewString()
	present, absent := uuid.NewString(), uuid.NewString()
	current := &domain.Playlist{PlaylistID: playlistID, OwnerID: ownerID, VideoIDs: []string{present}}

	t.Run("already present is a conflict", func(t *testing.T) {
		videos, playlists := new(MockVideoRepository), new(MockPlaylistRepository)
		playlists.On("FindPlaylistByID", ctx, playlistID).Return(current, nil).Once()
		videos.On("FindVideoByID", ctx, present).Return(&domain.Video{VideoID: present}, nil).Once()

		_, err := services.NewPlaylistService(playlists, videos).AddVideo(ctx, playlistID, present, ownerID)

		assert.ErrorIs(t, err, apperrors.ErrDuplicate)
		playlists.AssertNotCalled(t, "AddVideo", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown video is not found", func(t *testing.T) {
		videos, playlists := new(MockVideoRepository), new(MockPlaylistRepository)
		playlists.On("FindPlaylistByID", ctx, playlistID).Return(current, nil).Once()
		videos.On("FindVideoByID", ctx, absent).Return(nil, apperrors.ErrNotFound).Once()

		_, err := services.NewPlaylistService(playlists, videos).AddVideo(ctx, playlistID, absent, ownerID)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("add appends", func(t *testing.T) {
		videos, playlists := new(MockVideoRepository), new(MockPlaylistRepository)
		playlists.On("FindPlaylistByID", ctx, playlistID).Return(current, nil).Once()
		videos.On("FindVideoByID", ctx, absent).Return(&domain.Video{VideoID: absent}, nil).Once()
		playlists.On("AddVideo", ctx, playlistID, absent, mock.AnythingOfType("time.Time")).Return(nil).Once()
		playlists.On("FindPlaylistByID", ctx, playlistID).
			Return(&domain.Playlist{PlaylistID: playlistID, OwnerID: ownerID, VideoIDs: []string{present, absent}}, nil).Once()

		updated, err := services.NewPlaylistService(playlists, videos).AddVideo(ctx, playlistID, absent, ownerID)

		require.NoError(t, err)
		assert.Equal(t, []string{present, absent}, updated.VideoIDs)
		playlists.AssertExpectations(t)
	})

	t.Run("removing a video that is not there is a bad request", func(t *testing.T) {
		videos, playlists := new(MockVideoRepository), new(MockPlaylistRepository)
		playlists.On("FindPlaylistByID", ctx, playlistID).Return(current, nil).Once()

		_, err := services.NewPlaylistService(playlists, videos).RemoveVideo(ctx, playlistID, absent, ownerID)

		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestLikeService_Toggle(t *testing.T) {
	ctx := context.Background()
	userID := uuid.NewString()
	commentID := uuid.NewString()

	likes := new(MockLikeRepository)
	comments := new(MockCommentRepository)
	svc := services.NewLikeService(likes, new(MockVideoRepository), comments, new(MockTweetRepository))

	comments.On("FindCommentByID", ctx, commentID).Return(&domain.Comment{CommentID: commentID}, nil).Twice()
	likes.On("ToggleLike", ctx, domain.LikeTargetComment, commentID, userID).Return(true, nil).Once()
	likes.On("ToggleLike", ctx, domain.LikeTargetComment, commentID, userID).Return(false, nil).Once()

	liked, err := svc.ToggleLike(ctx, domain.LikeTargetComment, commentID, userID)
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = svc.ToggleLike(ctx, domain.LikeTargetComment, commentID, userID)
	require.NoError(t, err)
	assert.False(t, liked)

	_, err = svc.ToggleLike(ctx, domain.LikeTarget("post"), commentID, userID)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.ToggleLike(ctx, domain.LikeTargetComment, "not-a-uuid", userID)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	likes.AssertExpectations(t)
}

func TestLikeService_UnknownTarget(t *testing.T) {
	ctx := context.Background()
	tweetID := uuid.NewString()
	likes := new(MockLikeRepository)
	tweets := new(MockTweetRepository)
	tweets.On("FindTweetByID", ctx, tweetID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := services.NewLikeService(likes, new(MockVideoRepository), new(MockCommentRepository), tweets).
		ToggleLike(ctx, domain.LikeTargetTweet, tweetID, uuid.NewString())

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, "Tweet not found", apperrors.PublicMessage(err))
	likes.AssertNotCalled(t, "ToggleLike", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubscriptionService_Toggle(t *testing.T) {
	ctx := context.Background()
	subs := new(MockSubscriptionRepository)
	users := new(MockUserRepository)
	svc := services.NewSubscriptionService(subs, users)
	me, channel := uuid.NewString(), uuid.NewString()

	_, err := svc.ToggleSubscription(ctx, me, me)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	users.On("FindUserByID", ctx, channel).Return(&domain.User{UserID: channel}, nil).Once()
	subs.On("ToggleSubscription", ctx, me, channel).Return(true, nil).Once()
	subscribed, err := svc.ToggleSubscription(ctx, channel, me)
	require.NoError(t, err)
	assert.True(t, subscribed)

	missing := uuid.NewString()
	users.On("FindUserByID", ctx, missing).Return(nil, apperrors.ErrNotFound).Once()
	_, err = svc.ToggleSubscription(ctx, missing, me)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	subs.AssertExpectations(t)
}

func TestCategoryService(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCategoryRepository)
	svc := services.NewCategoryService(repo)

	repo.On("SaveCategory", ctx, mock.MatchedBy(func(c domain.Category) bool { return c.Title == "Science" })).Return(nil).Once()
	created, err := svc.CreateCategory(ctx, dto.CategoryRequest{Title: " Science "})
	require.NoError(t, err)
	assert.Equal(t, "Science", created.Title)

	repo.On("SaveCategory", ctx, mock.MatchedBy(func(c domain.Category) bool { return c.Title == "Music" })).Return(apperrors.ErrDuplicate).Once()
	_, err = svc.CreateCategory(ctx, dto.CategoryRequest{Title: "Music"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	err = svc.RemoveCategory(ctx, dto.CategoryRequest{Title: domain.DefaultCategoryTitle})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	repo.On("DeleteCategoryByTitle", ctx, "Ghost").Return(apperrors.ErrNotFound).Once()
	err = svc.RemoveCategory(ctx, dto.CategoryRequest{Title: "Ghost"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	repo.On("RenameCategory", ctx, "Science", "Sciences").Return(&domain.Category{Title: "Sciences"}, nil).Once()
	renamed, err := svc.RenameCategory(ctx, dto.RenameCategoryRequest{OldTitle: "Science", Title: "Sciences"})
	require.NoError(t, err)
	assert.Equal(t, "Sciences", renamed.Title)

	_, err = svc.RenameCategory(ctx, dto.RenameCategoryRequest{OldTitle: "Same", Title: "Same"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	repo.AssertExpectations(t)
}

func TestDashboardService_GetChannelVideoIsOwnerOnly(t *testing.T) {
	ctx := context.Background()
	videoID := uuid.NewString()
	ownerID := uuid.NewString()
	repo := new(MockDashboardRepository)
	repo.On("GetVideoStats", ctx, videoID).Return(&domain.VideoStats{Video: domain.Video{VideoID: videoID, OwnerID: ownerID}}, nil).Twice()
	svc := services.NewDashboardService(repo)

	_, err := svc.GetChannelVideo(ctx, videoID, uuid.NewString())
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	stats, err := svc.GetChannelVideo(ctx, videoID, ownerID)
	require.NoError(t, err)
	assert.Equal(t, videoID, stats.VideoID)
}
