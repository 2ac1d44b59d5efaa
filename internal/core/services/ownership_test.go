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
)

// Every mutation of an owned resource by someone else must fail with 403 and leave storage untouched.
func TestMutationsRequireOwnership(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.NewString()
	intruderID := uuid.NewString()
	resourceID := uuid.NewString()
	otherVideoID := uuid.NewString()
	title := "hijacked"

	video := func() *domain.Video {
		return &domain.Video{VideoID: resourceID, OwnerID: ownerID, IsPublished: true, Title: "mine"}
	}
	playlist := func() *domain.Playlist {
		return &domain.Playlist{PlaylistID: resourceID, OwnerID: ownerID, Name: "mine", VideoIDs: []string{otherVideoID}}
	}

	type mocks struct {
		videos    *MockVideoRepository
		comments  *MockCommentRepository
		tweets    *MockTweetRepository
		playlists *MockPlaylistRepository
		media     *MockMediaStore
	}

	tests := []struct {
		name  string
		setup func(m mocks)
		call  func(m mocks) error
	}{
		{
			name:  "update video",
			setup: func(m mocks) { m.videos.On("FindVideoByID", ctx, resourceID).Return(video(), nil) },
			call: func(m mocks) error {
				_, err := services.NewVideoService(m.videos, nil, m.media).UpdateVideo(ctx, resourceID, intruderID, dto.UpdateVideoRequest{Title: &title}, "")
				return err
			},
		},
		{
			name:  "delete video",
			setup: func(m mocks) { m.videos.On("FindVideoByID", ctx, resourceID).Return(video(), nil) },
			call: func(m mocks) error {
				return services.NewVideoService(m.videos, nil, m.media).DeleteVideo(ctx, resourceID, intruderID)
			},
		},
		{
			name:  "toggle publish",
			setup: func(m mocks) { m.videos.On("FindVideoByID", ctx, resourceID).Return(video(), nil) },
			call: func(m mocks) error {
				_, err := services.NewVideoService(m.videos, nil, m.media).TogglePublishStatus(ctx, resourceID, intruderID)
				return err
			},
		},
		{
			name: "update comment",
			setup: func(m mocks) {
				m.comments.On("FindCommentByID", ctx, resourceID).Return(&domain.Comment{CommentID: resourceID, OwnerID: ownerID}, nil)
			},
			call: func(m mocks) error {
				_, err := services.NewCommentService(m.comments, m.videos).UpdateComment(ctx, resourceID, intruderID, dto.CommentRequest{Content: title})
				return err
			},
		},
		{
			name: "delete comment",
			setup: func(m mocks) {
				m.comments.On("FindCommentByID", ctx, resourceID).Return(&domain.Comment{CommentID: resourceID, OwnerID: ownerID}, nil)
			},
			call: func(m mocks) error {
				return services.NewCommentService(m.comments, m.videos).DeleteComment(ctx, resourceID, intruderID)
			},
		},
		{
			name: "update tweet",
			setup: func(m mocks) {
				m.tweets.On("FindTweetByID", ctx, resourceID).Return(&domain.Tweet{TweetID: resourceID, OwnerID: ownerID}, nil)
			},
			call: func(m mocks) error {
				_, err := services.NewTweetService(m.tweets, nil).UpdateTweet(ctx, resourceID, intruderID, dto.TweetRequest{Content: title})
				return err
			},
		},
		{
			name: "delete tweet",
			setup: func(m mocks) {
				m.tweets.On("FindTweetByID", ctx, resourceID).Return(&domain.Tweet{TweetID: resourceID, OwnerID: ownerID}, nil)
			},
			call: func(m mocks) error {
				return services.NewTweetService(m.tweets, nil).DeleteTweet(ctx, resourceID, intruderID)
			},
		},
		{
			name:  "update playlist",
			setup: func(m mocks) { m.playlists.On("FindPlaylistByID", ctx, resourceID).Return(playlist(), nil) },
			call: func(m mocks) error {
				_, err := services.NewPlaylistService(m.playlists, m.videos).UpdatePlaylist(ctx, resourceID, intruderID, dto.UpdatePlaylistRequest{Name: &title})
				return err
			},
		},
		{
			name:  "delete playlist",
			setup: func(m mocks) { m.playlists.On("FindPlaylistByID", ctx, resourceID).Return(playlist(), nil) },
			call: func(m mocks) error {
				return services.NewPlaylistService(m.playlists, m.videos).DeletePlaylist(ctx, resourceID, intruderID)
			},
		},
		{
			name:  "add video to playlist",
			setup: func(m mocks) { m.playlists.On("FindPlaylistByID", ctx, resourceID).Return(playlist(), nil) },
			call: func(m mocks) error {
				_, err := services.NewPlaylistService(m.playlists, m.videos).AddVideo(ctx, resourceID, uuid.NewString(), intruderID)
				return err
			},
		},
		{
			name:  "remove video from playlist",
			setup: func(m mocks) { m.playlists.On("FindPlaylistByID", ctx, resourceID).Return(playlist(), nil) },
			call: func(m mocks) error {
				_, err := services.NewPlaylistService(m.playlists, m.videos).RemoveVideo(ctx, resourceID, otherVideoID, intruderID)
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mocks{
				videos:    new(MockVideoRepository),
				comments:  new(MockCommentRepository),
				tweets:    new(MockTweetRepository),
				playlists: new(MockPlaylistRepository),
				media:     new(MockMediaStore),
			}
			tt.setup(m)

			err := tt.call(m)

			assert.ErrorIs(t, err, apperrors.ErrForbidden)
			assert.Equal(t, 403, apperrors.HTTPStatus(err))
			m.videos.AssertNotCalled(t, "UpdateVideo", mock.Anything, mock.Anything)
			m.videos.AssertNotCalled(t, "DeleteVideo", mock.Anything, mock.Anything)
			m.comments.AssertNotCalled(t, "UpdateComment", mock.Anything, mock.Anything)
			m.comments.AssertNotCalled(t, "DeleteComment", mock.Anything, mock.Anything)
			m.tweets.AssertNotCalled(t, "UpdateTweet", mock.Anything, mock.Anything)
			m.tweets.AssertNotCalled(t, "DeleteTweet", mock.Anything, mock.Anything)
			m.playlists.AssertNotCalled(t, "UpdatePlaylist", mock.Anything, mock.Anything)
			m.playlists.AssertNotCalled(t, "DeletePlaylist", mock.Anything, mock.Anything)
			m.playlists.AssertNotCalled(t, "AddVideo", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			m.playlists.AssertNotCalled(t, "RemoveVideo", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			m.media.AssertNotCalled(t, "DeleteByURL", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestOwnerMayMutate(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.NewString()
	tweetID := uuid.NewString()
	tweets := new(MockTweetRepository)
	tweets.On("FindTweetByID", ctx, tweetID).Return(&domain.Tweet{TweetID: tweetID, OwnerID: ownerID, Content: "old"}, nil).Once()
	tweets.On("UpdateTweet", ctx, mock.MatchedBy(func(tw domain.Tweet) bool { return tw.Content == "new" })).Return(nil).Once()

	updated, err := services.NewTweetService(tweets, nil).UpdateTweet(ctx, tweetID, ownerID, dto.TweetRequest{Content: " new "})

	assert.NoError(t, err)
	assert.Equal(t, "new", updated.Content)
	tweets.AssertExpectations(t)
}
