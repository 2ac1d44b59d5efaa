package services

import (
	"context"

	"github.com/SscSPs/videotube/internal/core/domain"
	"github.com/SscSPs/videotube/internal/dto"
)

// VideoSvcFacade defines video operations.
type VideoSvcFacade interface {
	ListVideos(ctx context.Context, filter domain.VideoFilter, page domain.PageRequest) (domain.Page[domain.Video], error)
	PublishVideo(ctx context.Context, ownerID string, req dto.PublishVideoRequest, files dto.VideoFiles) (*domain.Video, error)

	// GetVideo returns a video visible to viewerID and records the view.
	GetVideo(ctx context.Context, videoID, viewerID string) (*domain.Video, error)

	UpdateVideo(ctx context.Context, videoID, actorID string, req dto.UpdateVideoRequest, thumbnailPath string) (*domain.Video, error)
	DeleteVideo(ctx context.Context, videoID, actorID string) error
	TogglePublishStatus(ctx context.Context, videoID, actorID string) (*domain.Video, error)
	GetWatchHistory(ctx context.Context, userID string) ([]domain.Video, error)
}

// DescriptionSvcFacade suggests video descriptions.
type DescriptionSvcFacade interface {
	GenerateDescription(ctx context.Context, title string) (string, error)
}

// CommentSvcFacade defines comment operations.
type CommentSvcFacade interface {
	ListVideoComments(ctx context.Context, videoID string, page domain.PageRequest) (domain.Page[domain.Comment], error)
	AddComment(ctx context.Context, videoID, ownerID string, req dto.CommentRequest) (*domain.Comment, error)
	UpdateComment(ctx context.Context, commentID, actorID string, req dto.CommentRequest) (*domain.Comment, error)
	DeleteComment(ctx context.Context, commentID, actorID string) error
}

// TweetSvcFacade defines tweet operations.
type TweetSvcFacade interface {
	CreateTweet(ctx context.Context, ownerID string, req dto.TweetRequest) (*domain.Tweet, error)
	ListUserTweets(ctx context.Context, userID string) ([]domain.Tweet, error)
	UpdateTweet(ctx context.Context, tweetID, actorID string, req dto.TweetRequest) (*domain.Tweet, error)
	DeleteTweet(ctx context.Context, tweetID, actorID string) error
}

// LikeSvcFacade defines like operations.
type LikeSvcFacade interface {
	ToggleLike(ctx context.Context, target domain.LikeTarget, targetID, userID string) (bool, error)
	ListLikedVideos(ctx context.Context, userID string) ([]domain.Video, error)
}

// SubscriptionSvcFacade defines channel subscription operations.
type SubscriptionSvcFacade interface {
	ToggleSubscription(ctx context.Context, channelID, subscriberID string) (bool, error)
	ListSubscribers(ctx context.Context, channelID string) ([]domain.Subscription, error)
	ListSubscribedChannels(ctx context.Context, subscriberID string) ([]domain.Subscription, error)
}

// PlaylistSvcFacade defines playlist operations.
type PlaylistSvcFacade interface {
	CreatePlaylist(ctx context.Context, ownerID string, req dto.CreatePlaylistRequest) (*domain.Playlist, error)
	ListUserPlaylists(ctx context.Context, ownerID string) ([]domain.Playlist, error)
	GetPlaylist(ctx context.Context, playlistID string) (*domain.Playlist, error)
	UpdatePlaylist(ctx context.Context, playlistID, actorID string, req dto.UpdatePlaylistRequest) (*domain.Playlist, error)
	DeletePlaylist(ctx context.Context, playlistID, actorID string) error
	AddVideo(ctx context.Context, playlistID, videoID, actorID string) (*domain.Playlist, error)
	RemoveVideo(ctx context.Context, playlistID, videoID, actorID string) (*domain.Playlist, error)
}

// CategorySvcFacade defines category operations.
type CategorySvcFacade interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, req dto.CategoryRequest) (*domain.Category, error)
	RemoveCategory(ctx context.Context, req dto.CategoryRequest) error
	RenameCategory(ctx context.Context, req dto.RenameCategoryRequest) (*domain.Category, error)
}

// DashboardSvcFacade defines the channel owner's dashboard reads.
type DashboardSvcFacade interface {
	GetChannelStats(ctx context.Context, userID string) (*domain.ChannelStats, error)
	ListChannelVideos(ctx context.Context, userID string, page domain.PageRequest) (domain.Page[domain.VideoStats], error)
	GetChannelVideo(ctx context.Context, videoID, actorID string) (*domain.VideoStats, error)
}
