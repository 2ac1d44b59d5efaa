package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/videotube/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
	FindUserByIDFn              func(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsernameOrEmailFn func(ctx context.Context, username, email string) (*domain.User, error)
	SaveUserFn                  func(ctx context.Context, user domain.User) error
}

func userOrNil(v any) *domain.User {
	if v == nil {
		return nil
	}
	return v.(*domain.User)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if m.FindUserByIDFn != nil {
		return m.FindUserByIDFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error) {
	if m.FindUserByUsernameOrEmailFn != nil {
		return m.FindUserByUsernameOrEmailFn(ctx, username, email)
	}
	args := m.Called(ctx, username, email)
	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *MockUserRepository) FindChannelProfile(ctx context.Context, username, viewerID string) (*domain.ChannelProfile, error) {
	args := m.Called(ctx, username, viewerID)
	var p *domain.ChannelProfile
	if args.Get(0) != nil {
		p = args.Get(0).(*domain.ChannelProfile)
	}
	return p, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	if m.SaveUserFn != nil {
		return m.SaveUserFn(ctx, user)
	}
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, userID, passwordHash string, updatedAt time.Time) error {
	args := m.Called(ctx, userID, passwordHash, updatedAt)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiresAt)
	return args.Error(0)
}

func (m *MockUserRepository) RotateRefreshToken(ctx context.Context, userID, currentHash, newHash string, expiresAt time.Time) error {
	args := m.Called(ctx, userID, currentHash, newHash, expiresAt)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Mock VideoRepository ---
type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) FindVideoByID(ctx context.Context, videoID string) (*domain.Video, error) {
	args := m.Called(ctx, videoID)
	var v *domain.Video
	if args.Get(0) != nil {
		v = args.Get(0).(*domain.Video)
	}
	return v, args.Error(1)
}

func (m *MockVideoRepository) ListVideos(ctx context.Context, filter domain.VideoFilter, page domain.PageRequest) (domain.Page[domain.Video], error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).(domain.Page[domain.Video]), args.Error(1)
}

func (m *MockVideoRepository) FindWatchHistory(ctx context.Context, userID string) ([]domain.Video, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Video), args.Error(1)
}

func (m *MockVideoRepository) FindLikedVideos(ctx context.Context, userID string) ([]domain.Video, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Video), args.Error(1)
}

func (m *MockVideoRepository) SaveVideo(ctx context.Context, video domain.Video) error {
	args := m.Called(ctx, video)
	return args.Error(0)
}

func (m *MockVideoRepository) UpdateVideo(ctx context.Context, video domain.Video) error {
	args := m.Called(ctx, video)
	return args.Error(0)
}

func (m *MockVideoRepository) DeleteVideo(ctx context.Context, videoID string) error {
	args := m.Called(ctx, videoID)
	return args.Error(0)
}

func (m *MockVideoRepository) RecordView(ctx context.Context, videoID, viewerID string, at time.Time) error {
	args := m.Called(ctx, videoID, viewerID, at)
	return args.Error(0)
}

// --- Mock CommentRepository ---
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) FindCommentByID(ctx context.Context, commentID string) (*domain.Comment, error) {
	args := m.Called(ctx, commentID)
	var c *domain.Comment
	if args.Get(0) != nil {
		c = args.Get(0).(*domain.Comment)
	}
	return c, args.Error(1)
}

func (m *MockCommentRepository) ListVideoComments(ctx context.Context, videoID string, page domain.PageRequest) (domain.Page[domain.Comment], error) {
	args := m.Called(ctx, videoID, page)
	return args.Get(0).(domain.Page[domain.Comment]), args.Error(1)
}

func (m *MockCommentRepository) SaveComment(ctx context.Context, comment domain.Comment) error {
	return m.Called(ctx, comment).Error(0)
}

func (m *MockCommentRepository) UpdateComment(ctx context.Context, comment domain.Comment) error {
	return m.Called(ctx, comment).Error(0)
}

func (m *MockCommentRepository) DeleteComment(ctx context.Context, commentID string) error {
	return m.Called(ctx, commentID).Error(0)
}

// --- Mock TweetRepository ---
type MockTweetRepository struct {
	mock.Mock
}

func (m *MockTweetRepository) FindTweetByID(ctx context.Context, tweetID string) (*domain.Tweet, error) {
	args := m.Called(ctx, tweetID)
	var t *domain.Tweet
	if args.Get(0) != nil {
		t = args.Get(0).(*domain.Tweet)
	}
	return t, args.Error(1)
}

func (m *MockTweetRepository) ListUserTweets(ctx context.Context, userID string) ([]domain.Tweet, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Tweet), args.Error(1)
}

func (m *MockTweetRepository) SaveTweet(ctx context.Context, tweet domain.Tweet) error {
	return m.Called(ctx, tweet).Error(0)
}

func (m *MockTweetRepository) UpdateTweet(ctx context.Context, tweet domain.Tweet) error {
	return m.Called(ctx, tweet).Error(0)
}

func (m *MockTweetRepository) DeleteTweet(ctx context.Context, tweetID string) error {
	return m.Called(ctx, tweetID).Error(0)
}

// --- Mock PlaylistRepository ---
type MockPlaylistRepository struct {
	mock.Mock
}

func playlistOrNil(v any) *domain.Playlist {
	if v == nil {
		return nil
	}
	return v.(*domain.Playlist)
}

func (m *MockPlaylistRepository) FindPlaylistByID(ctx context.Context, playlistID string) (*domain.Playlist, error) {
	args := m.Called(ctx, playlistID)
	return playlistOrNil(args.Get(0)), args.Error(1)
}

func (m *MockPlaylistRepository) FindPlaylistWithVideos(ctx context.Context, playlistID string) (*domain.Playlist, error) {
	args := m.Called(ctx, playlistID)
	return playlistOrNil(args.Get(0)), args.Error(1)
}

func (m *MockPlaylistRepository) ListUserPlaylists(ctx context.Context, ownerID string) ([]domain.Playlist, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) SavePlaylist(ctx context.Context, playlist domain.Playlist) error {
	return m.Called(ctx, playlist).Error(0)
}

func (m *MockPlaylistRepository) UpdatePlaylist(ctx context.Context, playlist domain.Playlist) error {
	return m.Called(ctx, playlist).Error(0)
}

func (m *MockPlaylistRepository) DeletePlaylist(ctx context.Context, playlistID string) error {
	return m.Called(ctx, playlistID).Error(0)
}

func (m *MockPlaylistRepository) AddVideo(ctx context.Context, playlistID, videoID string, at time.Time) error {
	return m.Called(ctx, playlistID, videoID, at).Error(0)
}

func (m *MockPlaylistRepository) RemoveVideo(ctx context.Context, playlistID, videoID string, at time.Time) error {
	return m.Called(ctx, playlistID, videoID, at).Error(0)
}

// --- Mock CategoryRepository ---
type MockCategoryRepository struct {
	mock.Mock
}

func categoryOrNil(v any) *domain.Category {
	if v == nil {
		return nil
	}
	return v.(*domain.Category)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	return categoryOrNil(args.Get(0)), args.Error(1)
}

func (m *MockCategoryRepository) FindCategoryByTitle(ctx context.Context, title string) (*domain.Category, error) {
	args := m.Called(ctx, title)
	return categoryOrNil(args.Get(0)), args.Error(1)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) RenameCategory(ctx context.Context, oldTitle, newTitle string) (*domain.Category, error) {
	args := m.Called(ctx, oldTitle, newTitle)
	return categoryOrNil(args.Get(0)), args.Error(1)
}

func (m *MockCategoryRepository) DeleteCategoryByTitle(ctx context.Context, title string) error {
	return m.Called(ctx, title).Error(0)
}

// --- Mock LikeRepository ---
type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) ToggleLike(ctx context.Context, target domain.LikeTarget, targetID, userID string) (bool, error) {
	args := m.Called(ctx, target, targetID, userID)
	return args.Bool(0), args.Error(1)
}

// --- Mock SubscriptionRepository ---
type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) ToggleSubscription(ctx context.Context, subscriberID, channelID string) (bool, error) {
	args := m.Called(ctx, subscriberID, channelID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSubscriptionRepository) ListSubscribers(ctx context.Context, channelID string) ([]domain.Subscription, error) {
	args := m.Called(ctx, channelID)
	return args.Get(0).([]domain.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) ListSubscribedChannels(ctx context.Context, subscriberID string) ([]domain.Subscription, error) {
	args := m.Called(ctx, subscriberID)
	return args.Get(0).([]domain.Subscription), args.Error(1)
}

// --- Mock MediaStore ---
type MockMediaStore struct {
	mock.Mock
}

func (m *MockMediaStore) Upload(ctx context.Context, localPath string, kind domain.AssetKind) (*domain.UploadedAsset, error) {
	args := m.Called(ctx, localPath, kind)
	var a *domain.UploadedAsset
	if args.Get(0) != nil {
		a = args.Get(0).(*domain.UploadedAsset)
	}
	return a, args.Error(1)
}

func (m *MockMediaStore) DeleteByURL(ctx context.Context, url string, kind domain.AssetKind) error {
	return m.Called(ctx, url, kind).Error(0)
}

// --- Mock DescriptionGenerator ---
type MockDescriptionGenerator struct {
	mock.Mock
}

func (m *MockDescriptionGenerator) GenerateDescription(ctx context.Context, title string) (string, error) {
	args := m.Called(ctx, title)
	return args.String(0), args.Error(1)
}

// --- Mock DashboardRepository ---
type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) GetChannelStats(ctx context.Context, channelID string) (*domain.ChannelStats, error) {
	args := m.Called(ctx, channelID)
	var s *domain.ChannelStats
	if args.Get(0) != nil {
		s = args.Get(0).(*domain.ChannelStats)
	}
	return s, args.Error(1)
}

func (m *MockDashboardRepository) ListChannelVideos(ctx context.Context, channelID string, page domain.PageRequest) (domain.Page[domain.VideoStats], error) {
	args := m.Called(ctx, channelID, page)
	return args.Get(0).(domain.Page[domain.VideoStats]), args.Error(1)
}

func (m *MockDashboardRepository) GetVideoStats(ctx context.Context, videoID string) (*domain.VideoStats, error) {
	args := m.Called(ctx, videoID)
	var s *domain.VideoStats
	if args.Get(0) != nil {
		s = args.Get(0).(*domain.VideoStats)
	}
	return s, args.Error(1)
}
