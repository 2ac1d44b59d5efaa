package services

import (
	portsrepo "github.com/SscSPs/videotube/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/videotube/internal/core/ports/services"
	"github.com/SscSPs/videotube/internal/platform/config"
)

type containerDeps struct {
	media     portssvc.MediaStore
	describer portssvc.DescriptionGenerator
}

// ContainerOption is a functional option for wiring external collaborators into the container
type ContainerOption func(*containerDeps)

// WithMediaStore sets the object storage used for avatars, covers, thumbnails and videos
func WithMediaStore(media portssvc.MediaStore) ContainerOption {
	return func(d *containerDeps) {
		d.media = media
	}
}

// WithDescriptionGenerator sets the language model client used for video descriptions
func WithDescriptionGenerator(describer portssvc.DescriptionGenerator) ContainerOption {
	return func(d *containerDeps) {
		d.describer = describer
	}
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, options ...ContainerOption) *portssvc.ServiceContainer {
	deps := &containerDeps{}
	for _, option := range options {
		option(deps)
	}

	container := &portssvc.ServiceContainer{}

	// User service first since token issuing depends on it
	container.User = NewUserService(repos.UserRepo, deps.media)
	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuth = NewGoogleOAuthHandlerService(cfg)

	container.Video = NewVideoService(repos.VideoRepo, repos.CategoryRepo, deps.media)
	container.Description = NewDescriptionService(deps.describer)
	container.Comment = NewCommentService(repos.CommentRepo, repos.VideoRepo)
	container.Tweet = NewTweetService(repos.TweetRepo, repos.UserRepo)
	container.Like = NewLikeService(repos.LikeRepo, repos.VideoRepo, repos.CommentRepo, repos.TweetRepo)
	container.Subscription = NewSubscriptionService(repos.SubscriptionRepo, repos.UserRepo)
	container.Playlist = NewPlaylistService(repos.PlaylistRepo, repos.VideoRepo)
	container.Category = NewCategoryService(repos.CategoryRepo)
	container.Dashboard = NewDashboardService(repos.DashboardRepo)

	return container
}
