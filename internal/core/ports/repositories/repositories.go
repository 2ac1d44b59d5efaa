package repositories

// RepositoryProvider holds all repository interfaces needed by services.
type RepositoryProvider struct {
	UserRepo         UserRepositoryFacade
	VideoRepo        VideoRepositoryFacade
	CommentRepo      CommentRepositoryFacade
	TweetRepo        TweetRepositoryFacade
	LikeRepo         LikeRepositoryFacade
	SubscriptionRepo SubscriptionRepositoryFacade
	PlaylistRepo     PlaylistRepositoryFacade
	CategoryRepo     CategoryRepositoryFacade
	DashboardRepo    DashboardRepositoryFacade
}
