package services

// ServiceContainer holds instances of all the application services.
// Handlers reach every service through it.
type ServiceContainer struct {
	User         UserSvcFacade
	Token        TokenSvcFacade
	GoogleOAuth  GoogleOAuthHandlerSvcFacade
	Video        VideoSvcFacade
	Description  DescriptionSvcFacade
	Comment      CommentSvcFacade
	Tweet        TweetSvcFacade
	Like         LikeSvcFacade
	Subscription SubscriptionSvcFacade
	Playlist     PlaylistSvcFacade
	Category     CategorySvcFacade
	Dashboard    DashboardSvcFacade
}
