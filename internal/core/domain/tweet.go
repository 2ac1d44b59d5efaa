package domain

// Tweet is a short text post on a user's channel.
type Tweet struct {
	TweetID    string
	OwnerID    string
	Content    string
	Owner      *OwnerProfile
	LikesCount int64
	Timestamps
}
