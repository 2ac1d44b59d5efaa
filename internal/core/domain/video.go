package domain

import "github.com/shopspring/decimal"

// Video is an uploaded video and its metadata.
type Video struct {
	VideoID     string
	OwnerID     string
	CategoryID  *string
	Title       string
	Description string
	VideoFile   string
	Thumbnail   string
	Duration    decimal.Decimal
	Views       int64
	IsPublished bool
	Owner       *OwnerProfile
	Category    *string
	Timestamps
}

// PageCursor returns the keyset position of the video.
func (v Video) PageCursor() Cursor { return Cursor{CreatedAt: v.CreatedAt, ID: v.VideoID} }

// VisibleTo reports whether viewerID may see the video.
func (v Video) VisibleTo(viewerID string) bool {
	return v.IsPublished || (viewerID != "" && viewerID == v.OwnerID)
}

// VideoFilter narrows a video listing.
type VideoFilter struct {
	Query         string
	OwnerID       string
	OnlyPublished bool
}

// VideoStats is a video with its engagement counters, used on the owner dashboard.
type VideoStats struct {
	Video
	LikesCount    int64
	CommentsCount int64
}

// ChannelStats summarizes a channel for its owner.
type ChannelStats struct {
	TotalVideos      int64
	TotalViews       int64
	TotalLikes       int64
	TotalSubscribers int64
	TotalTweets      int64
	TotalComments    int64
}
