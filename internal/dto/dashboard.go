package dto

import "github.com/SscSPs/videotube/internal/core/domain"

// ChannelStatsResponse summarizes a channel for its owner.
type ChannelStatsResponse struct {
	TotalVideos      int64 `json:"totalVideos"`
	TotalViews       int64 `json:"totalViews"`
	TotalLikes       int64 `json:"totalLikes"`
	TotalSubscribers int64 `json:"totalSubscribers"`
	TotalTweets      int64 `json:"totalTweets"`
	TotalComments    int64 `json:"totalComments"`
}

// VideoStatsResponse is a video plus its engagement counters.
type VideoStatsResponse struct {
	VideoResponse
	LikesCount    int64 `json:"likesCount"`
	CommentsCount int64 `json:"commentsCount"`
}

// ToChannelStatsResponse converts domain.ChannelStats.
func ToChannelStatsResponse(s *domain.ChannelStats) ChannelStatsResponse {
	return ChannelStatsResponse{
		TotalVideos:      s.TotalVideos,
		TotalViews:       s.TotalViews,
		TotalLikes:       s.TotalLikes,
		TotalSubscribers: s.TotalSubscribers,
		TotalTweets:      s.TotalTweets,
		TotalComments:    s.TotalComments,
	}
}

// ToVideoStatsResponse converts domain.VideoStats.
func ToVideoStatsResponse(v domain.VideoStats) VideoStatsResponse {
	return VideoStatsResponse{
		VideoResponse: ToVideoResponse(v.Video),
		LikesCount:    v.LikesCount,
		CommentsCount: v.CommentsCount,
	}
}
