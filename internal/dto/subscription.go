package dto

import (
	"time"

	"github.com/SscSPs/videotube/internal/core/domain"
)

// SubscribeChannelRequest names the channel to toggle a subscription on.
type SubscribeChannelRequest struct {
	ChannelID string `json:"channelId" binding:"required,uuid"`
}

// SubscriptionToggleResponse reports the subscription state after a toggle.
type SubscriptionToggleResponse struct {
	Subscribed bool `json:"subscribed"`
}

// SubscriptionResponse lists one side of a subscription with its profile.
type SubscriptionResponse struct {
	SubscriptionID string              `json:"_id"`
	SubscriberID   string              `json:"subscriber"`
	ChannelID      string              `json:"channel"`
	Profile        domain.OwnerProfile `json:"profile"`
	CreatedAt      time.Time           `json:"createdAt"`
}

// ToSubscriptionResponses converts a slice of subscriptions.
func ToSubscriptionResponses(subs []domain.Subscription) []SubscriptionResponse {
	out := make([]SubscriptionResponse, 0, len(subs))
	for _, s := range subs {
		out = append(out, SubscriptionResponse{
			SubscriptionID: s.SubscriptionID,
			SubscriberID:   s.SubscriberID,
			ChannelID:      s.ChannelID,
			Profile:        s.Profile,
			CreatedAt:      s.CreatedAt,
		})
	}
	return out
}
