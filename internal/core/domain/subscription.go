package domain

import "time"

// Subscription links a subscriber to a channel (both users).
type Subscription struct {
	SubscriptionID string
	SubscriberID   string
	ChannelID      string
	Profile        OwnerProfile
	CreatedAt      time.Time
}
