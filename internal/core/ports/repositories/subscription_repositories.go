package repositories

import (
	"context"

	"github.com/SscSPs/videotube/internal/core/domain"
)

// SubscriptionRepositoryFacade defines persistence for channel subscriptions.
type SubscriptionRepositoryFacade interface {
	// ToggleSubscription removes the subscription if present, otherwise creates it.
	// Returns true when subscriberID is subscribed after the call.
	ToggleSubscription(ctx context.Context, subscriberID, channelID string) (bool, error)
	ListSubscribers(ctx context.Context, channelID string) ([]domain.Subscription, error)
	ListSubscribedChannels(ctx context.Context, subscriberID string) ([]domain.Subscription, error)
}
