package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/videotube/internal/apperrors"
	"github.com/SscSPs/videotube/internal/core/domain"
	portsrepo "github.com/SscSPs/videotube/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/videotube/internal/core/ports/services"
	"github.com/google/uuid"
)

// subscriptionService implements the SubscriptionSvcFacade interface
type subscriptionService struct {
	BaseService
	subscriptionRepo portsrepo.SubscriptionRepositoryFacade
	userRepo         portsrepo.UserReader
}

// NewSubscriptionService creates a new subscription service.
func NewSubscriptionService(subscriptionRepo portsrepo.SubscriptionRepositoryFacade, userRepo portsrepo.UserReader) portssvc.SubscriptionSvcFacade {
	return &subscriptionService{subscriptionRepo: subscriptionRepo, userRepo: userRepo}
}

var _ portssvc.SubscriptionSvcFacade = (*subscriptionService)(nil)

func (s *subscriptionService) requireUser(ctx context.Context, userID, notFoundMsg string) error {
	if _, err := uuid.Parse(userID); err != nil {
		return apperrors.Validation("Invalid channel id")
	}
	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		return s.wrapRepoError(ctx, err, notFoundMsg, "Failed to load user", slog.String("user_id", userID))
	}
	return nil
}

func (s *subscriptionService) ToggleSubscription(ctx context.Context, channelID, subscriberID string) (bool, error) {
	if channelID == subscriberID {
		return false, apperrors.Validation("You cannot subscribe to your own channel")
	}
	if err := s.requireUser(ctx, channelID, "Channel not found"); err != nil {
		return false, err
	}

	subscribed, err := s.subscriptionRepo.ToggleSubscription(ctx, subscriberID, channelID)
	if err != nil {
		return false, s.wrapRepoError(ctx, err, "Channel not found", "Failed to toggle subscription",
			slog.String("channel_id", channelID))
	}
	return subscribed, nil
}

func (s *subscriptionService) ListSubscribers(ctx context.Context, channelID string) ([]domain.Subscription, error) {
	if err := s.requireUser(ctx, channelID, "Channel not found"); err != nil {
		return nil, err
	}
	subs, err := s.subscriptionRepo.ListSubscribers(ctx, channelID)
	if err != nil {
		return nil, s.wrapRepoError(ctx, err, "", "Failed to list subscribers", slog.String("channel_id", channelID))
	}
	return subs, nil
}

func (s *subscriptionService) ListSubscribedChannels(ctx context.Context, subscriberID string) ([]domain.Subscription, error) {
	if err := s.requireUser(ctx, subscriberID, "User not found"); err != nil {
		return nil, err
	}
	subs, err := s.subscriptionRepo.ListSubscribedChannels(ctx, subscriberID)
	if err != nil {
		return nil, s.wrapRepoError(ctx, err, "", "Failed to list subscribed channels", slog.String("subscriber_id", subscriberID))
	}
	return subs, nil
}
