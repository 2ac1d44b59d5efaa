package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/videotube/internal/core/domain"
	portsrepo "github.com/SscSPs/videotube/internal/core/ports/repositories"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSubscriptionRepository struct {
	BaseRepository
}

func newPgxSubscriptionRepository(db *pgxpool.Pool) *PgxSubscriptionRepository {
	return &PgxSubscriptionRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.SubscriptionRepositoryFacade = (*PgxSubscriptionRepository)(nil)

func (r *PgxSubscriptionRepository) ToggleSubscription(ctx context.Context, subscriberID, channelID string) (bool, error) {
	cmdTag, err := r.Pool.Exec(ctx,
		`DELETE FROM subscriptions WHERE subscriber_id = $1 AND channel_id = $2;`,
		subscriberID, channelID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to remove subscription: %w", err)
	}
	if cmdTag.RowsAffected() > 0 {
		return false, nil
	}

	_, err = r.Pool.Exec(ctx, `
		INSERT INTO subscriptions (subscription_id, subscriber_id, channel_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (subscriber_id, channel_id) DO NOTHING;
	`, uuid.NewString(), subscriberID, channelID, time.Now().UTC())
	if err != nil {
		return false, translateWriteError(err, "add subscription")
	}
	return true, nil
}

// listSubscriptions joins the profile of the user on the opposite side of profileColumn.
func (r *PgxSubscriptionRepository) listSubscriptions(ctx context.Context, filterColumn, profileColumn, id string) ([]domain.Subscription, error) {
	query := fmt.Sprintf(`
		SELECT s.subscription_id, s.subscriber_id, s.channel_id, s.created_at,
			u.user_id, u.username, u.full_name, u.avatar
		FROM subscriptions s
		JOIN users u ON u.user_id = s.%s
		WHERE s.%s = $1
		ORDER BY s.created_at DESC;
	`, profileColumn, filterColumn)

	rows, err := r.Pool.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	defer rows.Close()

	subs := []domain.Subscription{}
	for rows.Next() {
		var s domain.Subscription
		if err := rows.Scan(
			&s.SubscriptionID,
			&s.SubscriberID,
			&s.ChannelID,
			&s.CreatedAt,
			&s.Profile.UserID,
			&s.Profile.Username,
			&s.Profile.FullName,
			&s.Profile.Avatar,
		); err != nil {
			return nil, fmt.Errorf("failed to scan subscription row: %w", err)
		}
		subs = append(subs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subscription rows: %w", err)
	}
	return subs, nil
}

func (r *PgxSubscriptionRepository) ListSubscribers(ctx context.Context, channelID string) ([]domain.Subscription, error) {
	return r.listSubscriptions(ctx, "channel_id", "subscriber_id", channelID)
}

func (r *PgxSubscriptionRepository) ListSubscribedChannels(ctx context.Context, subscriberID string) ([]domain.Subscription, error) {
	return r.listSubscriptions(ctx, "subscriber_id", "channel_id", subscriberID)
}
