package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/videotube/internal/apperrors"
	"github.com/SscSPs/videotube/internal/core/domain"
	portsrepo "github.com/SscSPs/videotube/internal/core/ports/repositories"
	"github.com/SscSPs/videotube/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `user_id, username, email, full_name, avatar, cover_image, password_hash,
	refresh_token_hash, refresh_token_expires_at, created_at, updated_at`

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(db *pgxpool.Pool) *PgxUserRepository {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func toDomainUser(m models.User) *domain.User {
	u := &domain.User{
		UserID:       m.UserID,
		Username:     m.Username,
		Email:        m.Email,
		FullName:     m.FullName,
		Avatar:       m.Avatar,
		CoverImage:   m.CoverImage,
		PasswordHash: m.PasswordHash,
		Timestamps:   domain.Timestamps{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
	}
	if m.RefreshTokenHash.Valid {
		hash := m.RefreshTokenHash.String
		u.RefreshTokenHash = &hash
	}
	if m.RefreshTokenExpiresAt.Valid {
		at := m.RefreshTokenExpiresAt.Time
		u.RefreshTokenExpiresAt = &at
	}
	return u
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Username,
		&m.Email,
		&m.FullName,
		&m.Avatar,
		&m.CoverImage,
		&m.PasswordHash,
		&m.RefreshTokenHash,
		&m.RefreshTokenExpiresAt,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return toDomainUser(m), nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `
		INSERT INTO users (user_id, username, email, full_name, avatar, cover_image, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		user.UserID,
		user.Username,
		user.Email,
		user.FullName,
		user.Avatar,
		user.CoverImage,
		user.PasswordHash,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		return translateWriteError(err, "save user")
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`
	user, err := scanUser(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		return nil, translateReadError(err, fmt.Sprintf("find user by ID %s", userID))
	}
	return user, nil
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1);`
	user, err := scanUser(r.Pool.QueryRow(ctx, query, email))
	if err != nil {
		return nil, translateReadError(err, "find user by email")
	}
	return user, nil
}

func (r *PgxUserRepository) FindUserByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE ($1::text <> '' AND LOWER(username) = LOWER($1))
		   OR ($2::text <> '' AND LOWER(email) = LOWER($2))
		ORDER BY created_at
		LIMIT 1;
	`
	user, err := scanUser(r.Pool.QueryRow(ctx, query, username, email))
	if err != nil {
		return nil, translateReadError(err, "find user by username or email")
	}
	return user, nil
}

func (r *PgxUserRepository) FindChannelProfile(ctx context.Context, username, viewerID string) (*domain.ChannelProfile, error) {
	query := `
		SELECT u.user_id, u.username, u.full_name, u.email, u.avatar, u.cover_image,
			(SELECT COUNT(*) FROM subscriptions s WHERE s.channel_id = u.user_id),
			(SELECT COUNT(*) FROM subscriptions s WHERE s.subscriber_id = u.user_id),
			EXISTS (SELECT 1 FROM subscriptions s WHERE s.channel_id = u.user_id AND s.subscriber_id = $2::uuid)
		FROM users u
		WHERE LOWER(u.username) = LOWER($1);
	`
	var p domain.ChannelProfile
	err := r.Pool.QueryRow(ctx, query, username, nullableID(viewerID)).Scan(
		&p.UserID,
		&p.Username,
		&p.FullName,
		&p.Email,
		&p.Avatar,
		&p.CoverImage,
		&p.SubscribersCount,
		&p.ChannelsSubscribedCount,
		&p.IsSubscribed,
	)
	if err != nil {
		return nil, translateReadError(err, "find channel profile")
	}
	return &p, nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	query := `
		UPDATE users
		SET full_name = $2, email = $3, avatar = $4, cover_image = $5, updated_at = $6
		WHERE user_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		user.UserID,
		user.FullName,
		user.Email,
		user.Avatar,
		user.CoverImage,
		user.UpdatedAt,
	)
	if err != nil {
		return translateWriteError(err, "update user")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) UpdatePassword(ctx context.Context, userID, passwordHash string, updatedAt time.Time) error {
	query := `UPDATE users SET password_hash = $2, updated_at = $3 WHERE user_id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, userID, passwordHash, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to update password for user %s: %w", userID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) UpdateRefreshToken(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error {
	query := `UPDATE users SET refresh_token_hash = $2, refresh_token_expires_at = $3 WHERE user_id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, userID, tokenHash, expiresAt)
	if err != nil {
		return fmt.Errorf("failed to update refresh token for user %s: %w", userID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) RotateRefreshToken(ctx context.Context, userID, currentHash, newHash string, expiresAt time.Time) error {
	query := `
		UPDATE users
		SET refresh_token_hash = $3, refresh_token_expires_at = $4
		WHERE user_id = $1 AND refresh_token_hash = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, userID, currentHash, newHash, expiresAt)
	if err != nil {
		return fmt.Errorf("failed to rotate refresh token for user %s: %w", userID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	query := `UPDATE users SET refresh_token_hash = NULL, refresh_token_expires_at = NULL WHERE user_id = $1;`
	if _, err := r.Pool.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to clear refresh token for user %s: %w", userID, err)
	}
	return nil
}
