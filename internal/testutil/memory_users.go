package testutil

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/videotube/internal/apperrors"
	"github.com/SscSPs/videotube/internal/core/domain"
	portsrepo "github.com/SscSPs/videotube/internal/core/ports/repositories"
)

// MemoryUserRepository is an in-process UserRepositoryFacade with the same uniqueness
// and compare-and-swap semantics as the Postgres implementation.
type MemoryUserRepository struct {
	mu    sync.Mutex
	users map[string]domain.User
}

var _ portsrepo.UserRepositoryFacade = (*MemoryUserRepository)(nil)

// NewMemoryUserRepository returns an empty repository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[string]domain.User)}
}

func (r *MemoryUserRepository) get(userID string) (*domain.User, error) {
	u, ok := r.users[userID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &u, nil
}

func (r *MemoryUserRepository) FindUserByID(_ context.Context, userID string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.get(userID)
}

func (r *MemoryUserRepository) FindUserByUsernameOrEmail(_ context.Context, username, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if (username != "" && strings.EqualFold(u.Username, username)) || (email != "" && strings.EqualFold(u.Email, email)) {
			return &u, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *MemoryUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.FindUserByUsernameOrEmail(ctx, "", email)
}

func (r *MemoryUserRepository) FindChannelProfile(_ context.Context, username, _ string) (*domain.ChannelProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Username, username) {
			return &domain.ChannelProfile{
				UserID:     u.UserID,
				Username:   u.Username,
				FullName:   u.FullName,
				Email:      u.Email,
				Avatar:     u.Avatar,
				CoverImage: u.CoverImage,
			}, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *MemoryUserRepository) taken(user domain.User) bool {
	for id, u := range r.users {
		if id == user.UserID {
			continue
		}
		if strings.EqualFold(u.Username, user.Username) || strings.EqualFold(u.Email, user.Email) {
			return true
		}
	}
	return false
}

func (r *MemoryUserRepository) SaveUser(_ context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[user.UserID]; exists || r.taken(user) {
		return apperrors.ErrDuplicate
	}
	r.users[user.UserID] = user
	return nil
}

func (r *MemoryUserRepository) UpdateUser(_ context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, err := r.get(user.UserID)
	if err != nil {
		return err
	}
	if r.taken(user) {
		return apperrors.ErrDuplicate
	}
	stored.FullName = user.FullName
	stored.Email = user.Email
	stored.Avatar = user.Avatar
	stored.CoverImage = user.CoverImage
	stored.UpdatedAt = user.UpdatedAt
	r.users[user.UserID] = *stored
	return nil
}

func (r *MemoryUserRepository) UpdatePassword(_ context.Context, userID, passwordHash string, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, err := r.get(userID)
	if err != nil {
		return err
	}
	stored.PasswordHash = passwordHash
	stored.UpdatedAt = updatedAt
	r.users[userID] = *stored
	return nil
}

func (r *MemoryUserRepository) UpdateRefreshToken(_ context.Context, userID, tokenHash string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, err := r.get(userID)
	if err != nil {
		return err
	}
	stored.RefreshTokenHash = &tokenHash
	stored.RefreshTokenExpiresAt = &expiresAt
	r.users[userID] = *stored
	return nil
}

func (r *MemoryUserRepository) RotateRefreshToken(_ context.Context, userID, currentHash, newHash string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, err := r.get(userID)
	if err != nil {
		return err
	}
	if stored.RefreshTokenHash == nil || *stored.RefreshTokenHash != currentHash {
		return apperrors.ErrNotFound
	}
	stored.RefreshTokenHash = &newHash
	stored.RefreshTokenExpiresAt = &expiresAt
	r.users[userID] = *stored
	return nil
}

func (r *MemoryUserRepository) ClearRefreshToken(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if stored, ok := r.users[userID]; ok {
		stored.RefreshTokenHash = nil
		stored.RefreshTokenExpiresAt = nil
		r.users[userID] = stored
	}
	return nil
}
