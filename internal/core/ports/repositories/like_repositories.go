package repositories

import (
	"context"

	"github.com/SscSPs/videotube/internal/core/domain"
)

// LikeRepositoryFacade defines persistence for likes.
type LikeRepositoryFacade interface {
	// ToggleLike removes the user's like on the target if present, otherwise adds it.
	// Returns true when the target is liked after the call.
	ToggleLike(ctx context.Context, target domain.LikeTarget, targetID, userID string) (bool, error)
}
