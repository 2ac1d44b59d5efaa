package services

import (
	"context"

	"github.com/SscSPs/videotube/internal/core/domain"
)

// MediaStore relays local temp files to durable object storage.
type MediaStore interface {
	// Upload moves the file at localPath to storage and removes the local file whatever the outcome.
	Upload(ctx context.Context, localPath string, kind domain.AssetKind) (*domain.UploadedAsset, error)

	// DeleteByURL removes a previously uploaded asset.
	DeleteByURL(ctx context.Context, url string, kind domain.AssetKind) error
}

// DescriptionGenerator produces a description for a video title using a language model.
type DescriptionGenerator interface {
	GenerateDescription(ctx context.Context, title string) (string, error)
}
