package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/SscSPs/videotube/internal/apperrors"
	portssvc "github.com/SscSPs/videotube/internal/core/ports/services"
)

// descriptionService implements the DescriptionSvcFacade interface
type descriptionService struct {
	BaseService
	generator portssvc.DescriptionGenerator
}

// NewDescriptionService creates a description service. generator may be nil when no model is configured.
func NewDescriptionService(generator portssvc.DescriptionGenerator) portssvc.DescriptionSvcFacade {
	return &descriptionService{generator: generator}
}

func (s *descriptionService) GenerateDescription(ctx context.Context, title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", apperrors.Validation("Video title is required")
	}
	if s.generator == nil {
		return "", apperrors.Internal("Description generation is not configured", errors.New("no description generator"))
	}

	description, err := s.generator.GenerateDescription(ctx, title)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate description", slog.String("title", title))
		return "", apperrors.Internal("Failed to generate description", err)
	}
	// Models like to bold their output with markdown.
	return strings.TrimSpace(strings.ReplaceAll(description, "**", "")), nil
}
