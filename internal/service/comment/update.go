package comment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/yelpcamp/internal/domain"
)

// Edit returns a comment the current actor wrote, for the edit form.
func (s *Service) Edit(ctx context.Context, campgroundID, commentID uuid.UUID) (*domain.Comment, error) {
	c, _, err := s.requireOwnership(ctx, campgroundID, commentID)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Update replaces the text of a comment the current actor wrote.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Comment, error) {
	_, actor, err := s.requireOwnership(ctx, input.CampgroundID, input.CommentID)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	storeCtx, cancel := s.withStoreTimeout(ctx)
	defer cancel()

	updated, err := s.comments.UpdateByID(storeCtx, input.CommentID, strings.TrimSpace(input.Text))
	if err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}

	s.log.InfoContext(ctx, "comment updated",
		slog.String("user_id", actor.ID.String()),
		slog.String("comment_id", updated.ID.String()),
	)

	return updated, nil
}
