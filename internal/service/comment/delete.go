package comment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/yelpcamp/internal/domain"
)

// Delete removes a comment the current actor wrote and drops its id from
// the campground's list.
func (s *Service) Delete(ctx context.Context, campgroundID, commentID uuid.UUID) error {
	_, actor, err := s.requireOwnership(ctx, campgroundID, commentID)
	if err != nil {
		return err
	}

	txCtx, cancel := s.withStoreTimeout(ctx)
	defer cancel()

	err = s.tx.RunInTx(txCtx, func(ctx context.Context) error {
		if _, err := s.comments.DeleteByID(ctx, commentID); err != nil {
			return fmt.Errorf("delete comment: %w", err)
		}
		// The id may already be gone from the list; the comment itself is what matters.
		if err := s.campgrounds.RemoveComment(ctx, campgroundID, commentID); err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("remove comment: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "comment deleted",
		slog.String("user_id", actor.ID.String()),
		slog.String("campground_id", campgroundID.String()),
		slog.String("comment_id", commentID.String()),
	)

	return nil
}
