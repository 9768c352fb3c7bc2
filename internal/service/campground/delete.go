package campground

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/yelpcamp/internal/domain"
)

// Delete removes a campground, then best-effort removes its comments.
// Comment cleanup failures are logged and swallowed; the parent is gone
// regardless and some comments may remain orphaned.
//
// Unless Options.RequireOwnerOnDelete is set, no guard runs: any caller,
// including an anonymous one, may delete any campground.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (*domain.Campground, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	if s.opts.RequireOwnerOnDelete {
		if _, _, err := s.requireOwnership(ctx, id); err != nil {
			return nil, err
		}
	}

	storeCtx, cancel := s.withStoreTimeout(ctx)
	removed, err := s.campgrounds.DeleteByID(storeCtx, id)
	cancel()
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("delete campground: %w", err)
		}
		return nil, fmt.Errorf("delete campground: %w: %w", domain.ErrPersist, err)
	}

	if len(removed.CommentIDs) > 0 {
		storeCtx, cancel := s.withStoreTimeout(ctx)
		n, err := s.comments.DeleteMany(storeCtx, removed.CommentIDs)
		cancel()
		if err != nil {
			s.log.WarnContext(ctx, "comment cleanup failed",
				slog.String("campground_id", id.String()),
				slog.Int("comment_count", len(removed.CommentIDs)),
				slog.String("error", err.Error()),
			)
		} else if n < len(removed.CommentIDs) {
			s.log.WarnContext(ctx, "comment cleanup incomplete",
				slog.String("campground_id", id.String()),
				slog.Int("expected", len(removed.CommentIDs)),
				slog.Int("deleted", n),
			)
		}
	}

	s.log.InfoContext(ctx, "campground deleted",
		slog.String("campground_id", id.String()),
		slog.String("name", removed.Name),
	)

	return removed, nil
}
