package comment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/yelpcamp/internal/domain"
	"github.com/heartmarshall/yelpcamp/pkg/ctxutil"
)

// New returns the campground a new comment would be attached to.
func (s *Service) New(ctx context.Context, campgroundID uuid.UUID) (*domain.Campground, error) {
	if _, ok := ctxutil.ActorFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	return s.findCampground(ctx, campgroundID)
}

// Create writes a comment and appends its id to the campground's list.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Comment, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.findCampground(ctx, input.CampgroundID); err != nil {
		return nil, err
	}

	txCtx, cancel := s.withStoreTimeout(ctx)
	defer cancel()

	var created *domain.Comment
	err := s.tx.RunInTx(txCtx, func(ctx context.Context) error {
		var err error
		created, err = s.comments.Create(ctx, &domain.Comment{
			Text:   strings.TrimSpace(input.Text),
			Author: domain.AuthorRef{ID: actor.ID, Username: actor.Username},
		})
		if err != nil {
			return fmt.Errorf("create comment: %w", err)
		}
		if err := s.campgrounds.AppendComment(ctx, input.CampgroundID, created.ID); err != nil {
			return fmt.Errorf("append comment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "comment created",
		slog.String("user_id", actor.ID.String()),
		slog.String("campground_id", input.CampgroundID.String()),
		slog.String("comment_id", created.ID.String()),
	)

	return created, nil
}
