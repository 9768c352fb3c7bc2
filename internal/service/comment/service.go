// Package comment implements adding, editing and removing campground comments.
package comment

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/yelpcamp/internal/domain"
	"github.com/heartmarshall/yelpcamp/pkg/ctxutil"
)

type campgroundRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Campground, error)
	AppendComment(ctx context.Context, campgroundID, commentID uuid.UUID) error
	RemoveComment(ctx context.Context, campgroundID, commentID uuid.UUID) error
}

type commentRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	UpdateByID(ctx context.Context, id uuid.UUID, text string) (*domain.Comment, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides comment operations.
type Service struct {
	campgrounds  campgroundRepo
	comments     commentRepo
	tx           txManager
	storeTimeout time.Duration
	log          *slog.Logger
}

// NewService creates a new Comment service. storeTimeout bounds each store
// call and each transaction; a non-positive value means 5s.
func NewService(
	log *slog.Logger,
	campgrounds campgroundRepo,
	comments commentRepo,
	tx txManager,
	storeTimeout time.Duration,
) *Service {
	if storeTimeout <= 0 {
		storeTimeout = 5 * time.Second
	}
	return &Service{
		campgrounds:  campgrounds,
		comments:     comments,
		tx:           tx,
		storeTimeout: storeTimeout,
		log:          log.With("service", "comment"),
	}
}

func (s *Service) withStoreTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.storeTimeout)
}

func (s *Service) findCampground(ctx context.Context, id uuid.UUID) (*domain.Campground, error) {
	storeCtx, cancel := s.withStoreTimeout(ctx)
	defer cancel()

	cg, err := s.campgrounds.FindByID(storeCtx, id)
	if err != nil {
		return nil, fmt.Errorf("find campground: %w", err)
	}
	return cg, nil
}

// requireOwnership loads the parent campground and the comment, and checks
// the current actor wrote the comment. A comment not listed on that
// campground is reported as not found.
func (s *Service) requireOwnership(ctx context.Context, campgroundID, commentID uuid.UUID) (*domain.Comment, ctxutil.Actor, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, ctxutil.Actor{}, domain.ErrUnauthorized
	}

	cg, err := s.findCampground(ctx, campgroundID)
	if err != nil {
		return nil, actor, err
	}
	if !slices.Contains(cg.CommentIDs, commentID) {
		return nil, actor, fmt.Errorf("comment %s on campground %s: %w", commentID, campgroundID, domain.ErrNotFound)
	}

	storeCtx, cancel := s.withStoreTimeout(ctx)
	defer cancel()

	c, err := s.comments.FindByID(storeCtx, commentID)
	if err != nil {
		return nil, actor, fmt.Errorf("find comment: %w", err)
	}
	if !c.OwnedBy(actor.ID) {
		return nil, actor, fmt.Errorf("comment %s: %w", commentID, domain.ErrForbidden)
	}

	return c, actor, nil
}
