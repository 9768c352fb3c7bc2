package campground

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/yelpcamp/internal/domain"
	"github.com/heartmarshall/yelpcamp/pkg/ctxutil"
)

// requireAuthenticated returns the request's actor or domain.ErrUnauthorized.
func requireAuthenticated(ctx context.Context) (ctxutil.Actor, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return ctxutil.Actor{}, domain.ErrUnauthorized
	}
	return actor, nil
}

// requireOwnership fetches the campground and checks the actor authored it.
// The fetched record is returned for reuse.
func (s *Service) requireOwnership(ctx context.Context, id uuid.UUID) (*domain.Campground, ctxutil.Actor, error) {
	actor, err := requireAuthenticated(ctx)
	if err != nil {
		return nil, ctxutil.Actor{}, err
	}

	storeCtx, cancel := s.withStoreTimeout(ctx)
	defer cancel()

	cg, err := s.campgrounds.FindByID(storeCtx, id)
	if err != nil {
		return nil, actor, fmt.Errorf("find campground: %w", err)
	}

	if !cg.OwnedBy(actor.ID) {
		return nil, actor, fmt.Errorf("campground %s: %w", id, domain.ErrForbidden)
	}

	return cg, actor, nil
}
