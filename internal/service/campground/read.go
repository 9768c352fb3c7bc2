package campground

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/yelpcamp/internal/domain"
)

// List returns all campgrounds, or those whose name contains input.Search.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Campground, error) {
	storeCtx, cancel := s.withStoreTimeout(ctx)
	defer cancel()

	list, err := s.campgrounds.Find(storeCtx, domain.CampgroundFilter{
		NameContains: domain.SearchTerm(input.Search),
	})
	if err != nil {
		return nil, fmt.Errorf("list campgrounds: %w", err)
	}
	return list, nil
}

// Show returns a campground with its comments populated.
func (s *Service) Show(ctx context.Context, id uuid.UUID) (*domain.Campground, error) {
	cg, err := s.findByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find campground: %w", err)
	}

	storeCtx, cancel := s.withStoreTimeout(ctx)
	defer cancel()

	if err := s.campgrounds.Populate(storeCtx, cg); err != nil {
		return nil, fmt.Errorf("populate comments: %w", err)
	}
	return cg, nil
}

func (s *Service) findByID(ctx context.Context, id uuid.UUID) (*domain.Campground, error) {
	storeCtx, cancel := s.withStoreTimeout(ctx)
	defer cancel()
	return s.campgrounds.FindByID(storeCtx, id)
}

// Edit returns a campground the current actor owns, for the edit form.
func (s *Service) Edit(ctx context.Context, id uuid.UUID) (*domain.Campground, error) {
	cg, _, err := s.requireOwnership(ctx, id)
	if err != nil {
		return nil, err
	}
	return cg, nil
}

// AuthorizeNew checks the current actor may open the new-campground form.
func (s *Service) AuthorizeNew(ctx context.Context) error {
	_, err := requireAuthenticated(ctx)
	return err
}
