// Package campground implements the campground use cases: listing, showing,
// and the guarded create/update/delete mutations.
package campground

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/yelpcamp/internal/domain"
)

type campgroundRepo interface {
	Find(ctx context.Context, filter domain.CampgroundFilter) ([]domain.Campground, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Campground, error)
	Create(ctx context.Context, c *domain.Campground) (*domain.Campground, error)
	UpdateByID(ctx context.Context, id uuid.UUID, f domain.CampgroundFields) (*domain.Campground, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (*domain.Campground, error)
	Populate(ctx context.Context, c *domain.Campground) error
}

type commentRepo interface {
	DeleteMany(ctx context.Context, ids []uuid.UUID) (int, error)
}

type geocoder interface {
	Geocode(ctx context.Context, address string) (*domain.GeocodedLocation, error)
}

type imageUploader interface {
	CheckName(name string) error
	Upload(ctx context.Context, img domain.ImageFile) (string, error)
}

// Options tunes the service.
type Options struct {
	// RequireOwnerOnDelete adds an ownership check to Delete.
	RequireOwnerOnDelete bool
	// StoreTimeout bounds each record store call.
	StoreTimeout time.Duration
}

// Service provides campground operations.
type Service struct {
	campgrounds campgroundRepo
	comments    commentRepo
	geocoder    geocoder
	images      imageUploader
	metrics     *Metrics
	opts        Options
	log         *slog.Logger
}

// NewService creates a new Campground service.
func NewService(
	log *slog.Logger,
	campgrounds campgroundRepo,
	comments commentRepo,
	geocoder geocoder,
	images imageUploader,
	metrics *Metrics,
	opts Options,
) *Service {
	if opts.StoreTimeout <= 0 {
		opts.StoreTimeout = 5 * time.Second
	}
	return &Service{
		campgrounds: campgrounds,
		comments:    comments,
		geocoder:    geocoder,
		images:      images,
		metrics:     metrics,
		opts:        opts,
		log:         log.With("service", "campground"),
	}
}

// withStoreTimeout bounds a single record store call.
func (s *Service) withStoreTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.opts.StoreTimeout)
}
