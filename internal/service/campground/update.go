package campground

import (
	"context"
	"log/slog"
	"strings"

	"github.com/heartmarshall/yelpcamp/internal/domain"
)

// Update runs Start -> Geocoding -> Persisting -> Done. The full field set is
// written, including the image URL sent back by the client; a blank image
// keeps the stored one.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Campground, error) {
	m := s.newMutation("update")

	var (
		current  *domain.Campground
		location *domain.GeocodedLocation
		updated  *domain.Campground
		err      error
	)

	for {
		switch m.stage {
		case StageStart:
			current, _, err = s.requireOwnership(ctx, input.ID)
			if err != nil {
				return nil, m.fail(ctx, guardKind(err), err)
			}
			if err = input.Validate(); err != nil {
				return nil, m.fail(ctx, domain.ErrValidation, err)
			}
			m.advance(ctx, StageGeocoding)

		case StageGeocoding:
			location, err = s.geocoder.Geocode(ctx, strings.TrimSpace(input.Location))
			if err != nil {
				return nil, m.fail(ctx, domain.ErrGeocode, err)
			}
			m.advance(ctx, StagePersisting)

		case StagePersisting:
			image := strings.TrimSpace(input.Image)
			if image == "" {
				image = current.Image
			}
			lat, lng := location.Lat, location.Lng

			storeCtx, cancel := s.withStoreTimeout(ctx)
			updated, err = s.campgrounds.UpdateByID(storeCtx, input.ID, domain.CampgroundFields{
				Name:        domain.CompactSpaces(input.Name),
				Image:       image,
				Description: strings.TrimSpace(input.Description),
				Price:       strings.TrimSpace(input.Price),
				Location:    location.Address,
				Lat:         &lat,
				Lng:         &lng,
			})
			cancel()
			if err != nil {
				return nil, m.fail(ctx, domain.ErrPersist, err)
			}
			m.done(ctx)

		case StageDone:
			s.log.InfoContext(ctx, "campground updated",
				slog.String("user_id", current.Author.ID.String()),
				slog.String("campground_id", updated.ID.String()),
			)
			return updated, nil
		}
	}
}
