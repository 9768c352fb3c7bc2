// Package seeder fills an empty store with a demo account and a handful of
// campgrounds, each with one comment. Nothing is geocoded or uploaded.
package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/yelpcamp/internal/domain"
)

type campgroundRepo interface {
	Find(ctx context.Context, filter domain.CampgroundFilter) ([]domain.Campground, error)
	Create(ctx context.Context, c *domain.Campground) (*domain.Campground, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (*domain.Campground, error)
	AppendComment(ctx context.Context, campgroundID, commentID uuid.UUID) error
}

type commentRepo interface {
	Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	DeleteMany(ctx context.Context, ids []uuid.UUID) (int, error)
}

type userRepo interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
}

type passwordHasher interface {
	Hash(password string) (string, error)
}

// Sample is one seeded campground.
type Sample struct {
	Name        string
	Image       string
	Description string
	Price       string
	Location    string
	Lat, Lng    float64
	Comment     string
}

// Samples is the default data set.
var Samples = []Sample{
	{
		Name:        "Cloud's Rest",
		Image:       "https://images.unsplash.com/photo-1504280390367-361c6d9f38f4",
		Description: "A quiet ridge above the valley with room for a dozen tents.",
		Price:       "12.00",
		Location:    "Yosemite National Park, CA, United States",
		Lat:         37.76749,
		Lng:         -119.48916,
		Comment:     "This place is great, but I wish there was internet",
	},
	{
		Name:        "Desert Mesa",
		Image:       "https://images.unsplash.com/photo-1487730116645-74489c95b41b",
		Description: "Red rock, clear skies and no shade at all.",
		Price:       "8.50",
		Location:    "Moab, UT, United States",
		Lat:         38.57332,
		Lng:         -109.54984,
		Comment:     "Bring twice the water you think you need",
	},
	{
		Name:        "Canyon Floor",
		Image:       "https://images.unsplash.com/photo-1537905569824-f89f14cceb68",
		Description: "Sites along the river at the bottom of the canyon.",
		Price:       "15.00",
		Location:    "Grand Canyon Village, AZ, United States",
		Lat:         36.05443,
		Lng:         -112.14007,
		Comment:     "The hike down is worth it",
	},
}

// Report summarizes a run.
type Report struct {
	User        domain.AuthorRef
	UserCreated bool
	Campgrounds int
	Comments    int
	Removed     int
}

// Seeder writes the sample data through the record stores.
type Seeder struct {
	campgrounds campgroundRepo
	comments    commentRepo
	users       userRepo
	hasher      passwordHasher
	cfg         Config
	log         *slog.Logger
}

// New creates a Seeder.
func New(
	log *slog.Logger,
	campgrounds campgroundRepo,
	comments commentRepo,
	users userRepo,
	hasher passwordHasher,
	cfg Config,
) *Seeder {
	return &Seeder{
		campgrounds: campgrounds,
		comments:    comments,
		users:       users,
		hasher:      hasher,
		cfg:         cfg,
		log:         log.With("component", "seeder"),
	}
}

// Run seeds samples under the demo account, creating the account when it
// does not exist yet.
func (s *Seeder) Run(ctx context.Context, samples []Sample) (*Report, error) {
	if s.cfg.DryRun {
		s.log.InfoContext(ctx, "dry run, nothing written", slog.Int("campgrounds", len(samples)))
		return &Report{Campgrounds: len(samples), Comments: len(samples)}, nil
	}

	user, created, err := s.demoUser(ctx)
	if err != nil {
		return nil, err
	}
	author := domain.AuthorRef{ID: user.ID, Username: user.Username}
	report := &Report{User: author, UserCreated: created}

	if s.cfg.Reset {
		removed, err := s.reset(ctx, author.ID)
		if err != nil {
			return nil, err
		}
		report.Removed = removed
	}

	for _, sample := range samples {
		lat, lng := sample.Lat, sample.Lng
		cg, err := s.campgrounds.Create(ctx, &domain.Campground{
			Name:        sample.Name,
			Image:       sample.Image,
			Description: sample.Description,
			Price:       sample.Price,
			Location:    sample.Location,
			Lat:         &lat,
			Lng:         &lng,
			Author:      author,
		})
		if err != nil {
			return nil, fmt.Errorf("seed campground %q: %w", sample.Name, err)
		}
		report.Campgrounds++

		if sample.Comment == "" {
			continue
		}
		c, err := s.comments.Create(ctx, &domain.Comment{Text: sample.Comment, Author: author})
		if err != nil {
			return nil, fmt.Errorf("seed comment for %q: %w", sample.Name, err)
		}
		if err := s.campgrounds.AppendComment(ctx, cg.ID, c.ID); err != nil {
			return nil, fmt.Errorf("attach comment to %q: %w", sample.Name, err)
		}
		report.Comments++
	}

	s.log.InfoContext(ctx, "seed completed",
		slog.String("user", author.Username),
		slog.Int("campgrounds", report.Campgrounds),
		slog.Int("comments", report.Comments),
		slog.Int("removed", report.Removed),
	)
	return report, nil
}

func (s *Seeder) demoUser(ctx context.Context) (*domain.User, bool, error) {
	u, err := s.users.GetByUsername(ctx, s.cfg.DemoUsername)
	if err == nil {
		return u, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, fmt.Errorf("get demo user: %w", err)
	}

	hash, err := s.hasher.Hash(s.cfg.DemoPassword)
	if err != nil {
		return nil, false, fmt.Errorf("hash demo password: %w", err)
	}
	u, err = s.users.Create(ctx, &domain.User{Username: s.cfg.DemoUsername, PasswordHash: hash})
	if err != nil {
		return nil, false, fmt.Errorf("create demo user: %w", err)
	}
	return u, true, nil
}

// reset deletes every campground authored by userID along with its comments.
func (s *Seeder) reset(ctx context.Context, userID uuid.UUID) (int, error) {
	all, err := s.campgrounds.Find(ctx, domain.CampgroundFilter{})
	if err != nil {
		return 0, fmt.Errorf("list campgrounds: %w", err)
	}

	removed := 0
	for i := range all {
		if !all[i].OwnedBy(userID) {
			continue
		}
		if _, err := s.campgrounds.DeleteByID(ctx, all[i].ID); err != nil {
			return removed, fmt.Errorf("remove campground %s: %w", all[i].ID, err)
		}
		if len(all[i].CommentIDs) > 0 {
			if _, err := s.comments.DeleteMany(ctx, all[i].CommentIDs); err != nil {
				return removed, fmt.Errorf("remove comments of %s: %w", all[i].ID, err)
			}
		}
		removed++
	}
	return removed, nil
}
