package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/yelpcamp/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with a throwaway password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Username:     "camper-" + uniqueSuffix(),
		PasswordHash: "$2a$04$seeded.hash.not.a.real.password.........................",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, username, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Username, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedCampground inserts a campground authored by author with the given name.
func SeedCampground(t *testing.T, pool *pgxpool.Pool, author domain.AuthorRef, name string) domain.Campground {
	t.Helper()

	lat, lng := 44.4280, -110.5885
	now := time.Now().UTC().Truncate(time.Microsecond)
	cg := domain.Campground{
		ID:          uuid.New(),
		Name:        name,
		Image:       "https://img.example.com/" + uniqueSuffix() + ".jpg",
		Description: "Seeded campground",
		Price:       "9.00",
		Location:    "Yellowstone National Park, WY, United States",
		Lat:         &lat,
		Lng:         &lng,
		Author:      author,
		CommentIDs:  []uuid.UUID{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO campgrounds (id, name, image, description, price, location, lat, lng,
		                          author_id, author_username, comment_ids, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		cg.ID, cg.Name, cg.Image, cg.Description, cg.Price, cg.Location, cg.Lat, cg.Lng,
		cg.Author.ID, cg.Author.Username, cg.CommentIDs, cg.CreatedAt, cg.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCampground: %v", err)
	}

	return cg
}

// SeedComment inserts a comment and appends its id to the campground's list.
func SeedComment(t *testing.T, pool *pgxpool.Pool, campgroundID uuid.UUID, author domain.AuthorRef, text string) domain.Comment {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	c := domain.Comment{
		ID:        uuid.New(),
		Text:      text,
		Author:    author,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO comments (id, text, author_id, author_username, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.Text, c.Author.ID, c.Author.Username, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedComment insert: %v", err)
	}

	_, err = pool.Exec(ctx,
		`UPDATE campgrounds SET comment_ids = array_append(comment_ids, $2) WHERE id = $1`,
		campgroundID, c.ID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedComment link: %v", err)
	}

	return c
}
