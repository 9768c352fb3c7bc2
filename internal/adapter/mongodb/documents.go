package mongodb

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/yelpcamp/internal/domain"
)

// IDs are stored as canonical UUID strings.

type authorDoc struct {
	ID       string `bson:"id"`
	Username string `bson:"username"`
}

type campgroundDoc struct {
	ID          string    `bson:"_id"`
	Name        string    `bson:"name"`
	Image       string    `bson:"image"`
	Description string    `bson:"description"`
	Price       string    `bson:"price"`
	Location    string    `bson:"location"`
	Lat         *float64  `bson:"lat"`
	Lng         *float64  `bson:"lng"`
	Author      authorDoc `bson:"author"`
	Comments    []string  `bson:"comments"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

type commentDoc struct {
	ID        string    `bson:"_id"`
	Text      string    `bson:"text"`
	Author    authorDoc `bson:"author"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

type userDoc struct {
	ID           string    `bson:"_id"`
	Username     string    `bson:"username"`
	PasswordHash string    `bson:"password_hash"`
	AvatarURL    *string   `bson:"avatar_url,omitempty"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func toAuthorDoc(a domain.AuthorRef) authorDoc {
	return authorDoc{ID: a.ID.String(), Username: a.Username}
}

func (d authorDoc) toDomain() domain.AuthorRef {
	return domain.AuthorRef{ID: parseID(d.ID), Username: d.Username}
}

func (d campgroundDoc) toDomain() *domain.Campground {
	ids := make([]uuid.UUID, 0, len(d.Comments))
	for _, s := range d.Comments {
		ids = append(ids, parseID(s))
	}
	return &domain.Campground{
		ID:          parseID(d.ID),
		Name:        d.Name,
		Image:       d.Image,
		Description: d.Description,
		Price:       d.Price,
		Location:    d.Location,
		Lat:         d.Lat,
		Lng:         d.Lng,
		Author:      d.Author.toDomain(),
		CommentIDs:  ids,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (d commentDoc) toDomain() *domain.Comment {
	return &domain.Comment{
		ID:        parseID(d.ID),
		Text:      d.Text,
		Author:    d.Author.toDomain(),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (d userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:           parseID(d.ID),
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
		AvatarURL:    d.AvatarURL,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// parseID returns uuid.Nil for ids not written by this package.
func parseID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

// now is truncated to milliseconds, the BSON date precision.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
