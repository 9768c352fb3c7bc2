package domain

import (
	"io"
	"time"

	"github.com/google/uuid"
)

// AuthorRef is a copy of a user's identity taken when a record is written.
// It is never refreshed: renaming or deleting the user leaves it untouched.
type AuthorRef struct {
	ID       uuid.UUID
	Username string
}

// Campground is a listed campsite.
type Campground struct {
	ID          uuid.UUID
	Name        string
	Image       string
	Description string
	Price       string
	Location    string
	// Lat and Lng are nil unless the location was geocoded.
	Lat        *float64
	Lng        *float64
	Author     AuthorRef
	CommentIDs []uuid.UUID
	// Comments is filled only by a populate call, in CommentIDs order.
	Comments  []Comment
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnedBy reports whether the campground was authored by userID.
func (c *Campground) OwnedBy(userID uuid.UUID) bool {
	return c.Author.ID == userID
}

// CampgroundFields is the full replaceable field set of a campground update.
type CampgroundFields struct {
	Name        string
	Image       string
	Description string
	Price       string
	Location    string
	Lat         *float64
	Lng         *float64
}

// CampgroundFilter selects campgrounds for listing.
type CampgroundFilter struct {
	// NameContains is matched as a case-insensitive literal substring.
	// nil or empty means no name filter.
	NameContains *string
}

// Comment is a user remark on a campground. The campground keeps the
// ordered list of comment ids; the comment owns its own content.
type Comment struct {
	ID        uuid.UUID
	Text      string
	Author    AuthorRef
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnedBy reports whether the comment was authored by userID.
func (c *Comment) OwnedBy(userID uuid.UUID) bool {
	return c.Author.ID == userID
}

// GeocodedLocation is the first result of a geocoding lookup.
type GeocodedLocation struct {
	Lat     float64
	Lng     float64
	Address string
}

// ImageFile is an uploaded image as received from the client.
type ImageFile struct {
	// Name is the client-side file name; its extension decides acceptance.
	Name string
	Body io.Reader
}
