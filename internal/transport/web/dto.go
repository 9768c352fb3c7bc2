package web

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/yelpcamp/internal/domain"
)

type authorJSON struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

type commentJSON struct {
	ID        uuid.UUID  `json:"id"`
	Text      string     `json:"text"`
	Author    authorJSON `json:"author"`
	CreatedAt time.Time  `json:"created_at"`
}

type campgroundJSON struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Image       string        `json:"image"`
	Description string        `json:"description"`
	Price       string        `json:"price"`
	Location    string        `json:"location"`
	Lat         *float64      `json:"lat,omitempty"`
	Lng         *float64      `json:"lng,omitempty"`
	Author      authorJSON    `json:"author"`
	CommentIDs  []uuid.UUID   `json:"comment_ids"`
	Comments    []commentJSON `json:"comments,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

type userJSON struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

type deletedJSON struct {
	ID uuid.UUID `json:"id"`
}

func toAuthorJSON(a domain.AuthorRef) authorJSON {
	return authorJSON{ID: a.ID, Username: a.Username}
}

func toCommentJSON(c *domain.Comment) commentJSON {
	return commentJSON{
		ID:        c.ID,
		Text:      c.Text,
		Author:    toAuthorJSON(c.Author),
		CreatedAt: c.CreatedAt,
	}
}

func toCampgroundJSON(c *domain.Campground) campgroundJSON {
	out := campgroundJSON{
		ID:          c.ID,
		Name:        c.Name,
		Image:       c.Image,
		Description: c.Description,
		Price:       c.Price,
		Location:    c.Location,
		Lat:         c.Lat,
		Lng:         c.Lng,
		Author:      toAuthorJSON(c.Author),
		CommentIDs:  c.CommentIDs,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	if out.CommentIDs == nil {
		out.CommentIDs = []uuid.UUID{}
	}
	for i := range c.Comments {
		out.Comments = append(out.Comments, toCommentJSON(&c.Comments[i]))
	}
	return out
}

func toCampgroundsJSON(list []domain.Campground) []campgroundJSON {
	out := make([]campgroundJSON, 0, len(list))
	for i := range list {
		out = append(out, toCampgroundJSON(&list[i]))
	}
	return out
}
