package comment

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/yelpcamp/internal/domain"
)

const maxTextLen = 2000

// CreateInput holds the parameters for commenting on a campground.
type CreateInput struct {
	CampgroundID uuid.UUID
	Text         string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.CampgroundID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "campground_id", Message: "required"})
	}
	errs = append(errs, validateText(i.Text)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds the parameters for editing a comment.
type UpdateInput struct {
	CampgroundID uuid.UUID
	CommentID    uuid.UUID
	Text         string
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.CampgroundID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "campground_id", Message: "required"})
	}
	if i.CommentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "comment_id", Message: "required"})
	}
	errs = append(errs, validateText(i.Text)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateText(text string) []domain.FieldError {
	text = strings.TrimSpace(text)
	if text == "" {
		return []domain.FieldError{{Field: "text", Message: "required"}}
	}
	if utf8.RuneCountInString(text) > maxTextLen {
		return []domain.FieldError{{Field: "text", Message: "max 2000 characters"}}
	}
	return nil
}
