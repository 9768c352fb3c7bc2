package campground

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/yelpcamp/internal/domain"
)

const (
	maxNameLen        = 200
	maxDescriptionLen = 5000
	maxPriceLen       = 50
	maxLocationLen    = 500
)

// ListInput holds the parameters for listing campgrounds.
type ListInput struct {
	// Search is matched literally against names; blank lists everything.
	Search string
}

// CreateInput holds the submitted campground form and image.
type CreateInput struct {
	Name        string
	Description string
	Price       string
	Location    string
	Image       *domain.ImageFile
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	errs := validateFields(i.Name, i.Description, i.Price, i.Location)
	if i.Image == nil || i.Image.Body == nil {
		errs = append(errs, domain.FieldError{Field: "image", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds the edited campground form. Image is the existing URL
// sent back by the client; it is never re-uploaded.
type UpdateInput struct {
	ID          uuid.UUID
	Name        string
	Image       string
	Description string
	Price       string
	Location    string
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError
	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	errs = append(errs, validateFields(i.Name, i.Description, i.Price, i.Location)...)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateFields(name, description, price, location string) []domain.FieldError {
	var errs []domain.FieldError

	name = domain.CompactSpaces(name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}
	if utf8.RuneCountInString(description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 5000 characters"})
	}
	if utf8.RuneCountInString(strings.TrimSpace(price)) > maxPriceLen {
		errs = append(errs, domain.FieldError{Field: "price", Message: "max 50 characters"})
	}

	location = strings.TrimSpace(location)
	if location == "" {
		errs = append(errs, domain.FieldError{Field: "location", Message: "required"})
	}
	if utf8.RuneCountInString(location) > maxLocationLen {
		errs = append(errs, domain.FieldError{Field: "location", Message: "max 500 characters"})
	}

	return errs
}
