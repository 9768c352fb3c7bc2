package auth

import (
	"fmt"
	"unicode/utf8"

	"github.com/heartmarshall/yelpcamp/internal/domain"
)

const (
	maxUsernameLen = 50
	maxPasswordLen = 72 // bcrypt rejects longer input
)

// RegisterInput holds parameters for account registration.
type RegisterInput struct {
	Username string
	Password string
}

// Validate validates the register input.
func (i RegisterInput) Validate(passwordMin int) error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	} else if utf8.RuneCountInString(i.Username) > maxUsernameLen {
		errs = append(errs, domain.FieldError{Field: "username", Message: "max 50 characters"})
	}

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if utf8.RuneCountInString(i.Password) < passwordMin {
		errs = append(errs, domain.FieldError{Field: "password", Message: fmt.Sprintf("min %d characters", passwordMin)})
	} else if len(i.Password) > maxPasswordLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for password login.
type LoginInput struct {
	Username string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
