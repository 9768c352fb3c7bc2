package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account.
type User struct {
	ID       uuid.UUID
	Username string
	// PasswordHash is a bcrypt hash; the plain password is never stored.
	PasswordHash string
	AvatarURL    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Ref returns the author snapshot for u.
func (u User) Ref() AuthorRef {
	return AuthorRef{ID: u.ID, Username: u.Username}
}
