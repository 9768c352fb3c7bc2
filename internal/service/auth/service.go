// Package auth implements account registration, login and session checks.
package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/yelpcamp/internal/domain"
	"github.com/heartmarshall/yelpcamp/pkg/ctxutil"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// passwordHasher hashes and checks passwords.
type passwordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) (bool, error)
}

// sessionManager issues and validates session tokens.
type sessionManager interface {
	Issue(actor ctxutil.Actor) (string, error)
	Validate(token string) (ctxutil.Actor, error)
}

// Service implements auth operations.
type Service struct {
	log         *slog.Logger
	users       userRepo
	hasher      passwordHasher
	sessions    sessionManager
	passwordMin int
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	hasher passwordHasher,
	sessions sessionManager,
	passwordMin int,
) *Service {
	return &Service{
		log:         logger.With("service", "auth"),
		users:       users,
		hasher:      hasher,
		sessions:    sessions,
		passwordMin: passwordMin,
	}
}

// Result is returned by Register and Login.
type Result struct {
	Token string
	User  *domain.User
}

func (s *Service) issue(user *domain.User) (*Result, error) {
	token, err := s.sessions.Issue(ctxutil.Actor{ID: user.ID, Username: user.Username})
	if err != nil {
		return nil, fmt.Errorf("issue session: %w", err)
	}
	return &Result{Token: token, User: user}, nil
}
