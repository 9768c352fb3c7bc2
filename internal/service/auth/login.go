package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/yelpcamp/internal/domain"
	"github.com/heartmarshall/yelpcamp/pkg/ctxutil"
)

// Login authenticates a user with username + password.
// Returns ErrUnauthorized if the username is unknown or the password is wrong.
func (s *Service) Login(ctx context.Context, input LoginInput) (*Result, error) {
	input.Username = strings.TrimSpace(input.Username)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	ok, err := s.hasher.Compare(user.PasswordHash, input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.Login compare password: %w", err)
	}
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	result, err := s.issue(user)
	if err != nil {
		return nil, fmt.Errorf("auth.Login: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in",
		slog.String("user_id", user.ID.String()))

	return result, nil
}

// ValidateSession resolves a session token to its actor. The user must
// still exist; the username comes from the token, not the store.
func (s *Service) ValidateSession(ctx context.Context, token string) (ctxutil.Actor, error) {
	actor, err := s.sessions.Validate(token)
	if err != nil {
		return ctxutil.Actor{}, fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}

	if _, err := s.users.GetByID(ctx, actor.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ctxutil.Actor{}, domain.ErrUnauthorized
		}
		return ctxutil.Actor{}, fmt.Errorf("auth.ValidateSession get user: %w", err)
	}

	return actor, nil
}
