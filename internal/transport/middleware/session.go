package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/yelpcamp/pkg/ctxutil"
)

type sessionValidator interface {
	ValidateSession(ctx context.Context, token string) (ctxutil.Actor, error)
}

// Session binds the actor of a valid session cookie to the request context.
// Requests without a cookie stay anonymous. An invalid cookie is cleared and
// the request continues anonymously; guards decide what anonymous may do.
func Session(validator sessionValidator, cookieName string, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			actor, err := validator.ValidateSession(r.Context(), cookie.Value)
			if err != nil {
				logger.DebugContext(r.Context(), "session rejected", slog.String("error", err.Error()))
				http.SetCookie(w, &http.Cookie{
					Name:     cookieName,
					Value:    "",
					Path:     "/",
					MaxAge:   -1,
					HttpOnly: true,
				})
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(ctxutil.WithActor(r.Context(), actor)))
		})
	}
}
