package web

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/heartmarshall/yelpcamp/internal/domain"
	"github.com/heartmarshall/yelpcamp/pkg/ctxutil"
)

// RequestContext is what every handler and template knows about the
// current request: who is signed in and which one-shot messages to show.
type RequestContext struct {
	// CurrentUser is nil for anonymous requests.
	CurrentUser *domain.AuthorRef
	Messages    Messages
}

// Messages are flash messages carried across one redirect.
type Messages struct {
	Error   string `json:"e,omitempty"`
	Success string `json:"s,omitempty"`
}

const flashCookie = "yelpcamp_flash"

// newRequestContext reads the actor bound by the session middleware and,
// on GET, consumes the pending flash.
func newRequestContext(w http.ResponseWriter, r *http.Request) RequestContext {
	var rc RequestContext
	if a, ok := ctxutil.ActorFromCtx(r.Context()); ok {
		rc.CurrentUser = &domain.AuthorRef{ID: a.ID, Username: a.Username}
	}
	if r.Method == http.MethodGet {
		rc.Messages = popFlash(w, r)
	}
	return rc
}

// setFlash stores m for the next GET.
func setFlash(w http.ResponseWriter, m Messages) {
	b, err := json.Marshal(m)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    base64.RawURLEncoding.EncodeToString(b),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func popFlash(w http.ResponseWriter, r *http.Request) Messages {
	c, err := r.Cookie(flashCookie)
	if err != nil || c.Value == "" {
		return Messages{}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	var m Messages
	b, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		return Messages{}
	}
	if err := json.Unmarshal(b, &m); err != nil {
		return Messages{}
	}
	return m
}
