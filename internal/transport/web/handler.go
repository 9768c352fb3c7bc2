// Package web serves the HTML form interface: campgrounds, comments and
// accounts. Every handler also answers JSON when the client asks for it.
package web

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/yelpcamp/internal/domain"
	"github.com/heartmarshall/yelpcamp/internal/service/auth"
	"github.com/heartmarshall/yelpcamp/internal/service/campground"
	"github.com/heartmarshall/yelpcamp/internal/service/comment"
)

type campgroundService interface {
	List(ctx context.Context, input campground.ListInput) ([]domain.Campground, error)
	Show(ctx context.Context, id uuid.UUID) (*domain.Campground, error)
	Edit(ctx context.Context, id uuid.UUID) (*domain.Campground, error)
	AuthorizeNew(ctx context.Context) error
	Create(ctx context.Context, input campground.CreateInput) (*domain.Campground, error)
	Update(ctx context.Context, input campground.UpdateInput) (*domain.Campground, error)
	Delete(ctx context.Context, id uuid.UUID) (*domain.Campground, error)
}

type commentService interface {
	New(ctx context.Context, campgroundID uuid.UUID) (*domain.Campground, error)
	Create(ctx context.Context, input comment.CreateInput) (*domain.Comment, error)
	Edit(ctx context.Context, campgroundID, commentID uuid.UUID) (*domain.Comment, error)
	Update(ctx context.Context, input comment.UpdateInput) (*domain.Comment, error)
	Delete(ctx context.Context, campgroundID, commentID uuid.UUID) error
}

type accountService interface {
	Register(ctx context.Context, input auth.RegisterInput) (*auth.Result, error)
	Login(ctx context.Context, input auth.LoginInput) (*auth.Result, error)
}

// Options configures cookies and request limits.
type Options struct {
	SessionCookie  string
	SessionTTL     time.Duration
	SecureCookies  bool
	MaxUploadBytes int64
	// AuthThrottle wraps POST /login and POST /register. Nil means none.
	AuthThrottle func(http.Handler) http.Handler
}

// Handler serves the web routes.
type Handler struct {
	campgrounds campgroundService
	comments    commentService
	accounts    accountService
	render      *Renderer
	opts        Options
	log         *slog.Logger
}

// NewHandler creates a new web handler.
func NewHandler(
	log *slog.Logger,
	campgrounds campgroundService,
	comments commentService,
	accounts accountService,
	render *Renderer,
	opts Options,
) *Handler {
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = 10 << 20
	}
	if opts.AuthThrottle == nil {
		opts.AuthThrottle = func(next http.Handler) http.Handler { return next }
	}
	return &Handler{
		campgrounds: campgrounds,
		comments:    comments,
		accounts:    accounts,
		render:      render,
		opts:        opts,
		log:         log.With("handler", "web"),
	}
}

// Register mounts every web route on mux. PUT and DELETE arrive from HTML
// forms through the method override middleware.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/campgrounds", http.StatusSeeOther)
	})

	mux.Handle("GET /campgrounds", h.page(h.listCampgrounds))
	mux.Handle("POST /campgrounds", h.page(h.createCampground))
	mux.Handle("GET /campgrounds/new", h.page(h.newCampground))
	mux.Handle("GET /campgrounds/{id}", h.page(h.showCampground))
	mux.Handle("GET /campgrounds/{id}/edit", h.page(h.editCampground))
	mux.Handle("PUT /campgrounds/{id}", h.page(h.updateCampground))
	mux.Handle("DELETE /campgrounds/{id}", h.page(h.deleteCampground))

	mux.Handle("GET /campgrounds/{id}/comments/new", h.page(h.newComment))
	mux.Handle("POST /campgrounds/{id}/comments", h.page(h.createComment))
	mux.Handle("GET /campgrounds/{id}/comments/{comment_id}/edit", h.page(h.editComment))
	mux.Handle("PUT /campgrounds/{id}/comments/{comment_id}", h.page(h.updateComment))
	mux.Handle("DELETE /campgrounds/{id}/comments/{comment_id}", h.page(h.deleteComment))

	mux.Handle("GET /register", h.page(h.registerForm))
	mux.Handle("POST /register", h.opts.AuthThrottle(h.page(h.register)))
	mux.Handle("GET /login", h.page(h.loginForm))
	mux.Handle("POST /login", h.opts.AuthThrottle(h.page(h.login)))
	mux.Handle("GET /logout", h.page(h.logout))
}

// page builds the RequestContext and hands it to fn explicitly.
func (h *Handler) page(fn func(http.ResponseWriter, *http.Request, RequestContext)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fn(w, r, newRequestContext(w, r))
	})
}

// pathID parses a uuid path value. A malformed id cannot name a record.
func pathID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, domain.ErrNotFound
	}
	return id, nil
}
