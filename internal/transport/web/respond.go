package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/heartmarshall/yelpcamp/internal/domain"
	"github.com/heartmarshall/yelpcamp/internal/service/campground"
)

// User-facing messages. HTML clients see them as flashes, JSON clients in
// the error body.
const (
	msgUnauthorized   = "You need to be logged in to do that"
	msgForbidden      = "You don't have permission to do that"
	msgNotFound       = "Campground not found"
	msgGeocode        = "Invalid address"
	msgImageType      = "Only image files are allowed!"
	msgUpload         = "Image upload failed, please try again"
	msgInternal       = "Something went wrong, please try again"
	msgUpdated        = "Successfully Updated!"
	msgNoMatch        = "No campgrounds match that query, please try again."
	msgUsernameTaken  = "A user with the given username is already registered"
	msgBadCredentials = "Invalid username or password"
	msgLoggedOut      = "Logged you out!"
	msgCommentAdded   = "Successfully added comment"
	msgCommentDeleted = "Comment deleted"
)

// failure is how one error kind is presented.
type failure struct {
	status  int
	kind    string
	message string
	// redirect overrides the "back" target for HTML clients.
	redirect string
}

// classify maps an error to its presentation. Order matters: a StageError
// matches both its kind and its cause.
func classify(err error) failure {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return failure{http.StatusUnauthorized, "unauthorized", msgUnauthorized, "/login"}
	case errors.Is(err, domain.ErrForbidden):
		return failure{http.StatusForbidden, "forbidden", msgForbidden, ""}
	case errors.Is(err, domain.ErrNotFound):
		return failure{http.StatusNotFound, "not_found", msgNotFound, "/campgrounds"}
	case errors.Is(err, domain.ErrValidation):
		return failure{http.StatusBadRequest, "validation", validationMessage(err), ""}
	case errors.Is(err, domain.ErrGeocode):
		return failure{http.StatusUnprocessableEntity, "geocode", msgGeocode, ""}
	case errors.Is(err, domain.ErrUnsupportedImageType):
		return failure{http.StatusUnsupportedMediaType, "unsupported_image_type", msgImageType, ""}
	case errors.Is(err, domain.ErrUpload):
		return failure{http.StatusBadGateway, "upload", msgUpload, ""}
	case errors.Is(err, domain.ErrAlreadyExists):
		return failure{http.StatusConflict, "already_exists", msgUsernameTaken, ""}
	case errors.Is(err, domain.ErrPersist):
		return failure{http.StatusInternalServerError, "persist", persistMessage(err), ""}
	default:
		return failure{http.StatusInternalServerError, "internal", msgInternal, ""}
	}
}

// persistMessage surfaces the store's own message.
func persistMessage(err error) string {
	var se *campground.StageError
	if errors.As(err, &se) && se.Err != nil {
		return se.Err.Error()
	}
	return msgInternal
}

func validationMessage(err error) string {
	var ve *domain.ValidationError
	if !errors.As(err, &ve) || len(ve.Errors) == 0 {
		return "Invalid input"
	}
	parts := make([]string, 0, len(ve.Errors))
	for _, fe := range ve.Errors {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "Invalid input: " + strings.Join(parts, ", ")
}

// fail answers a failed request. JSON clients get the status of the kind;
// HTML clients are redirected with an error flash, back to the page they
// came from unless the kind names another target.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	f := classify(err)

	attrs := []any{
		slog.String("kind", f.kind),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("error", err.Error()),
	}
	if f.status >= http.StatusInternalServerError {
		h.log.ErrorContext(r.Context(), "request failed", attrs...)
	} else {
		h.log.DebugContext(r.Context(), "request rejected", attrs...)
	}

	if wantsJSON(r) {
		writeJSON(w, f.status, errorResponse{Error: f.message, Kind: f.kind})
		return
	}

	target := f.redirect
	if target == "" {
		target = back(r, fallback)
	}
	setFlash(w, Messages{Error: f.message})
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// done answers a successful mutation: body with status for JSON clients,
// a redirect with an optional flash for HTML clients.
func (h *Handler) done(w http.ResponseWriter, r *http.Request, target string, flash Messages, status int, body any) {
	if wantsJSON(r) {
		writeJSON(w, status, body)
		return
	}
	if flash != (Messages{}) {
		setFlash(w, flash)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// back is the local part of the Referer, or fallback. Only the path and
// query are kept so a forged Referer cannot redirect off-site.
func back(r *http.Request, fallback string) string {
	ref := r.Referer()
	if ref == "" {
		return fallback
	}
	u, err := url.Parse(ref)
	if err != nil || u.Path == "" || !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") {
		return fallback
	}
	if u.RawQuery != "" {
		return u.Path + "?" + u.RawQuery
	}
	return u.Path
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
