package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/yelpcamp/internal/domain"
)

//go:embed templates
var templateFS embed.FS

// Page names, relative to templates/ without the extension.
const (
	pageCampgroundIndex = "campgrounds/index"
	pageCampgroundNew   = "campgrounds/new"
	pageCampgroundShow  = "campgrounds/show"
	pageCampgroundEdit  = "campgrounds/edit"
	pageCommentNew      = "comments/new"
	pageCommentEdit     = "comments/edit"
	pageRegister        = "account/register"
	pageLogin           = "account/login"
)

var pages = []string{
	pageCampgroundIndex,
	pageCampgroundNew,
	pageCampgroundShow,
	pageCampgroundEdit,
	pageCommentNew,
	pageCommentEdit,
	pageRegister,
	pageLogin,
}

var funcs = template.FuncMap{
	// owns reports whether the signed-in user wrote a record.
	"owns": func(user *domain.AuthorRef, author domain.AuthorRef) bool {
		return user != nil && user.ID == author.ID
	},
	"coord": func(v *float64) string {
		if v == nil {
			return ""
		}
		return strconv.FormatFloat(*v, 'f', 6, 64)
	},
	"date": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("Jan 2, 2006")
	},
}

// Renderer executes the embedded page templates inside the shared layout.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every page once.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS,
			"templates/layout.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// view is the root value of every template.
type view struct {
	Ctx  RequestContext
	Data any
}

// Render writes page with status. The page is rendered to a buffer first so
// a template error still produces a clean 500.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, rc RequestContext, data any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, view{Ctx: rc, Data: data}); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// renderPage renders or answers 500 when rendering fails.
func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, page string, rc RequestContext, data any) {
	if err := h.render.Render(w, http.StatusOK, page, rc, data); err != nil {
		h.log.ErrorContext(r.Context(), "render failed", "page", page, "error", err.Error())
		http.Error(w, msgInternal, http.StatusInternalServerError)
	}
}
