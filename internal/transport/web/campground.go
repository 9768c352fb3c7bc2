package web

import (
	"errors"
	"net/http"

	"github.com/heartmarshall/yelpcamp/internal/domain"
	"github.com/heartmarshall/yelpcamp/internal/service/campground"
)

// Form field names of the campground forms.
const (
	fieldImage = "image"
)

type indexData struct {
	Campgrounds []domain.Campground
	Search      string
	NoMatch     string
}

type campgroundData struct {
	Campground *domain.Campground
}

func (h *Handler) listCampgrounds(w http.ResponseWriter, r *http.Request, rc RequestContext) {
	search := r.URL.Query().Get("search")

	list, err := h.campgrounds.List(r.Context(), campground.ListInput{Search: search})
	if err != nil {
		h.fail(w, r, err, "/")
		return
	}

	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, toCampgroundsJSON(list))
		return
	}

	data := indexData{Campgrounds: list, Search: search}
	if search != "" && len(list) == 0 {
		data.NoMatch = msgNoMatch
	}
	h.renderPage(w, r, pageCampgroundIndex, rc, data)
}

func (h *Handler) newCampground(w http.ResponseWriter, r *http.Request, rc RequestContext) {
	if err := h.campgrounds.AuthorizeNew(r.Context()); err != nil {
		h.fail(w, r, err, "/campgrounds")
		return
	}
	h.renderPage(w, r, pageCampgroundNew, rc, nil)
}

func (h *Handler) createCampground(w http.ResponseWriter, r *http.Request, _ RequestContext) {
	// Reject anonymous uploads before reading the body.
	if err := h.campgrounds.AuthorizeNew(r.Context()); err != nil {
		h.fail(w, r, err, "/campgrounds/new")
		return
	}

	if err := h.parseForm(w, r); err != nil {
		h.fail(w, r, err, "/campgrounds/new")
		return
	}
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll() //nolint:errcheck
	}

	in := campground.CreateInput{
		Name:        r.PostFormValue("newCampground[name]"),
		Description: r.PostFormValue("newCampground[description]"),
		Price:       r.PostFormValue("newCampground[price]"),
		Location:    r.PostFormValue("newCampground[location]"),
	}
	if file, hdr, err := r.FormFile(fieldImage); err == nil {
		defer file.Close()
		in.Image = &domain.ImageFile{Name: hdr.Filename, Body: file}
	}

	created, err := h.campgrounds.Create(r.Context(), in)
	if err != nil {
		h.fail(w, r, err, "/campgrounds/new")
		return
	}

	h.done(w, r, "/campgrounds", Messages{}, http.StatusCreated, toCampgroundJSON(created))
}

func (h *Handler) showCampground(w http.ResponseWriter, r *http.Request, rc RequestContext) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err, "/campgrounds")
		return
	}

	cg, err := h.campgrounds.Show(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "/campgrounds")
		return
	}

	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, toCampgroundJSON(cg))
		return
	}
	h.renderPage(w, r, pageCampgroundShow, rc, campgroundData{Campground: cg})
}

func (h *Handler) editCampground(w http.ResponseWriter, r *http.Request, rc RequestContext) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err, "/campgrounds")
		return
	}

	cg, err := h.campgrounds.Edit(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "/campgrounds/"+id.String())
		return
	}

	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, toCampgroundJSON(cg))
		return
	}
	h.renderPage(w, r, pageCampgroundEdit, rc, campgroundData{Campground: cg})
}

func (h *Handler) updateCampground(w http.ResponseWriter, r *http.Request, _ RequestContext) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err, "/campgrounds")
		return
	}

	if err := h.parseForm(w, r); err != nil {
		h.fail(w, r, err, "/campgrounds/"+id.String()+"/edit")
		return
	}

	updated, err := h.campgrounds.Update(r.Context(), campground.UpdateInput{
		ID:          id,
		Name:        r.PostFormValue("campground[name]"),
		Image:       r.PostFormValue("campground[image]"),
		Description: r.PostFormValue("campground[description]"),
		Price:       r.PostFormValue("campground[price]"),
		Location:    r.PostFormValue("campground[location]"),
	})
	if err != nil {
		h.fail(w, r, err, "/campgrounds/"+id.String()+"/edit")
		return
	}

	h.done(w, r, "/campgrounds/"+updated.ID.String(), Messages{Success: msgUpdated},
		http.StatusOK, toCampgroundJSON(updated))
}

func (h *Handler) deleteCampground(w http.ResponseWriter, r *http.Request, _ RequestContext) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err, "/campgrounds")
		return
	}

	removed, err := h.campgrounds.Delete(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, "/campgrounds")
		return
	}

	h.done(w, r, "/campgrounds", Messages{Success: removed.Name + " deleted!"},
		http.StatusOK, deletedJSON{ID: removed.ID})
}

// parseForm reads a urlencoded or multipart body of at most MaxUploadBytes.
func (h *Handler) parseForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, h.opts.MaxUploadBytes)

	err := r.ParseMultipartForm(multipartMemory)
	if err == nil || errors.Is(err, http.ErrNotMultipart) {
		return nil
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return domain.NewValidationError("form", "request too large")
	}
	return domain.NewValidationError("form", "malformed form data")
}

// multipartMemory is how much of an upload is held in memory before
// spilling to temporary files.
const multipartMemory = 1 << 20
