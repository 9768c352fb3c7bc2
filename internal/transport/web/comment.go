package web

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/yelpcamp/internal/domain"
	"github.com/heartmarshall/yelpcamp/internal/service/comment"
)

type commentData struct {
	Campground *domain.Campground
	Comment    *domain.Comment
}

func campgroundPath(r *http.Request) string {
	return "/campgrounds/" + r.PathValue("id")
}

func (h *Handler) newComment(w http.ResponseWriter, r *http.Request, rc RequestContext) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err, "/campgrounds")
		return
	}

	cg, err := h.comments.New(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, campgroundPath(r))
		return
	}
	h.renderPage(w, r, pageCommentNew, rc, commentData{Campground: cg})
}

func (h *Handler) createComment(w http.ResponseWriter, r *http.Request, _ RequestContext) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err, "/campgrounds")
		return
	}

	if err := h.parseForm(w, r); err != nil {
		h.fail(w, r, err, campgroundPath(r))
		return
	}

	created, err := h.comments.Create(r.Context(), comment.CreateInput{
		CampgroundID: id,
		Text:         r.PostFormValue("comment[text]"),
	})
	if err != nil {
		h.fail(w, r, err, campgroundPath(r)+"/comments/new")
		return
	}

	h.done(w, r, campgroundPath(r), Messages{Success: msgCommentAdded},
		http.StatusCreated, toCommentJSON(created))
}

func (h *Handler) editComment(w http.ResponseWriter, r *http.Request, rc RequestContext) {
	cgID, commentID, err := commentIDs(r)
	if err != nil {
		h.fail(w, r, err, "/campgrounds")
		return
	}

	c, err := h.comments.Edit(r.Context(), cgID, commentID)
	if err != nil {
		h.fail(w, r, err, campgroundPath(r))
		return
	}

	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, toCommentJSON(c))
		return
	}
	h.renderPage(w, r, pageCommentEdit, rc, commentData{
		Campground: &domain.Campground{ID: cgID},
		Comment:    c,
	})
}

func (h *Handler) updateComment(w http.ResponseWriter, r *http.Request, _ RequestContext) {
	cgID, commentID, err := commentIDs(r)
	if err != nil {
		h.fail(w, r, err, "/campgrounds")
		return
	}

	if err := h.parseForm(w, r); err != nil {
		h.fail(w, r, err, campgroundPath(r))
		return
	}

	updated, err := h.comments.Update(r.Context(), comment.UpdateInput{
		CampgroundID: cgID,
		CommentID:    commentID,
		Text:         r.PostFormValue("comment[text]"),
	})
	if err != nil {
		h.fail(w, r, err, campgroundPath(r))
		return
	}

	h.done(w, r, campgroundPath(r), Messages{}, http.StatusOK, toCommentJSON(updated))
}

func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request, _ RequestContext) {
	cgID, commentID, err := commentIDs(r)
	if err != nil {
		h.fail(w, r, err, "/campgrounds")
		return
	}

	if err := h.comments.Delete(r.Context(), cgID, commentID); err != nil {
		h.fail(w, r, err, campgroundPath(r))
		return
	}

	h.done(w, r, campgroundPath(r), Messages{Success: msgCommentDeleted},
		http.StatusOK, deletedJSON{ID: commentID})
}

func commentIDs(r *http.Request) (campgroundID, commentID uuid.UUID, err error) {
	if campgroundID, err = pathID(r, "id"); err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	if commentID, err = pathID(r, "comment_id"); err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return campgroundID, commentID, nil
}
