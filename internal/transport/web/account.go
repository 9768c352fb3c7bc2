package web

import (
	"errors"
	"net/http"

	"github.com/heartmarshall/yelpcamp/internal/domain"
	"github.com/heartmarshall/yelpcamp/internal/service/auth"
)

func (h *Handler) registerForm(w http.ResponseWriter, r *http.Request, rc RequestContext) {
	h.renderPage(w, r, pageRegister, rc, nil)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request, _ RequestContext) {
	if err := h.parseForm(w, r); err != nil {
		h.fail(w, r, err, "/register")
		return
	}

	res, err := h.accounts.Register(r.Context(), auth.RegisterInput{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	})
	if err != nil {
		// Always back to the form, whatever the Referer says.
		h.fail(w, withoutReferer(r), err, "/register")
		return
	}

	h.setSession(w, res.Token)
	h.done(w, r, "/campgrounds", Messages{Success: "Welcome to YelpCamp " + res.User.Username},
		http.StatusCreated, userJSON{ID: res.User.ID, Username: res.User.Username})
}

func (h *Handler) loginForm(w http.ResponseWriter, r *http.Request, rc RequestContext) {
	h.renderPage(w, r, pageLogin, rc, nil)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request, _ RequestContext) {
	if err := h.parseForm(w, r); err != nil {
		h.fail(w, r, err, "/login")
		return
	}

	res, err := h.accounts.Login(r.Context(), auth.LoginInput{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	})
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			if wantsJSON(r) {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: msgBadCredentials, Kind: "unauthorized"})
				return
			}
			setFlash(w, Messages{Error: msgBadCredentials})
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		h.fail(w, withoutReferer(r), err, "/login")
		return
	}

	h.setSession(w, res.Token)
	h.done(w, r, "/campgrounds", Messages{Success: "Welcome back " + res.User.Username},
		http.StatusOK, userJSON{ID: res.User.ID, Username: res.User.Username})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request, _ RequestContext) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.opts.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.opts.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	h.done(w, r, "/campgrounds", Messages{Success: msgLoggedOut}, http.StatusOK, struct{}{})
}

func (h *Handler) setSession(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.opts.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.opts.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.opts.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func withoutReferer(r *http.Request) *http.Request {
	r2 := r.Clone(r.Context())
	r2.Header.Del("Referer")
	return r2
}
