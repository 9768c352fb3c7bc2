package middleware

import (
	"net/http"
	"strings"
)

// MethodOverrideParam is the query parameter HTML forms use to send PUT and
// DELETE, e.g. <form method="POST" action="/campgrounds/1?_method=DELETE">.
const MethodOverrideParam = "_method"

// MethodOverrideHeader is honoured the same way for scripted clients.
const MethodOverrideHeader = "X-HTTP-Method-Override"

var overridable = map[string]bool{
	http.MethodPut:    true,
	http.MethodPatch:  true,
	http.MethodDelete: true,
}

// MethodOverride rewrites POST requests to the method named by the _method
// query parameter or the override header. Other methods pass untouched, and
// unknown override values are ignored. The body is never read.
func MethodOverride() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPost {
				m := r.URL.Query().Get(MethodOverrideParam)
				if m == "" {
					m = r.Header.Get(MethodOverrideHeader)
				}
				if m = strings.ToUpper(strings.TrimSpace(m)); overridable[m] {
					r.Method = m
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
