package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// pathID reads a positive integer route parameter. Anything else yields 0,
// which never matches a stored id.
func pathID(r *http.Request, name string) int {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		return 0
	}
	return id
}

// IsAsyncRequest reports whether the request was issued by a script rather
// than a browser navigation.
func IsAsyncRequest(r *http.Request) bool {
	return IsHTMXRequest(r) || r.Header.Get("X-Requested-With") == "XMLHttpRequest"
}
