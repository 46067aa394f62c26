package handlers

import "net/http"

// NewIndexHandler sends the client to its own health check page.
// @Summary Index
// @Tags pages
// @Success 303 {string} string "Redirect to /user/healthcheck"
// @Router / [get]
func NewIndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/user/healthcheck", http.StatusSeeOther)
	}
}
