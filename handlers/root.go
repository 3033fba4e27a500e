package handlers

import "net/http"

// APIRootHandler lista as coleções disponíveis.
func (h *Handler) APIRootHandler(w http.ResponseWriter, r *http.Request) {
	l := h.links(r)
	writeJSON(w, http.StatusOK, map[string]string{
		"users":         l.route("user-list"),
		"lines":         l.route("line-list"),
		"announcements": l.route("announcement-list"),
		"events":        l.route("event-list"),
		"tasks":         l.route("task-list"),
	})
}
