package handlers

import (
	"net/http"

	"lines-api/utilities"
)

// ListUsersHandler lista todos os usuários ativos com as suas Lines.
func (h *Handler) ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := h.db.ListUsers(r.Context())
	if err != nil {
		utilities.LogError(err, "Erro ao buscar usuários")
		writeError(w, err)
		return
	}

	l := h.links(r)
	resp := make([]userResponse, 0, len(users))
	for i := range users {
		resp = append(resp, l.user(&users[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetUserHandler retorna informações de um usuário específico
func (h *Handler) GetUserHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	user, err := h.db.GetUser(r.Context(), id)
	if err != nil {
		utilities.LogDebug("GetUserHandler: usuário %d: %v", id, err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.links(r).user(user))
}
