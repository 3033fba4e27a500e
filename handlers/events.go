package handlers

import (
	"net/http"

	"lines-api/models"
	"lines-api/utilities"
)

func (h *Handler) ListEventsHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogDebug("Iniciando listagem de eventos")

	events, err := h.db.ListEvents(r.Context())
	if err != nil {
		utilities.LogError(err, "ListEventsHandler: Erro ao buscar eventos no banco de dados")
		writeError(w, err)
		return
	}

	l := h.links(r)
	resp := make([]eventResponse, 0, len(events))
	for i := range events {
		resp = append(resp, l.event(&events[i]))
	}
	utilities.LogInfo("Eventos listados com sucesso - total: %d", len(resp))
	writeJSON(w, http.StatusOK, resp)
}

// CreateEventHandler cria um evento em uma Line do próprio usuário.
func (h *Handler) CreateEventHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogDebug("Iniciando criação de novo evento")
	user := currentUser(r)

	payload, err := models.DecodePayload(r.Body)
	if err != nil {
		utilities.LogError(err, "CreateEventHandler: Erro ao decodificar JSON do evento")
		writeError(w, err)
		return
	}
	in, err := models.BindEventInput(payload, false)
	if err = h.restrictLine(r.Context(), user, in.LineID, err); err != nil {
		utilities.LogDebug("CreateEventHandler: Validação falhou: %v", err)
		writeError(w, err)
		return
	}

	event, err := h.db.CreateEvent(r.Context(), user.ID, in)
	if err != nil {
		utilities.LogError(err, "CreateEventHandler: Erro ao inserir evento no banco de dados")
		writeError(w, err)
		return
	}

	utilities.LogInfo("Evento criado com sucesso: %s (ID: %d)", event.Title, event.ID)
	resp := h.links(r).event(event)
	writeCreated(w, resp.URL, resp)
}

func (h *Handler) GetEventHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	event, err := h.db.GetEvent(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.links(r).event(event))
}

func (h *Handler) UpdateEventHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogDebug("Iniciando atualização de evento")
	user := currentUser(r)

	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	existing, err := h.db.GetEvent(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if !hasObjectPermission(r, user, existing.OwnerID) {
		utilities.LogInfo("UpdateEventHandler: usuário %s não é dono do evento %d", user.Username, id)
		writeError(w, ErrPermissionDenied)
		return
	}

	payload, err := models.DecodePayload(r.Body)
	if err != nil {
		writeError(w, err)
		return
	}
	in, err := models.BindEventInput(payload, r.Method == http.MethodPatch)
	if err = h.restrictLine(r.Context(), user, in.LineID, err); err != nil {
		writeError(w, err)
		return
	}

	event, err := h.db.UpdateEvent(r.Context(), id, in)
	if err != nil {
		utilities.LogError(err, "UpdateEventHandler: Erro ao atualizar evento no banco de dados")
		writeError(w, err)
		return
	}

	utilities.LogInfo("Evento atualizado com sucesso: %d", id)
	writeJSON(w, http.StatusOK, h.links(r).event(event))
}

func (h *Handler) DeleteEventHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogDebug("Iniciando exclusão de evento")
	user := currentUser(r)

	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	existing, err := h.db.GetEvent(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if !hasObjectPermission(r, user, existing.OwnerID) {
		utilities.LogInfo("DeleteEventHandler: usuário %s não é dono do evento %d", user.Username, id)
		writeError(w, ErrPermissionDenied)
		return
	}

	if err := h.db.DeleteEvent(r.Context(), id); err != nil {
		utilities.LogError(err, "DeleteEventHandler: Erro ao excluir evento do banco de dados")
		writeError(w, err)
		return
	}

	utilities.LogInfo("Evento excluído com sucesso: %d", id)
	w.WriteHeader(http.StatusNoContent)
}
