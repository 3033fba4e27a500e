package handlers

import (
	"net/http"

	"lines-api/models"
	"lines-api/utilities"
)

func (h *Handler) ListAnnouncementsHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogDebug("Iniciando listagem de anúncios")

	announcements, err := h.db.ListAnnouncements(r.Context())
	if err != nil {
		utilities.LogError(err, "ListAnnouncementsHandler: Erro ao buscar anúncios no banco de dados")
		writeError(w, err)
		return
	}

	l := h.links(r)
	resp := make([]announcementResponse, 0, len(announcements))
	for i := range announcements {
		resp = append(resp, l.announcement(&announcements[i]))
	}
	utilities.LogInfo("Anúncios listados com sucesso - total: %d", len(resp))
	writeJSON(w, http.StatusOK, resp)
}

// CreateAnnouncementHandler cria um anúncio em uma Line do próprio usuário.
func (h *Handler) CreateAnnouncementHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogDebug("Iniciando criação de novo anúncio")
	user := currentUser(r)

	payload, err := models.DecodePayload(r.Body)
	if err != nil {
		utilities.LogError(err, "CreateAnnouncementHandler: Erro ao decodificar JSON do anúncio")
		writeError(w, err)
		return
	}
	in, err := models.BindAnnouncementInput(payload, false)
	if err = h.restrictLine(r.Context(), user, in.LineID, err); err != nil {
		utilities.LogDebug("CreateAnnouncementHandler: Validação falhou: %v", err)
		writeError(w, err)
		return
	}

	announcement, err := h.db.CreateAnnouncement(r.Context(), user.ID, in)
	if err != nil {
		utilities.LogError(err, "CreateAnnouncementHandler: Erro ao inserir anúncio no banco de dados")
		writeError(w, err)
		return
	}

	utilities.LogInfo("Anúncio criado com sucesso: %s (ID: %d)", announcement.Title, announcement.ID)
	resp := h.links(r).announcement(announcement)
	writeCreated(w, resp.URL, resp)
}

func (h *Handler) GetAnnouncementHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	announcement, err := h.db.GetAnnouncement(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.links(r).announcement(announcement))
}

func (h *Handler) UpdateAnnouncementHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogDebug("Iniciando atualização de anúncio")
	user := currentUser(r)

	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	existing, err := h.db.GetAnnouncement(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if !hasObjectPermission(r, user, existing.OwnerID) {
		utilities.LogInfo("UpdateAnnouncementHandler: usuário %s não é dono do anúncio %d", user.Username, id)
		writeError(w, ErrPermissionDenied)
		return
	}

	payload, err := models.DecodePayload(r.Body)
	if err != nil {
		writeError(w, err)
		return
	}
	in, err := models.BindAnnouncementInput(payload, r.Method == http.MethodPatch)
	if err = h.restrictLine(r.Context(), user, in.LineID, err); err != nil {
		writeError(w, err)
		return
	}

	announcement, err := h.db.UpdateAnnouncement(r.Context(), id, in)
	if err != nil {
		utilities.LogError(err, "UpdateAnnouncementHandler: Erro ao atualizar anúncio no banco de dados")
		writeError(w, err)
		return
	}

	utilities.LogInfo("Anúncio atualizado com sucesso: %d", id)
	writeJSON(w, http.StatusOK, h.links(r).announcement(announcement))
}

func (h *Handler) DeleteAnnouncementHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogDebug("Iniciando exclusão de anúncio")
	user := currentUser(r)

	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	existing, err := h.db.GetAnnouncement(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if !hasObjectPermission(r, user, existing.OwnerID) {
		utilities.LogInfo("DeleteAnnouncementHandler: usuário %s não é dono do anúncio %d", user.Username, id)
		writeError(w, ErrPermissionDenied)
		return
	}

	if err := h.db.DeleteAnnouncement(r.Context(), id); err != nil {
		utilities.LogError(err, "DeleteAnnouncementHandler: Erro ao excluir anúncio do banco de dados")
		writeError(w, err)
		return
	}

	utilities.LogInfo("Anúncio excluído com sucesso: %d", id)
	w.WriteHeader(http.StatusNoContent)
}
