package handlers

import (
	"net/http"

	"lines-api/models"
	"lines-api/utilities"
)

// ListLinesHandler lista todas as Lines; leitura não é filtrada por dono.
func (h *Handler) ListLinesHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogDebug("Iniciando listagem de lines")

	lines, err := h.db.ListLines(r.Context())
	if err != nil {
		utilities.LogError(err, "ListLinesHandler: Erro ao buscar lines no banco de dados")
		writeError(w, err)
		return
	}

	l := h.links(r)
	resp := make([]lineResponse, 0, len(lines))
	for i := range lines {
		resp = append(resp, l.line(&lines[i]))
	}
	utilities.LogInfo("Lines listadas com sucesso - total: %d", len(resp))
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) CreateLineHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogDebug("Iniciando criação de nova line")
	user := currentUser(r)

	payload, err := models.DecodePayload(r.Body)
	if err != nil {
		utilities.LogError(err, "CreateLineHandler: Erro ao decodificar JSON da line")
		writeError(w, err)
		return
	}
	in, err := models.BindLineInput(payload, false)
	if err != nil {
		utilities.LogDebug("CreateLineHandler: Validação falhou: %v", err)
		writeError(w, err)
		return
	}

	line, err := h.db.CreateLine(r.Context(), user.ID, in)
	if err != nil {
		utilities.LogError(err, "CreateLineHandler: Erro ao criar line no banco de dados")
		writeError(w, err)
		return
	}

	utilities.LogInfo("Line criada com sucesso: %s (ID: %d, dono: %s)", line.Title, line.ID, user.Username)
	resp := h.links(r).line(line)
	writeCreated(w, resp.URL, resp)
}

func (h *Handler) GetLineHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	line, err := h.db.GetLine(r.Context(), id)
	if err != nil {
		utilities.LogDebug("GetLineHandler: line %d: %v", id, err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.links(r).line(line))
}

// UpdateLineHandler trata PUT (todos os campos obrigatórios) e PATCH (parcial).
func (h *Handler) UpdateLineHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogDebug("Iniciando atualização de line")
	user := currentUser(r)

	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	existing, err := h.db.GetLine(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if !hasObjectPermission(r, user, existing.OwnerID) {
		utilities.LogInfo("UpdateLineHandler: usuário %s não é dono da line %d", user.Username, id)
		writeError(w, ErrPermissionDenied)
		return
	}

	payload, err := models.DecodePayload(r.Body)
	if err != nil {
		writeError(w, err)
		return
	}
	in, err := models.BindLineInput(payload, r.Method == http.MethodPatch)
	if err != nil {
		writeError(w, err)
		return
	}

	line, err := h.db.UpdateLine(r.Context(), id, in)
	if err != nil {
		utilities.LogError(err, "UpdateLineHandler: Erro ao atualizar line no banco de dados")
		writeError(w, err)
		return
	}

	utilities.LogInfo("Line atualizada com sucesso: %d", id)
	writeJSON(w, http.StatusOK, h.links(r).line(line))
}

func (h *Handler) DeleteLineHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogDebug("Iniciando exclusão de line")
	user := currentUser(r)

	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	existing, err := h.db.GetLine(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if !hasObjectPermission(r, user, existing.OwnerID) {
		utilities.LogInfo("DeleteLineHandler: usuário %s não é dono da line %d", user.Username, id)
		writeError(w, ErrPermissionDenied)
		return
	}

	if err := h.db.DeleteLine(r.Context(), id); err != nil {
		utilities.LogError(err, "DeleteLineHandler: Erro ao excluir line do banco de dados")
		writeError(w, err)
		return
	}

	utilities.LogInfo("Line excluída com sucesso: %d", id)
	w.WriteHeader(http.StatusNoContent)
}
