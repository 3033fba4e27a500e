package handlers

import (
	"net/http"

	"lines-api/models"
	"lines-api/utilities"
)

func (h *Handler) ListTasksHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogDebug("Iniciando listagem de tarefas")

	tasks, err := h.db.ListTasks(r.Context())
	if err != nil {
		utilities.LogError(err, "ListTasksHandler: Erro ao buscar tarefas no banco de dados")
		writeError(w, err)
		return
	}

	l := h.links(r)
	resp := make([]taskResponse, 0, len(tasks))
	for i := range tasks {
		resp = append(resp, l.task(&tasks[i]))
	}
	utilities.LogInfo("Tarefas listadas com sucesso - total: %d", len(resp))
	writeJSON(w, http.StatusOK, resp)
}

// CreateTaskHandler cria uma tarefa em uma Line do próprio usuário.
func (h *Handler) CreateTaskHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogDebug("Iniciando criação de nova tarefa")
	user := currentUser(r)

	payload, err := models.DecodePayload(r.Body)
	if err != nil {
		utilities.LogError(err, "CreateTaskHandler: Erro ao decodificar JSON da tarefa")
		writeError(w, err)
		return
	}
	in, err := models.BindTaskInput(payload, false)
	if err = h.restrictLine(r.Context(), user, in.LineID, err); err != nil {
		utilities.LogDebug("CreateTaskHandler: Validação falhou: %v", err)
		writeError(w, err)
		return
	}

	task, err := h.db.CreateTask(r.Context(), user.ID, in)
	if err != nil {
		utilities.LogError(err, "CreateTaskHandler: Erro ao inserir tarefa no banco de dados")
		writeError(w, err)
		return
	}

	utilities.LogInfo("Tarefa criada com sucesso: %s (ID: %d)", task.Title, task.ID)
	resp := h.links(r).task(task)
	writeCreated(w, resp.URL, resp)
}

func (h *Handler) GetTaskHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	task, err := h.db.GetTask(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.links(r).task(task))
}

func (h *Handler) UpdateTaskHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogDebug("Iniciando atualização de tarefa")
	user := currentUser(r)

	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	existing, err := h.db.GetTask(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if !hasObjectPermission(r, user, existing.OwnerID) {
		utilities.LogInfo("UpdateTaskHandler: usuário %s não é dono da tarefa %d", user.Username, id)
		writeError(w, ErrPermissionDenied)
		return
	}

	payload, err := models.DecodePayload(r.Body)
	if err != nil {
		writeError(w, err)
		return
	}
	in, err := models.BindTaskInput(payload, r.Method == http.MethodPatch)
	if err = h.restrictLine(r.Context(), user, in.LineID, err); err != nil {
		writeError(w, err)
		return
	}

	task, err := h.db.UpdateTask(r.Context(), id, in)
	if err != nil {
		utilities.LogError(err, "UpdateTaskHandler: Erro ao atualizar tarefa no banco de dados")
		writeError(w, err)
		return
	}

	utilities.LogInfo("Tarefa atualizada com sucesso: %d", id)
	writeJSON(w, http.StatusOK, h.links(r).task(task))
}

func (h *Handler) DeleteTaskHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogDebug("Iniciando exclusão de tarefa")
	user := currentUser(r)

	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	existing, err := h.db.GetTask(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if !hasObjectPermission(r, user, existing.OwnerID) {
		utilities.LogInfo("DeleteTaskHandler: usuário %s não é dono da tarefa %d", user.Username, id)
		writeError(w, ErrPermissionDenied)
		return
	}

	if err := h.db.DeleteTask(r.Context(), id); err != nil {
		utilities.LogError(err, "DeleteTaskHandler: Erro ao excluir tarefa do banco de dados")
		writeError(w, err)
		return
	}

	utilities.LogInfo("Tarefa excluída com sucesso: %d", id)
	w.WriteHeader(http.StatusNoContent)
}
