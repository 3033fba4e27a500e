package handlers

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

// Routes devolve o roteador completo da API, com logging de todas as
// requisições (inclusive 404 e 405).
func (h *Handler) Routes() http.Handler {
	return LoggingMiddleware(h.router)
}

func (h *Handler) newRouter() *mux.Router {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(notFoundHandler)
	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowedHandler)

	read := []string{http.MethodGet, http.MethodHead}
	write := []string{http.MethodPut, http.MethodPatch}
	list := []string{http.MethodGet, http.MethodHead, http.MethodPost}
	detail := []string{http.MethodGet, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodDelete}

	// --- Raiz pública ---
	r.HandleFunc("/", h.APIRootHandler).Methods(read...).Name("api-root")
	r.HandleFunc("/", optionsHandler("Api Root", read...)).Methods(http.MethodOptions)

	// --- Usuários (somente leitura) ---
	r.HandleFunc("/users/", h.AuthMiddleware(h.ListUsersHandler)).Methods(read...).Name("user-list")
	r.HandleFunc("/users/{id:[0-9]+}/", h.AuthMiddleware(h.GetUserHandler)).Methods(read...).Name("user-detail")
	r.HandleFunc("/users/", h.AuthMiddleware(optionsHandler("User List", read...))).Methods(http.MethodOptions)
	r.HandleFunc("/users/{id:[0-9]+}/", h.AuthMiddleware(optionsHandler("User Instance", read...))).Methods(http.MethodOptions)

	// --- Lines ---
	r.HandleFunc("/lines/", h.AuthMiddleware(h.ListLinesHandler)).Methods(read...).Name("line-list")
	r.HandleFunc("/lines/", h.AuthMiddleware(h.CreateLineHandler)).Methods(http.MethodPost)
	r.HandleFunc("/lines/{id:[0-9]+}/", h.AuthMiddleware(h.GetLineHandler)).Methods(read...).Name("line-detail")
	r.HandleFunc("/lines/{id:[0-9]+}/", h.AuthMiddleware(h.UpdateLineHandler)).Methods(write...)
	r.HandleFunc("/lines/{id:[0-9]+}/", h.AuthMiddleware(h.DeleteLineHandler)).Methods(http.MethodDelete)
	r.HandleFunc("/lines/", h.AuthMiddleware(optionsHandler("Line List", list...))).Methods(http.MethodOptions)
	r.HandleFunc("/lines/{id:[0-9]+}/", h.AuthMiddleware(optionsHandler("Line Instance", detail...))).Methods(http.MethodOptions)

	// --- Anúncios ---
	r.HandleFunc("/announcements/", h.AuthMiddleware(h.ListAnnouncementsHandler)).Methods(read...).Name("announcement-list")
	r.HandleFunc("/announcements/", h.AuthMiddleware(h.CreateAnnouncementHandler)).Methods(http.MethodPost)
	r.HandleFunc("/announcements/{id:[0-9]+}/", h.AuthMiddleware(h.GetAnnouncementHandler)).Methods(read...).Name("announcement-detail")
	r.HandleFunc("/announcements/{id:[0-9]+}/", h.AuthMiddleware(h.UpdateAnnouncementHandler)).Methods(write...)
	r.HandleFunc("/announcements/{id:[0-9]+}/", h.AuthMiddleware(h.DeleteAnnouncementHandler)).Methods(http.MethodDelete)
	r.HandleFunc("/announcements/", h.AuthMiddleware(optionsHandler("Announcement List", list...))).Methods(http.MethodOptions)
	r.HandleFunc("/announcements/{id:[0-9]+}/", h.AuthMiddleware(optionsHandler("Announcement Instance", detail...))).Methods(http.MethodOptions)

	// --- Eventos ---
	r.HandleFunc("/events/", h.AuthMiddleware(h.ListEventsHandler)).Methods(read...).Name("event-list")
	r.HandleFunc("/events/", h.AuthMiddleware(h.CreateEventHandler)).Methods(http.MethodPost)
	r.HandleFunc("/events/{id:[0-9]+}/", h.AuthMiddleware(h.GetEventHandler)).Methods(read...).Name("event-detail")
	r.HandleFunc("/events/{id:[0-9]+}/", h.AuthMiddleware(h.UpdateEventHandler)).Methods(write...)
	r.HandleFunc("/events/{id:[0-9]+}/", h.AuthMiddleware(h.DeleteEventHandler)).Methods(http.MethodDelete)
	r.HandleFunc("/events/", h.AuthMiddleware(optionsHandler("Event List", list...))).Methods(http.MethodOptions)
	r.HandleFunc("/events/{id:[0-9]+}/", h.AuthMiddleware(optionsHandler("Event Instance", detail...))).Methods(http.MethodOptions)

	// --- Tarefas ---
	r.HandleFunc("/tasks/", h.AuthMiddleware(h.ListTasksHandler)).Methods(read...).Name("task-list")
	r.HandleFunc("/tasks/", h.AuthMiddleware(h.CreateTaskHandler)).Methods(http.MethodPost)
	r.HandleFunc("/tasks/{id:[0-9]+}/", h.AuthMiddleware(h.GetTaskHandler)).Methods(read...).Name("task-detail")
	r.HandleFunc("/tasks/{id:[0-9]+}/", h.AuthMiddleware(h.UpdateTaskHandler)).Methods(write...)
	r.HandleFunc("/tasks/{id:[0-9]+}/", h.AuthMiddleware(h.DeleteTaskHandler)).Methods(http.MethodDelete)
	r.HandleFunc("/tasks/", h.AuthMiddleware(optionsHandler("Task List", list...))).Methods(http.MethodOptions)
	r.HandleFunc("/tasks/{id:[0-9]+}/", h.AuthMiddleware(optionsHandler("Task Instance", detail...))).Methods(http.MethodOptions)

	return r
}

type optionsResponse struct {
	Name    string   `json:"name"`
	Renders []string `json:"renders"`
	Parses  []string `json:"parses"`
}

// optionsHandler responde OPTIONS com os métodos aceitos pelo recurso.
func optionsHandler(name string, methods ...string) http.HandlerFunc {
	allow := strings.Join(methods, ", ") + ", " + http.MethodOptions
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", allow)
		writeJSON(w, http.StatusOK, optionsResponse{
			Name:    name,
			Renders: []string{"application/json"},
			Parses:  []string{"application/json"},
		})
	}
}
