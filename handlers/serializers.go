package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"lines-api/models"
	"lines-api/utilities"

	"github.com/gorilla/mux"
)

type userResponse struct {
	URL      string   `json:"url"`
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Lines    []string `json:"lines"`
}

type lineResponse struct {
	URL           string    `json:"url"`
	ID            int64     `json:"id"`
	Owner         string    `json:"owner"`
	Created       time.Time `json:"created"`
	Modified      time.Time `json:"modified"`
	Title         string    `json:"title"`
	Announcements []string  `json:"announcements"`
	Events        []string  `json:"events"`
	Tasks         []string  `json:"tasks"`
}

type announcementResponse struct {
	URL      string    `json:"url"`
	ID       int64     `json:"id"`
	Owner    string    `json:"owner"`
	Created  time.Time `json:"created"`
	Modified time.Time `json:"modified"`
	Title    string    `json:"title"`
	Desc     string    `json:"desc"`
	Line     int64     `json:"line"`
}

type eventResponse struct {
	URL      string    `json:"url"`
	ID       int64     `json:"id"`
	Owner    string    `json:"owner"`
	Created  time.Time `json:"created"`
	Modified time.Time `json:"modified"`
	Title    string    `json:"title"`
	Desc     string    `json:"desc"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Line     int64     `json:"line"`
}

type taskResponse struct {
	URL      string     `json:"url"`
	ID       int64      `json:"id"`
	Owner    string     `json:"owner"`
	Created  time.Time  `json:"created"`
	Modified time.Time  `json:"modified"`
	Title    string     `json:"title"`
	Desc     string     `json:"desc"`
	Due      *time.Time `json:"due"`
	Line     int64      `json:"line"`
}

// linker monta URLs absolutas a partir das rotas nomeadas do mux.
type linker struct {
	h    *Handler
	base url.URL
}

func (h *Handler) links(r *http.Request) linker {
	scheme := r.URL.Scheme
	if scheme == "" {
		scheme = "http"
		if r.TLS != nil {
			scheme = "https"
		}
	}
	return linker{h: h, base: url.URL{Scheme: scheme, Host: r.Host}}
}

func (l linker) route(name string, pairs ...string) string {
	u, err := l.h.router.Get(name).URL(pairs...)
	if err != nil {
		utilities.LogError(err, "Erro ao montar URL da rota "+name)
		return ""
	}
	abs := l.base
	abs.Path = u.Path
	return abs.String()
}

func (l linker) detail(name string, id int64) string {
	return l.route(name, "id", strconv.FormatInt(id, 10))
}

func (l linker) details(name string, ids []int64) []string {
	urls := make([]string, 0, len(ids))
	for _, id := range ids {
		urls = append(urls, l.detail(name, id))
	}
	return urls
}

func (l linker) user(u *models.User) userResponse {
	return userResponse{
		URL:      l.detail("user-detail", u.ID),
		ID:       u.ID,
		Username: u.Username,
		Lines:    l.details("line-detail", u.LineIDs),
	}
}

func (l linker) line(m *models.Line) lineResponse {
	return lineResponse{
		URL:           l.detail("line-detail", m.ID),
		ID:            m.ID,
		Owner:         m.OwnerUsername,
		Created:       m.Created,
		Modified:      m.Modified,
		Title:         m.Title,
		Announcements: l.details("announcement-detail", m.AnnouncementIDs),
		Events:        l.details("event-detail", m.EventIDs),
		Tasks:         l.details("task-detail", m.TaskIDs),
	}
}

func (l linker) announcement(m *models.Announcement) announcementResponse {
	return announcementResponse{
		URL:      l.detail("announcement-detail", m.ID),
		ID:       m.ID,
		Owner:    m.OwnerUsername,
		Created:  m.Created,
		Modified: m.Modified,
		Title:    m.Title,
		Desc:     m.Desc,
		Line:     m.LineID,
	}
}

func (l linker) event(m *models.Event) eventResponse {
	return eventResponse{
		URL:      l.detail("event-detail", m.ID),
		ID:       m.ID,
		Owner:    m.OwnerUsername,
		Created:  m.Created,
		Modified: m.Modified,
		Title:    m.Title,
		Desc:     m.Desc,
		Start:    m.Start,
		End:      m.End,
		Line:     m.LineID,
	}
}

func (l linker) task(m *models.Task) taskResponse {
	return taskResponse{
		URL:      l.detail("task-detail", m.ID),
		ID:       m.ID,
		Owner:    m.OwnerUsername,
		Created:  m.Created,
		Modified: m.Modified,
		Title:    m.Title,
		Desc:     m.Desc,
		Due:      m.Due,
		Line:     m.LineID,
	}
}

// writeCreated responde 201 com o registro e o cabeçalho Location.
func writeCreated(w http.ResponseWriter, location string, v interface{}) {
	w.Header().Set("Location", location)
	writeJSON(w, http.StatusCreated, v)
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		return 0, ErrNotFound
	}
	return id, nil
}
