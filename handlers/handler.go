package handlers

import (
	"context"
	"net/http"

	"lines-api/database"
	"lines-api/models"

	"github.com/gorilla/mux"
)

// Authenticator transforma o token Bearer de uma requisição em uma identidade.
// Implementado por firebase.Verifier e utilities.JWTVerifier.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (models.Identity, error)
}

// Handler reúne as dependências das rotas da API.
type Handler struct {
	db     *database.DB
	auth   Authenticator
	router *mux.Router
}

func New(db *database.DB, auth Authenticator) *Handler {
	h := &Handler{db: db, auth: auth}
	h.router = h.newRouter()
	return h
}

type contextKey string

const userContextKey contextKey = "user"

// currentUser devolve o usuário colocado no contexto pelo AuthMiddleware.
func currentUser(r *http.Request) *models.User {
	u, _ := r.Context().Value(userContextKey).(*models.User)
	return u
}
