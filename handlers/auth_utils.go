package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"lines-api/utilities"
)

// AuthMiddleware exige um token Bearer válido, resolve o usuário local
// (criando-o no primeiro acesso) e o coloca no contexto da requisição.
func (h *Handler) AuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			utilities.LogDebug("Requisição sem credenciais: %s %s", r.Method, r.URL.Path)
			writeError(w, ErrAuthenticationRequired)
			return
		}

		ident, err := h.auth.Authenticate(r.Context(), token)
		if err != nil {
			utilities.LogError(err, "Token inválido")
			writeError(w, ErrInvalidToken)
			return
		}

		user, err := h.db.EnsureUser(r.Context(), ident)
		if err != nil {
			utilities.LogError(err, "Erro ao sincronizar usuário com banco de dados local")
			writeError(w, err)
			return
		}
		if !user.IsActive {
			utilities.LogError(fmt.Errorf("usuário %d inativo", user.ID), "Autenticação falhou")
			writeError(w, ErrInactiveUser)
			return
		}

		utilities.LogDebug("Usuário autenticado: %s (ID: %d)", user.Username, user.ID)
		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// bearerToken extrai o token de "Authorization: Bearer <token>". Outros
// esquemas são tratados como ausência de credenciais.
func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(strings.TrimSpace(authHeader), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
