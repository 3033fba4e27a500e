package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"lines-api/database"
	"lines-api/models"
	"lines-api/utilities"
)

// APIError é um erro com status HTTP, respondido como {"detail": "..."}.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string { return e.Detail }

var (
	ErrAuthenticationRequired = &APIError{http.StatusUnauthorized, "Authentication credentials were not provided."}
	ErrInvalidToken           = &APIError{http.StatusUnauthorized, "Invalid token."}
	ErrInactiveUser           = &APIError{http.StatusUnauthorized, "User inactive or deleted."}
	ErrPermissionDenied       = &APIError{http.StatusForbidden, "You do not have permission to perform this action."}
	ErrNotFound               = &APIError{http.StatusNotFound, "Not found."}
	errServer                 = &APIError{http.StatusInternalServerError, "A server error occurred."}
)

type detailResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		utilities.LogError(err, "Erro ao codificar resposta JSON")
	}
}

// writeError traduz err para a resposta HTTP correspondente. Erros não
// classificados viram 500 e são registrados.
func writeError(w http.ResponseWriter, err error) {
	var apiErr *APIError
	var verrs models.ValidationErrors
	var parseErr *models.ParseError

	switch {
	case errors.As(err, &apiErr):
	case errors.Is(err, database.ErrNotFound):
		apiErr = ErrNotFound
	case errors.As(err, &verrs):
		writeJSON(w, http.StatusBadRequest, verrs)
		return
	case errors.As(err, &parseErr):
		apiErr = &APIError{http.StatusBadRequest, parseErr.Error()}
	default:
		utilities.LogError(err, "Erro interno")
		apiErr = errServer
	}

	if apiErr.Status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", `Bearer realm="api"`)
	}
	writeJSON(w, apiErr.Status, detailResponse{Detail: apiErr.Detail})
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	writeError(w, ErrNotFound)
}

func methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	writeError(w, &APIError{http.StatusMethodNotAllowed, fmt.Sprintf("Method %q not allowed.", r.Method)})
}
