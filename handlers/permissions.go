package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"lines-api/models"
)

// hasObjectPermission: leitura liberada para qualquer usuário autenticado,
// escrita só para o dono do registro.
func hasObjectPermission(r *http.Request, user *models.User, ownerID int64) bool {
	switch r.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return user != nil && user.ID == ownerID
}

// restrictLine junta os erros de validação do payload com a checagem do
// campo "line": só são aceitas Lines do próprio requisitante.
func (h *Handler) restrictLine(ctx context.Context, user *models.User, lineID *int64, bindErr error) error {
	errs := models.ValidationErrors{}
	if bindErr != nil {
		if !errors.As(bindErr, &errs) {
			return bindErr
		}
	}
	if lineID == nil {
		return errs.OrNil()
	}

	owned, err := h.db.IsLineOwner(ctx, *lineID, user.ID)
	if err != nil {
		return err
	}
	if !owned {
		errs.Add("line", fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", *lineID))
	}
	return errs.OrNil()
}
