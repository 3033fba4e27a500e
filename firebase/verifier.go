package firebase

import (
	"context"
	"fmt"
	"strings"

	"firebase.google.com/go/v4/auth"

	"lines-api/models"
)

// idTokenVerifier é a parte do *auth.Client usada aqui.
type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// Verifier autentica requisições com ID tokens do Firebase.
type Verifier struct {
	client idTokenVerifier
}

func NewVerifier(client idTokenVerifier) *Verifier {
	return &Verifier{client: client}
}

func (v *Verifier) Authenticate(ctx context.Context, idToken string) (models.Identity, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return models.Identity{}, fmt.Errorf("erro ao verificar token: %w", err)
	}
	return IdentityFromToken(token), nil
}

// IdentityFromToken usa o claim "name", senão a parte local do "email",
// senão o próprio UID como nome de usuário.
func IdentityFromToken(token *auth.Token) models.Identity {
	ident := models.Identity{UID: token.UID}

	if name, _ := token.Claims["name"].(string); strings.TrimSpace(name) != "" {
		ident.Username = strings.TrimSpace(name)
	} else if email, _ := token.Claims["email"].(string); email != "" {
		local, _, _ := strings.Cut(strings.ToLower(strings.TrimSpace(email)), "@")
		ident.Username = local
	}
	if ident.Username == "" {
		ident.Username = token.UID
	}
	return ident
}
