package utilities

import (
	"context"
	"errors"
	"fmt"

	"lines-api/models"

	"github.com/golang-jwt/jwt/v5"
)

// JWTVerifier valida tokens HS256 emitidos por um provedor externo que
// compartilha o segredo JWT_SECRET.
type JWTVerifier struct {
	secret []byte
}

func NewJWTVerifier(secret string) (*JWTVerifier, error) {
	if secret == "" {
		return nil, errors.New("segredo JWT vazio")
	}
	return &JWTVerifier{secret: []byte(secret)}, nil
}

// Authenticate verifica assinatura e expiração e extrai a identidade: "sub"
// (ou "user_id") e "username".
func (v *JWTVerifier) Authenticate(_ context.Context, tokenString string) (models.Identity, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Identity{}, fmt.Errorf("erro ao verificar token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.Identity{}, errors.New("claims do token inválidas")
	}

	uid, _ := claims.GetSubject()
	if uid == "" {
		uid = claimString(claims["user_id"])
	}
	if uid == "" {
		return models.Identity{}, errors.New("token sem sujeito")
	}

	username := claimString(claims["username"])
	if username == "" {
		username = uid
	}
	return models.Identity{UID: uid, Username: username}, nil
}

func claimString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return fmt.Sprintf("%.0f", t)
	}
	return ""
}
