package main

import (
	"context"
	"fmt"
	"log"

	"lines-api/config"
	"lines-api/database"
	"lines-api/firebase"
	"lines-api/handlers"
	"lines-api/utilities"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Erro ao carregar configuração: %v", err)
	}
	utilities.InitLogger(cfg.Debug)

	ctx := context.Background()
	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("Erro ao conectar ao banco de dados: %v", err)
	}
	defer db.Close()

	authenticator, err := newAuthenticator(ctx, cfg)
	if err != nil {
		log.Fatalf("Erro ao configurar autenticação: %v", err)
	}

	LoadRoutes(cfg, handlers.New(db, authenticator))
}

func newAuthenticator(ctx context.Context, cfg *config.Config) (handlers.Authenticator, error) {
	switch cfg.AuthProvider {
	case config.AuthFirebase:
		return firebase.NewVerifierFromCredentials(ctx, cfg.FirebaseCredentials)
	case config.AuthJWT:
		return utilities.NewJWTVerifier(cfg.JWTSecret)
	}
	return nil, fmt.Errorf("provedor de autenticação desconhecido: %q", cfg.AuthProvider)
}
