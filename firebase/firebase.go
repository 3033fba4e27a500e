package firebase

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"lines-api/utilities"
)

// InitializeFirebase cria o app do Admin SDK a partir do arquivo de
// credenciais da conta de serviço.
func InitializeFirebase(ctx context.Context, credentialsPath string) (*firebase.App, error) {
	if credentialsPath == "" {
		return nil, fmt.Errorf("FIREBASE_CREDENTIALS_PATH não está definido nas variáveis de ambiente")
	}

	utilities.LogInfo("Inicializando conexão com o Firebase usando arquivo: %s", credentialsPath)
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("erro ao inicializar Firebase: %w", err)
	}

	utilities.LogInfo("Firebase inicializado com sucesso!")
	return app, nil
}

// NewVerifierFromCredentials inicializa o app e devolve o verificador de ID tokens.
func NewVerifierFromCredentials(ctx context.Context, credentialsPath string) (*Verifier, error) {
	app, err := InitializeFirebase(ctx, credentialsPath)
	if err != nil {
		return nil, err
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao obter cliente de Auth: %w", err)
	}
	return NewVerifier(client), nil
}
