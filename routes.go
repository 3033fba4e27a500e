package main

import (
	"log"
	"net/http"

	"lines-api/config"
	"lines-api/handlers"
	"lines-api/utilities"

	gorillahandlers "github.com/gorilla/handlers"
)

// LoadRoutes monta a pilha HTTP (recuperação de panics, cabeçalhos de proxy,
// CORS) em volta das rotas da API e inicia o servidor.
func LoadRoutes(cfg *config.Config, h *handlers.Handler) {
	handler := buildHandler(cfg, h)
	utilities.LogInfo("Servidor iniciado na porta %s", cfg.ServerPort)
	log.Fatal(http.ListenAndServe(":"+cfg.ServerPort, handler))
}

func buildHandler(cfg *config.Config, h *handlers.Handler) http.Handler {
	headers := gorillahandlers.AllowedHeaders([]string{"X-Requested-With", "Content-Type", "Authorization", "X-Request-ID"})
	methods := gorillahandlers.AllowedMethods([]string{"GET", "HEAD", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"})
	exposed := gorillahandlers.ExposedHeaders([]string{"Location", "X-Request-ID"})

	if len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*" {
		utilities.LogInfo("CORS_ALLOWED_ORIGINS não definida, permitindo todas as origens ('*'). Defina para maior segurança em produção.")
	}
	origins := gorillahandlers.AllowedOrigins(cfg.CORSAllowedOrigins)
	utilities.LogInfo("Configurando CORS com origens permitidas: %v", cfg.CORSAllowedOrigins)

	handler := gorillahandlers.CORS(headers, methods, origins, exposed)(h.Routes())
	handler = gorillahandlers.ProxyHeaders(handler)
	handler = gorillahandlers.RecoveryHandler(
		gorillahandlers.RecoveryLogger(utilities.ErrorLogger),
		gorillahandlers.PrintRecoveryStack(true),
	)(handler)
	return handler
}
