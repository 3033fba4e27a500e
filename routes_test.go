package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"lines-api/config"
	"lines-api/database"
	"lines-api/handlers"
	"lines-api/utilities"
)

func newTestStack(t *testing.T, origins ...string) http.Handler {
	t.Helper()
	utilities.SetOutput(io.Discard)

	db, err := database.ConnectSQLite(context.Background(), filepath.Join(t.TempDir(), "api.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	verifier, err := utilities.NewJWTVerifier("secret")
	if err != nil {
		t.Fatal(err)
	}
	cfg := &config.Config{ServerPort: "8080", CORSAllowedOrigins: origins}
	return buildHandler(cfg, handlers.New(db, verifier))
}

func TestCORSPreflight(t *testing.T) {
	stack := newTestStack(t, "https://app.example.com")

	tests := []struct {
		origin string
		want   string
	}{
		{"https://app.example.com", "https://app.example.com"},
		{"https://evil.example.com", ""},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodOptions, "/lines/", nil)
		req.Header.Set("Origin", tt.origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
		rec := httptest.NewRecorder()
		stack.ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.want {
			t.Errorf("origin %s: Access-Control-Allow-Origin = %q, want %q", tt.origin, got, tt.want)
		}
	}
}

func TestProxyHeadersShapeHyperlinks(t *testing.T) {
	stack := newTestStack(t, "*")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	req.Header.Set("X-Forwarded-Host", "api.example.org")
	rec := httptest.NewRecorder()
	stack.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; body: %s", rec.Code, rec.Body.String())
	}
	var root map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &root); err != nil {
		t.Fatal(err)
	}
	if got, want := root["lines"], "https://api.example.org/lines/"; got != want {
		t.Errorf("lines = %q, want %q", got, want)
	}
}
