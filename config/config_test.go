package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"SERVER_PORT", "CORS_ALLOWED_ORIGINS", "DB_DRIVER", "DB_HOST", "DB_PORT",
		"DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE", "SQLITE_PATH",
		"AUTH_PROVIDER", "FIREBASE_CREDENTIALS_PATH", "JWT_SECRET", "DEBUG",
	} {
		t.Setenv(k, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_NAME", "lines")
	t.Setenv("JWT_SECRET", "s3cr3t")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}

	want := &Config{
		ServerPort:         "8080",
		CORSAllowedOrigins: []string{"*"},
		Database: Database{
			Driver:     DriverPostgres,
			Host:       "localhost",
			Port:       "5432",
			Name:       "lines",
			SSLMode:    "disable",
			SQLitePath: "lines.db",
		},
		AuthProvider: AuthJWT,
		JWTSecret:    "s3cr3t",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestFromEnvFirebaseSelectedByCredentials(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", DriverSQLite)
	t.Setenv("FIREBASE_CREDENTIALS_PATH", "/etc/firebase.json")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("DEBUG", "true")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.AuthProvider != AuthFirebase {
		t.Errorf("AuthProvider = %q, want %q", cfg.AuthProvider, AuthFirebase)
	}
	if !cfg.Debug {
		t.Error("Debug = false, want true")
	}
	if diff := cmp.Diff([]string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins); diff != "" {
		t.Errorf("origins mismatch (-want +got):\n%s", diff)
	}
}

func TestFromEnvRejectsInvalidCombinations(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"postgres without name", map[string]string{"JWT_SECRET": "x"}},
		{"unknown driver", map[string]string{"DB_DRIVER": "mysql", "JWT_SECRET": "x"}},
		{"jwt without secret", map[string]string{"DB_DRIVER": DriverSQLite, "AUTH_PROVIDER": AuthJWT}},
		{"firebase without credentials", map[string]string{"DB_DRIVER": DriverSQLite, "AUTH_PROVIDER": AuthFirebase}},
		{"unknown provider", map[string]string{"DB_DRIVER": DriverSQLite, "AUTH_PROVIDER": "saml"}},
		{"bad port", map[string]string{"DB_DRIVER": DriverSQLite, "JWT_SECRET": "x", "SERVER_PORT": "http"}},
		{"bad debug", map[string]string{"DB_DRIVER": DriverSQLite, "JWT_SECRET": "x", "DEBUG": "maybe"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := FromEnv(); err == nil {
				t.Fatal("FromEnv succeeded, want error")
			}
		})
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("SQLITE_PATH")
	os.Unsetenv("DB_DRIVER")
	os.Unsetenv("JWT_SECRET")

	path := filepath.Join(t.TempDir(), ".env")
	content := "DB_DRIVER=sqlite3\nSQLITE_PATH=/tmp/from-dotenv.db\nJWT_SECRET=dotenv\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		os.Unsetenv("SQLITE_PATH")
		os.Unsetenv("DB_DRIVER")
		os.Unsetenv("JWT_SECRET")
	})

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.SQLitePath != "/tmp/from-dotenv.db" || cfg.JWTSecret != "dotenv" {
		t.Errorf("dotenv values not applied: %+v", cfg)
	}
}

func TestLoadToleratesMissingFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", DriverSQLite)
	t.Setenv("JWT_SECRET", "x")

	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("Load: %v", err)
	}
}
