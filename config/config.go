package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"

	AuthFirebase = "firebase"
	AuthJWT      = "jwt"
)

// Database descreve onde os registros ficam persistidos.
type Database struct {
	Driver     string
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	SQLitePath string
}

type Config struct {
	ServerPort          string
	CORSAllowedOrigins  []string
	Database            Database
	AuthProvider        string
	FirebaseCredentials string
	JWTSecret           string
	Debug               bool
}

// Load carrega o arquivo .env (se existir) e monta a configuração a partir
// das variáveis de ambiente.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("erro ao carregar o arquivo .env: %w", err)
	}
	return FromEnv()
}

// FromEnv lê a configuração apenas do ambiente do processo.
func FromEnv() (*Config, error) {
	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		Database: Database{
			Driver:     getEnv("DB_DRIVER", DriverPostgres),
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnv("DB_PORT", "5432"),
			User:       os.Getenv("DB_USER"),
			Password:   os.Getenv("DB_PASSWORD"),
			Name:       os.Getenv("DB_NAME"),
			SSLMode:    getEnv("DB_SSLMODE", "disable"),
			SQLitePath: getEnv("SQLITE_PATH", "lines.db"),
		},
		FirebaseCredentials: os.Getenv("FIREBASE_CREDENTIALS_PATH"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
	}

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
			}
		}
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"*"}
	}

	if v := os.Getenv("DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("DEBUG inválido %q: %w", v, err)
		}
		cfg.Debug = debug
	}

	cfg.AuthProvider = os.Getenv("AUTH_PROVIDER")
	if cfg.AuthProvider == "" {
		if cfg.FirebaseCredentials != "" {
			cfg.AuthProvider = AuthFirebase
		} else {
			cfg.AuthProvider = AuthJWT
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.Name == "" {
			return errors.New("DB_NAME é obrigatório para o driver postgres")
		}
	case DriverSQLite:
		if c.Database.SQLitePath == "" {
			return errors.New("SQLITE_PATH é obrigatório para o driver sqlite3")
		}
	default:
		return fmt.Errorf("DB_DRIVER desconhecido: %q", c.Database.Driver)
	}

	switch c.AuthProvider {
	case AuthFirebase:
		if c.FirebaseCredentials == "" {
			return errors.New("FIREBASE_CREDENTIALS_PATH não está definido nas variáveis de ambiente")
		}
	case AuthJWT:
		if c.JWTSecret == "" {
			return errors.New("JWT_SECRET não está definido nas variáveis de ambiente")
		}
	default:
		return fmt.Errorf("AUTH_PROVIDER desconhecido: %q", c.AuthProvider)
	}

	if _, err := strconv.Atoi(c.ServerPort); err != nil {
		return fmt.Errorf("SERVER_PORT inválida %q", c.ServerPort)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
