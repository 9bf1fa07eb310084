package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage backend names accepted in STORAGE_BACKEND
const (
	BackendFile      = "file"
	BackendSurrealDB = "surrealdb"
)

// fallbackSecret is used when SECRET_KEY is unset. Known weakness: it lets
// development setups run without configuration, and must never back a
// deployment claiming security.
const fallbackSecret = "fallback_secret_key"

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	JWT     JWTConfig
	Admin   AdminConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port           string
	Env            string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	AllowedOrigins []string
}

// StorageConfig selects and configures the repository backend
type StorageConfig struct {
	Backend  string
	DataFile string
	Database DatabaseConfig
}

// DatabaseConfig holds document-store connection settings
type DatabaseConfig struct {
	Host           string
	Port           string
	User           string
	Password       string
	Namespace      string
	Database       string
	ConnectTimeout time.Duration
}

// JWTConfig holds token signing settings
type JWTConfig struct {
	Secret         string
	Issuer         string
	ExpirationMins int
}

// AdminConfig holds the single administrator identity. The password arrives
// as plaintext from the environment and is hashed once at startup; it is
// never persisted.
type AdminConfig struct {
	Username string
	Password string
}

// Load reads configuration from the environment, consulting a .env file
// first when one exists
func Load() (*Config, error) {
	// Missing .env is fine; real environments set variables directly.
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port:           getEnv("SERVER_PORT", "5000"),
			Env:            getEnv("SERVER_ENV", "development"),
			ReadTimeout:    getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:   getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			AllowedOrigins: getSliceEnv("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Storage: StorageConfig{
			Backend:  getEnv("STORAGE_BACKEND", BackendFile),
			DataFile: getEnv("DATA_FILE", "./data/raidData.json"),
			Database: DatabaseConfig{
				Host:           getEnv("DB_HOST", "localhost"),
				Port:           getEnv("DB_PORT", "8000"),
				User:           getEnv("DB_USER", "root"),
				Password:       getEnv("DB_PASSWORD", "root"),
				Namespace:      getEnv("DB_NAMESPACE", "guild"),
				Database:       getEnv("DB_DATABASE", "dw-data"),
				ConnectTimeout: getDurationEnv("DB_CONNECT_TIMEOUT", 10*time.Second),
			},
		},
		JWT: JWTConfig{
			Secret:         getEnv("SECRET_KEY", fallbackSecret),
			Issuer:         getEnv("JWT_ISSUER", "guild-backend"),
			ExpirationMins: getIntEnv("JWT_EXPIRATION_MINS", 60),
		},
		Admin: AdminConfig{
			Username: getEnv("ADMIN_USERNAME", ""),
			Password: getEnv("ADMIN_PASSWORD", ""),
		},
	}, nil
}

// UsingFallbackSecret reports whether tokens are signed with the built-in
// fallback constant rather than a configured secret
func (c *Config) UsingFallbackSecret() bool {
	return c.JWT.Secret == fallbackSecret
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// Validate checks that all required configuration values are present and
// valid. It returns an error describing all validation failures, or nil.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port == "" {
		errs = append(errs, errors.New("SERVER_PORT is required"))
	}

	// The admin identity is the only credential in the system; starting
	// without it would leave every write route unreachable.
	if c.Admin.Username == "" {
		errs = append(errs, errors.New("ADMIN_USERNAME is required"))
	}
	if c.Admin.Password == "" {
		errs = append(errs, errors.New("ADMIN_PASSWORD is required"))
	}

	switch c.Storage.Backend {
	case BackendFile:
		if c.Storage.DataFile == "" {
			errs = append(errs, errors.New("DATA_FILE is required for the file backend"))
		}
	case BackendSurrealDB:
		if c.Storage.Database.Host == "" {
			errs = append(errs, errors.New("DB_HOST is required for the surrealdb backend"))
		}
		if c.Storage.Database.Port == "" {
			errs = append(errs, errors.New("DB_PORT is required for the surrealdb backend"))
		}
		if c.Storage.Database.Namespace == "" {
			errs = append(errs, errors.New("DB_NAMESPACE is required for the surrealdb backend"))
		}
		if c.Storage.Database.Database == "" {
			errs = append(errs, errors.New("DB_DATABASE is required for the surrealdb backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("STORAGE_BACKEND must be '%s' or '%s', got '%s'",
			BackendFile, BackendSurrealDB, c.Storage.Backend))
	}

	if c.JWT.ExpirationMins <= 0 {
		errs = append(errs, errors.New("JWT_EXPIRATION_MINS must be positive"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getSliceEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}
