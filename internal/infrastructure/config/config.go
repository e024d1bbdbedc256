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

// AppConfig encapsulates all runtime configuration knobs.
type AppConfig struct {
	App        AppSettings
	HTTP       HTTPSettings
	Log        LogSettings
	Deployment DeploymentSettings
	CORS       CORSSettings
}

type AppSettings struct {
	Name        string
	Environment string
}

type HTTPSettings struct {
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

type LogSettings struct {
	Level string
}

// DeploymentSettings holds the raw values injected by the container platform.
type DeploymentSettings struct {
	Revision string // CONTAINER_APP_REVISION, expected as <name>--<commit>
	Stage    string // DEPLOYMENT_STAGE, blue or green
}

type CORSSettings struct {
	AllowedOrigins   []string
	AllowCredentials bool
}

// Load resolves the application configuration from environment variables.
// It first attempts to load variables from a .env file if it exists.
// Environment variables set in the system take precedence over .env file values.
func Load() (AppConfig, error) {
	_ = godotenv.Load()

	cfg := AppConfig{
		App: AppSettings{
			Name:        getEnv("APP_NAME", "bluegreen-demo"),
			Environment: getEnv("APP_ENV", "production"),
		},
		HTTP: HTTPSettings{
			Port:            getEnvAsInt("PORT", 8000),
			ReadTimeout:     getEnvAsDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvAsDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:     getEnvAsDuration("HTTP_IDLE_TIMEOUT", 120*time.Second),
			ShutdownTimeout: getEnvAsDuration("HTTP_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Log: LogSettings{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Deployment: DeploymentSettings{
			Revision: getEnv("CONTAINER_APP_REVISION", "unknown"),
			Stage:    getEnv("DEPLOYMENT_STAGE", "unknown"),
		},
		CORS: CORSSettings{
			AllowedOrigins:   getEnvAsCSV("CORS_ALLOWED_ORIGINS", []string{"*"}),
			AllowCredentials: getEnvAsBool("CORS_ALLOW_CREDENTIALS", true),
		},
	}

	if cfg.HTTP.Port < 0 || cfg.HTTP.Port > 65535 {
		return cfg, errors.New("invalid config: PORT must be between 0 and 65535")
	}

	return cfg, nil
}

// Address returns the HTTP listen address, bound to all interfaces.
func (h HTTPSettings) Address() string {
	return fmt.Sprintf("0.0.0.0:%d", h.Port)
}

// AllowsAnyOrigin reports whether the wildcard origin is configured.
func (c CORSSettings) AllowsAnyOrigin() bool {
	for _, origin := range c.AllowedOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvAsCSV(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			values = append(values, trimmed)
		}
	}
	if len(values) == 0 {
		return fallback
	}
	return values
}
