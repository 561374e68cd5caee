package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

// Config holds every runtime setting for the idcard service. It is built
// once at startup and passed by reference; nothing mutates it afterwards.
type Config struct {
	Port        string
	DatabaseURL string

	JWTSecret      string
	SuperadminUser string
	SuperadminPass string

	UploadDir     string
	PublicBaseURL string

	AllowedOrigins []string
	RateLimit      int
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("IDCARD_SERVICE_PORT", "5000"),
		DatabaseURL: os.Getenv("POSTGRES_URL"),

		JWTSecret:      os.Getenv("JWT_SECRET_KEY"),
		SuperadminUser: os.Getenv("ADMIN_USERNAME"),
		SuperadminPass: os.Getenv("ADMIN_PASSWORD"),

		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:5000"),

		AllowedOrigins: splitOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:5173")),
		RateLimit:      getEnvInt("RATE_LIMIT", 100),
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("POSTGRES_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET_KEY is required")
	}

	cfg.PublicBaseURL = strings.TrimRight(cfg.PublicBaseURL, "/")

	return cfg, nil
}

// getEnv returns environment variable or default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
