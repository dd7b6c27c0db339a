package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	Env           string
	DBDriver      string
	DatabaseURL   string
	UploadFolder  string
	MaxUploadSize string
	LogLevel      string
	LogFormat     string
}

// Load reads configuration from the environment, after applying a .env file
// if one is present.
func Load() *Config {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		DBDriver:      strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
		DatabaseURL:   getEnv("DATABASE_URL", "app.db"),
		UploadFolder:  getEnv("UPLOAD_FOLDER", "uploads"),
		MaxUploadSize: getEnv("MAX_UPLOAD_SIZE", "16M"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", ""),
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "json"
		if cfg.IsDevelopment() {
			cfg.LogFormat = "console"
		}
	}
	return cfg
}

// IsDevelopment reports whether the service runs with development defaults
func (c *Config) IsDevelopment() bool {
	return c.Env == "development" || c.Env == "dev"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
