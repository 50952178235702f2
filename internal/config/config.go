package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
// Following 12-factor app principles, all config is loaded from environment variables
type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	LogLevel string

	// SecretKey signs the flash-message cookie. The default is a development
	// fallback; set SECRET_KEY in any real deployment.
	SecretKey string

	// PublicBaseURL, when set, is used as the base of the URLs encoded into
	// QR codes (e.g. "https://clearlabel.example.com"). When empty the base
	// is derived from the incoming request.
	PublicBaseURL string
}

type ServerConfig struct {
	Port            string
	Host            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

type StoreConfig struct {
	// DataDir is scanned for products*.json files on every store access.
	DataDir string
	// FeedbackFile is the JSON array all feedback entries are appended to.
	FeedbackFile string
	// StaticDir is served under /static; QR images land in its qrcodes/
	// subdirectory.
	StaticDir string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			ReadTimeout:     getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout:    getEnvAsInt("WRITE_TIMEOUT", 15),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 30),
		},
		Store: StoreConfig{
			DataDir:      getEnv("DATA_DIR", "data"),
			FeedbackFile: getEnv("FEEDBACK_FILE", "data/feedbacks.json"),
			StaticDir:    getEnv("STATIC_DIR", "static"),
		},
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		SecretKey:     getEnv("SECRET_KEY", "dev-key-for-prototype"),
		PublicBaseURL: strings.TrimSuffix(getEnv("PUBLIC_BASE_URL", ""), "/"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Store.DataDir == "" {
		return fmt.Errorf("DATA_DIR is required")
	}

	if c.Store.FeedbackFile == "" {
		return fmt.Errorf("FEEDBACK_FILE is required")
	}

	if c.SecretKey == "" {
		return fmt.Errorf("SECRET_KEY must not be empty")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
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

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
