// Package config provides configuration for the application
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	Logging LoggingConfig
	CORS    CORSConfig
	// SeedData controls whether the startup fixture (admin user and sample
	// projects) is loaded into the in-memory store.
	SeedData bool
	// RateLimitPerMinute caps requests per client IP per minute.
	RateLimitPerMinute int
}

// ServerConfig holds server settings
type ServerConfig struct {
	Port int
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
	// File enables rotated file output when non-empty.
	File       string
	MaxSizeMB  int
	MaxBackups int
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	godotenv.Load()

	cfg := &Config{}

	// Server configuration
	serverPortStr := os.Getenv("SERVER_PORT")
	if serverPortStr == "" {
		serverPortStr = "8080" // default port
	}
	serverPort, err := strconv.Atoi(serverPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
	}
	cfg.Server.Port = serverPort

	// Logging configuration
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info" // default level
	}
	cfg.Logging.Level = logLevel

	cfg.Logging.File = os.Getenv("LOG_FILE") // optional, enables rotation

	logMaxSizeStr := os.Getenv("LOG_MAX_SIZE_MB")
	if logMaxSizeStr == "" {
		logMaxSizeStr = "50"
	}
	logMaxSize, err := strconv.Atoi(logMaxSizeStr)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_MAX_SIZE_MB: %w", err)
	}
	cfg.Logging.MaxSizeMB = logMaxSize

	logMaxBackupsStr := os.Getenv("LOG_MAX_BACKUPS")
	if logMaxBackupsStr == "" {
		logMaxBackupsStr = "3"
	}
	logMaxBackups, err := strconv.Atoi(logMaxBackupsStr)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_MAX_BACKUPS: %w", err)
	}
	cfg.Logging.MaxBackups = logMaxBackups

	// CORS configuration
	corsOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
	if corsOrigins == "" {
		// Default to allow all origins if not specified (for development)
		cfg.CORS.AllowedOrigins = []string{"*"}
	} else {
		// Parse comma-separated origins
		origins := strings.Split(corsOrigins, ",")
		cfg.CORS.AllowedOrigins = make([]string, 0, len(origins))
		for _, origin := range origins {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				cfg.CORS.AllowedOrigins = append(cfg.CORS.AllowedOrigins, origin)
			}
		}
		// If no valid origins found, default to allow all
		if len(cfg.CORS.AllowedOrigins) == 0 {
			cfg.CORS.AllowedOrigins = []string{"*"}
		}
	}

	// Seed data (default: enabled)
	seedStr := os.Getenv("SEED_DATA")
	if seedStr == "" {
		cfg.SeedData = true
	} else {
		seed, err := strconv.ParseBool(seedStr)
		if err != nil {
			return nil, fmt.Errorf("invalid SEED_DATA: %w", err)
		}
		cfg.SeedData = seed
	}

	// Rate limiting (default: 100 requests per minute per IP)
	rateLimitStr := os.Getenv("RATE_LIMIT_PER_MINUTE")
	if rateLimitStr == "" {
		rateLimitStr = "100"
	}
	rateLimit, err := strconv.Atoi(rateLimitStr)
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_PER_MINUTE: %w", err)
	}
	cfg.RateLimitPerMinute = rateLimit

	return cfg, nil
}
