package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"cosmolive/database"

	log "github.com/sirupsen/logrus"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken string

	// Database configuration
	DatabaseURL  string
	DatabaseName string // Optional, replaces the database in DatabaseURL
	AutoMigrate  bool   // Apply pending migrations on startup

	// Bot configuration
	ArtistDirectoryFile string // Empty means the bundled directory

	// Logging
	LogLevel log.Level

	// Environment
	Environment string // "development", "production" or "test"
}

// GetDatabaseURL returns DatabaseURL with DatabaseName applied
func (c *Config) GetDatabaseURL() (string, error) {
	return database.ConstructDatabaseURL(c.DatabaseURL, c.DatabaseName)
}

// IsProduction reports whether the bot runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	config := &Config{
		// Discord
		DiscordToken: os.Getenv("DISCORD_TOKEN"),

		// Database
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),

		// Bot
		ArtistDirectoryFile: strings.TrimSpace(os.Getenv("ARTIST_DIRECTORY_FILE")),

		LogLevel: log.InfoLevel,

		// Environment
		Environment: os.Getenv("ENVIRONMENT"),
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", level, err)
		}
		config.LogLevel = parsed
	}

	if autoMigrate := os.Getenv("AUTO_MIGRATE"); autoMigrate != "" {
		parsed, err := strconv.ParseBool(autoMigrate)
		if err != nil {
			return nil, fmt.Errorf("invalid AUTO_MIGRATE %q: %w", autoMigrate, err)
		}
		config.AutoMigrate = parsed
	}

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		// Validate required configuration
		if config.DiscordToken == "" {
			return nil, fmt.Errorf("DISCORD_TOKEN is required")
		}
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
	}

	return config, nil
}

// LoadDatabaseURL reads only the database settings, for the migrate subcommand
func LoadDatabaseURL() (string, error) {
	baseURL := os.Getenv("DATABASE_URL")
	if baseURL == "" {
		return "", fmt.Errorf("DATABASE_URL is required")
	}
	return database.ConstructDatabaseURL(baseURL, os.Getenv("DATABASE_NAME"))
}
