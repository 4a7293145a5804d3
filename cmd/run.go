package cmd

import (
	"context"
	"fmt"
	"time"

	"cosmolive/bot"
	"cosmolive/config"
	"cosmolive/database"
	"cosmolive/directory"
	"cosmolive/events"
	"cosmolive/repository"
	"cosmolive/service"

	log "github.com/sirupsen/logrus"
)

// Run initializes and starts the application
func Run(ctx context.Context, cfg *config.Config) error {
	log.Info("Starting cosmolive bot...")

	// Load the artist directory before touching any external system
	dir, err := directory.Load(cfg.ArtistDirectoryFile)
	if err != nil {
		return fmt.Errorf("failed to load artist directory: %w", err)
	}
	log.WithField("groups", len(dir.Groups)).Info("Artist directory loaded")

	databaseURL, err := cfg.GetDatabaseURL()
	if err != nil {
		return fmt.Errorf("failed to build database URL: %w", err)
	}

	if cfg.AutoMigrate {
		log.Info("Applying database migrations...")
		if err := database.MigrateUp(databaseURL); err != nil {
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
	}

	// Initialize database connection
	log.Info("Connecting to database...")
	db, err := database.NewConnection(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Info("Database connection established successfully")

	eventBus := events.NewBus()
	uowFactory := repository.NewUnitOfWorkFactory(db, eventBus)
	guildSettingsService := service.NewGuildSettingsService(uowFactory)

	// Initialize Discord bot
	log.Info("Initializing Discord bot...")
	discordBot, err := bot.New(bot.Config{Token: cfg.DiscordToken}, dir, guildSettingsService, eventBus)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}
	log.Info("Discord bot initialized successfully")

	// Wait for context cancellation
	log.Infof("Bot is running in %s mode...", cfg.Environment)
	<-ctx.Done()

	log.Info("Shutting down bot...")

	// Close Discord first so no new interactions reach the database
	if err := discordBot.Close(); err != nil {
		log.Errorf("Error closing Discord bot: %v", err)
	}

	closed := make(chan struct{})
	go func() {
		log.Info("Closing database connection...")
		db.Close()
		close(closed)
	}()

	select {
	case <-closed:
		log.Info("Shutdown completed")
	case <-time.After(10 * time.Second):
		log.Warn("Shutdown timeout exceeded")
	}

	return nil
}
