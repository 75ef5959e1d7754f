// main.go
package main

import (
	"context"
	"log"
	"time"

	"care-booking/cmd"
	"care-booking/internal/data/repository"
	"care-booking/internal/notify"
	"care-booking/internal/wire"
	"care-booking/pkg/database"
	"care-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Outbound email; falls back to a no-op when SMTP is not configured
	notifier := notify.NewNotifier(config.Email, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, notifier, logger)

	// Periodically purge expired sessions
	go cleanSessions(repos, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}

func cleanSessions(repos *repository.Repository, logger *zap.Logger) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := repos.Session.CleanExpiredSessions(ctx); err != nil {
			logger.Warn("Failed to clean expired sessions", zap.Error(err))
		}
		cancel()
	}
}
