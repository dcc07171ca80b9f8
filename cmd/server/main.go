package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"github.com/nestlist/nestlist/internal/config"
	"github.com/nestlist/nestlist/internal/db"
	"github.com/nestlist/nestlist/internal/handlers"
	"github.com/nestlist/nestlist/internal/repo"
	"github.com/nestlist/nestlist/internal/scheduler"
	"github.com/nestlist/nestlist/internal/session"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	if cfg.Prod() && cfg.SessionSecret == "dev-session-secret" {
		log.Fatal("SESSION_SECRET must be set in prod")
	}

	// Connect to the document store FIRST. A dead store at startup is fatal;
	// the server never accepts requests it cannot serve.
	client, err := db.Connect(context.Background(), cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(ctx)
	}()

	database := client.Database(cfg.DBName)
	if err := db.EnsureIndexes(context.Background(), database); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	slog.Info("connected to the document store", "db", cfg.DBName)

	// Repositories
	userRepo := repo.NewUserRepo(database)
	propertyRepo := repo.NewPropertyRepo(database)
	roommateRepo := repo.NewRoommateRepo(database)
	sessionRepo := repo.NewSessionRepo(database)

	// Sessions
	ttl := time.Duration(cfg.SessionTTLHours) * time.Hour
	sessions := session.NewManager(sessionRepo, cfg.SessionSecret, ttl, cfg.Prod())

	// Background purge of expired sessions
	cronJobs := scheduler.Run(sessionRepo)
	defer cronJobs.Stop()

	// Handlers and routes
	authHandler := &handlers.AuthHandler{Users: userRepo, Sessions: sessions}
	pageHandler := &handlers.PageHandler{Properties: propertyRepo, Roommates: roommateRepo}
	propertyHandler := &handlers.PropertyHandler{Store: propertyRepo}
	roommateHandler := &handlers.RoommateHandler{Store: roommateRepo}

	router := handlers.NewRouter(cfg, sessions, authHandler, pageHandler, propertyHandler, roommateHandler)

	// Start server LAST
	slog.Info("starting server", "port", cfg.Port, "env", cfg.Env)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
