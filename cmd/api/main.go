// cmd/api/main.go
// Main entry point for the application
// This file bootstraps all components and starts the server

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	// Internal packages
	"github.com/imadgeboyega/kiekky-couples/internal/auth"
	"github.com/imadgeboyega/kiekky-couples/internal/catalog"
	"github.com/imadgeboyega/kiekky-couples/internal/common/database"
	"github.com/imadgeboyega/kiekky-couples/internal/config"
	"github.com/imadgeboyega/kiekky-couples/internal/dating"
	"github.com/imadgeboyega/kiekky-couples/internal/gifts"
	"github.com/imadgeboyega/kiekky-couples/internal/history"
	"github.com/imadgeboyega/kiekky-couples/internal/logger"
	"github.com/imadgeboyega/kiekky-couples/internal/matching"
	"github.com/imadgeboyega/kiekky-couples/internal/profile"
)

func main() {
	// 1. Load environment variables
	envErr := godotenv.Load()

	// 2. Load configuration
	cfg := config.Load()

	// 3. Logger
	logg, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logg.Sync()

	logg.Info("starting Kiekky couples API", zap.String("environment", cfg.Environment))
	if envErr != nil {
		logg.Warn("no .env file found, using environment variables", zap.Error(envErr))
	}

	// 4. Validate configuration
	if err := cfg.Validate(); err != nil {
		logg.Fatal("invalid configuration", zap.Error(err))
	}
	logg.Info("configuration validated",
		zap.String("history_backend", cfg.HistoryBackend),
		zap.String("catalog_source", cfg.CatalogSource),
		zap.String("date_score_mode", string(cfg.DateScoreMode)),
		zap.String("gift_trigger_policy", string(cfg.GiftTriggerPolicy)),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 5. Connect to PostgreSQL and apply the schema
	db, err := database.NewPostgresDBFromURL(cfg.DatabaseURL)
	if err != nil {
		logg.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		logg.Fatal("failed to run migrations", zap.Error(err))
	}
	logg.Info("database ready")

	// 6. Catalog
	cat, err := loadCatalog(ctx, cfg)
	if err != nil {
		logg.Fatal("failed to load catalog", zap.Error(err))
	}
	logg.Info("catalog loaded",
		zap.String("source", cfg.CatalogSource),
		zap.Int("dates", len(cat.Dates())),
		zap.Int("gifts", len(cat.Gifts())),
	)

	// 7. Recently-used history
	store, closeStore, err := openHistory(ctx, cfg, db)
	if err != nil {
		logg.Fatal("failed to open history store", zap.Error(err))
	}
	defer closeStore()
	logg.Info("history store ready", zap.String("backend", cfg.HistoryBackend))

	// 8. Profiles
	profileService := profile.NewService(profile.NewPostgresRepository(db))

	// 9. Engines
	rnd := matching.NewRandomSource(cfg.RandomSeed)

	var hub *dating.Hub
	var notifier dating.Notifier
	if cfg.EnableWebsocket {
		hub = dating.NewHub(logg.Named("hub"), cfg.AllowedOrigins...)
		go hub.Run(ctx)
		notifier = hub
	}

	dateEngine := dating.NewEngine(cat, dating.EngineConfig{
		ScoreMode:       cfg.DateScoreMode,
		SuggestionCount: cfg.SuggestionCount,
		Random:          rnd,
		Logger:          logg.Named("dating"),
	})
	giftEngine := gifts.NewEngine(cat, gifts.EngineConfig{
		Policy:          cfg.GiftTriggerPolicy,
		SuggestionCount: cfg.SuggestionCount,
		SurprisePool:    cfg.SurprisePoolSize,
		Random:          rnd,
		Logger:          logg.Named("gifts"),
	})

	app := &application{
		cfg:     cfg,
		logger:  logg,
		auth:    auth.NewMiddleware(cfg.JWTSecret),
		profile: profile.NewHandler(profileService),
		dating:  dating.NewHandler(dating.NewService(dateEngine, profileService, store, notifier, cfg.HistoryLookback)),
		gifts:   gifts.NewHandler(gifts.NewService(giftEngine, profileService, store, cfg.HistoryLookback)),
		history: history.NewHandler(store, cfg.HistoryLookback),
		hub:     hub,
	}

	// 10. Create and start HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      app.routes(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logg.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logg.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	<-ctx.Done()
	logg.Info("shutdown signal received")

	// Graceful server shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logg.Error("server forced to shutdown", zap.Error(err))
		os.Exit(1)
	}

	logg.Info("server exited gracefully")
}

func loadCatalog(ctx context.Context, cfg *config.Config) (*catalog.Catalog, error) {
	switch cfg.CatalogSource {
	case "file":
		return catalog.LoadFile(cfg.CatalogPath)
	case "s3":
		client, err := catalog.NewS3Client(cfg.AWSRegion)
		if err != nil {
			return nil, err
		}
		return catalog.LoadS3(ctx, client, cfg.CatalogS3Bucket, cfg.CatalogS3Key)
	default:
		return catalog.Default()
	}
}

func openHistory(ctx context.Context, cfg *config.Config, db *sqlx.DB) (history.Store, func(), error) {
	switch cfg.HistoryBackend {
	case "redis":
		client, err := database.NewRedisClientFromURL(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return history.NewRedisStore(client, cfg.HistoryLookback), func() { client.Close() }, nil
	case "postgres":
		return history.NewPostgresStore(db), func() {}, nil
	default:
		return history.NewMemoryStore(cfg.HistoryLookback), func() {}, nil
	}
}
