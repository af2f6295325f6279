package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"

	"ms-booking/internal/artist"
	"ms-booking/internal/artist/artist_api"
	artist_db "ms-booking/internal/artist/db"
	"ms-booking/internal/config"
	"ms-booking/internal/database/migrations"
	"ms-booking/internal/flash"
	"ms-booking/internal/kafka"
	"ms-booking/internal/logger"
	"ms-booking/internal/show"
	show_db "ms-booking/internal/show/db"
	"ms-booking/internal/show/show_api"
	"ms-booking/internal/venue"
	venue_db "ms-booking/internal/venue/db"
	"ms-booking/internal/venue/venue_api"
	"ms-booking/internal/web"
)

func verifyConnections(ctx context.Context, cfg *config.Config, logger *logger.Logger) (*bun.DB, *redis.Client) {
	var sqldb *sql.DB
	var err error
	maxRetries := 5

	for i := 0; i < maxRetries; i++ {
		logger.Info("DATABASE", fmt.Sprintf("Attempting to connect to PostgreSQL (attempt %d/%d)", i+1, maxRetries))
		sqldb, err = sql.Open("postgres", cfg.Database.DSN)
		if err != nil {
			logger.Error("DATABASE", fmt.Sprintf("Failed to open PostgreSQL: %v", err))
			time.Sleep(2 * time.Second)
			continue
		}

		err = sqldb.Ping()
		if err == nil {
			break
		}

		logger.Error("DATABASE", fmt.Sprintf("Failed to connect to PostgreSQL: %v", err))
		if i < maxRetries-1 {
			time.Sleep(2 * time.Second)
		}
	}

	if err != nil {
		logger.Fatal("DATABASE", fmt.Sprintf("Failed to connect to PostgreSQL after %d attempts: %v", maxRetries, err))
	}

	sqldb.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqldb.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqldb.SetConnMaxLifetime(cfg.Database.MaxLifetime)
	logger.Info("DATABASE", "PostgreSQL connection successful")

	bunDB := bun.NewDB(sqldb, pgdialect.New())

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Addr,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal("DATABASE", fmt.Sprintf("Redis connection error: %v", err))
	}
	logger.Info("DATABASE", fmt.Sprintf("Redis connection successful to %s", cfg.Redis.Addr))

	return bunDB, redisClient
}

func main() {
	logger := logger.NewLogger()
	defer logger.Close()

	logger.Info("APP", "Starting Booking Service initialization")

	if err := godotenv.Load(); err != nil {
		logger.Warn("CONFIG", ".env file not found, using environment variables")
	} else {
		logger.Info("CONFIG", "Loaded environment variables from .env file")
	}

	cfg := config.Load()
	ctx := context.Background()

	logger.Info("APP", "Verifying database connections")
	bunDB, redisClient := verifyConnections(ctx, cfg, logger)
	defer bunDB.Close()
	defer redisClient.Close()

	if cfg.Migrations.AutoMigrate {
		runner := migrations.NewRunner(bunDB, migrations.MigrateOptions{
			MigrationsDir: cfg.Migrations.Dir,
			AutoMigrate:   true,
		})
		if err := runner.MigrateUp(); err != nil {
			logger.Fatal("DATABASE", fmt.Sprintf("Migrations failed: %v", err))
		}
		logger.Info("DATABASE", "Migrations up to date")
	}

	producer := kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Enabled, cfg.Kafka.MockMode)
	defer producer.Close()
	if cfg.Kafka.Enabled && !cfg.Kafka.MockMode {
		topics := []string{cfg.Kafka.Topics.Venues, cfg.Kafka.Topics.Artists, cfg.Kafka.Topics.Shows}
		if err := kafka.EnsureTopicsExist(cfg.Kafka.Brokers, topics); err != nil {
			logger.Warn("KAFKA", fmt.Sprintf("Topic creation might have failed: %v", err))
		} else {
			logger.Info("KAFKA", "Required topics ensured successfully")
		}
	}
	events := kafka.NewEvents(producer, cfg.Kafka.Topics)

	renderer, err := web.NewRenderer(logger)
	if err != nil {
		logger.Fatal("APP", fmt.Sprintf("Renderer setup failed: %v", err))
	}

	flashStore := flash.NewStore(redisClient, cfg.Redis.FlashTTL)

	venueService := venue.NewVenueService(&venue_db.DB{Bun: bunDB}, events)
	artistService := artist.NewArtistService(&artist_db.DB{Bun: bunDB}, events)
	showService := show.NewShowService(&show_db.DB{Bun: bunDB}, events)

	venueHandler := venue_api.NewHandler(venueService, showService, flashStore, renderer, logger)
	artistHandler := artist_api.NewHandler(artistService, showService, flashStore, renderer, logger)
	showHandler := show_api.NewHandler(showService, flashStore, renderer, logger)

	logger.Info("HTTP", "Setting up router")
	r := chi.NewRouter()
	r.Use(renderer.Recoverer)
	r.NotFound(renderer.NotFound)

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		flashes := flashStore.Pop(req.Context(), w, req)
		renderer.Render(w, http.StatusOK, "home.html", flashes, nil)
	})

	venueHandler.RegisterRoutes(r)
	artistHandler.RegisterRoutes(r)
	showHandler.RegisterRoutes(r)
	logger.Info("ROUTER", "Venue, artist and show routes registered")

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP", fmt.Sprintf("Booking Service running on %s", cfg.Server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP", fmt.Sprintf("HTTP server error: %v", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	logger.Info("APP", "Service started successfully, waiting for shutdown signal")
	<-stop

	logger.Info("APP", "Shutdown signal received, initiating graceful shutdown")
	ctxShutdown, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("HTTP", fmt.Sprintf("Server Shutdown Failed: %v", err))
	} else {
		logger.Info("HTTP", "Booking Service shutdown complete")
	}
}
