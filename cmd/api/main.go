// cmd/api/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/stockflow/internal/config"
	"github.com/your-org/stockflow/internal/domain/cart"
	"github.com/your-org/stockflow/internal/infrastructure/database/postgres"
	"github.com/your-org/stockflow/internal/infrastructure/database/redis"
	"github.com/your-org/stockflow/internal/infrastructure/mock"
	"github.com/your-org/stockflow/internal/interfaces/http"
	"github.com/your-org/stockflow/internal/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	log := logger.New(cfg)
	log.WithFields(logrus.Fields{
		"app":         cfg.App.Name,
		"version":     cfg.App.Version,
		"environment": cfg.App.Environment,
		"backend":     cfg.Catalog.Backend,
	}).Info("Starting")

	deps := http.Dependencies{}

	// Redis is required for Postgres deployments and optional for the mock backend
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = redis.NewConnection(cfg, log)
		if err != nil {
			if cfg.UsesPostgres() {
				log.Fatalf("Failed to connect to Redis: %v", err)
			}
			log.WithError(err).Warn("Redis unavailable, carts will be kept in memory")
			redisClient = nil
		}
	}
	if redisClient != nil {
		defer redisClient.Close()
		deps.Redis = redisClient.GetClient()
		deps.CartSlots = redis.NewCartSlots(redisClient.GetClient(), cfg.Cart.SessionTTL)
		deps.CartLocks = redis.NewCartLocks(redisClient.GetClient(), cfg.Cart.LockTTL, log.WithField("component", "cart"))
	} else {
		deps.CartSlots = cart.NewMemorySlots()
	}

	if cfg.UsesPostgres() {
		db := setupPostgres(cfg, log)
		defer db.Close()

		deps.Database = db
		deps.Products = postgres.NewProductRepository(db.GetDB())
		deps.Orders = postgres.NewOrderRepository(db.GetDB())
	} else {
		backend, err := mock.NewSeededBackend(mock.Latency{
			Min: cfg.Catalog.MockMinDelay,
			Max: cfg.Catalog.MockMaxDelay,
		})
		if err != nil {
			log.Fatalf("Failed to load mock catalog: %v", err)
		}
		deps.Products = backend.Products
		deps.Orders = backend.Orders
		log.Info("Using in-memory catalog with simulated latency")
	}

	log.Info("All systems operational")

	server := http.NewServer(cfg, deps, log)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down gracefully")

	// Give server 30 seconds to shutdown gracefully
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		log.WithError(err).Error("Failed to shutdown HTTP server gracefully")
	}

	log.Info("Server shutdown completed")
}

// setupPostgres connects, migrates and in development seeds the database
func setupPostgres(cfg *config.Config, log *logrus.Logger) *postgres.DB {
	db, err := postgres.NewConnection(cfg, log)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Health(context.Background()); err != nil {
		log.Fatalf("Database health check failed: %v", err)
	}

	migration := postgres.NewMigration(db.GetDB(), log)

	if err := migration.RunAutoMigrations(); err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}

	if err := migration.CreateIndexes(); err != nil {
		log.WithError(err).Warn("Index creation failed")
	}

	if cfg.Catalog.SeedData && cfg.IsDevelopment() {
		if err := migration.SeedInitialData(); err != nil {
			log.WithError(err).Warn("Data seeding failed")
		}
		if err := migration.GetTableInfo(); err != nil {
			log.WithError(err).Warn("Failed to read table info")
		}
	}

	return db
}
