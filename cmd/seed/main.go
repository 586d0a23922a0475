// Command seed imports MongoDB Extended JSON exports into the workforce
// database. It is safe to run repeatedly: records are upserted by business
// key, so an unchanged export is a no-op.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"workforce-api/internal/seeder"
	"workforce-api/internal/workforce/config"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func main() {
	dataDir := flag.String("data", "./data", "directory holding the JSON export files")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall deadline for the import")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// DATABASE_URL missing fails here, before anything connects.
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Configuration error", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, cfg.MongoClientOptions())
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	disconnect := func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error("Failed to disconnect MongoDB", zap.Error(err))
		}
	}
	defer disconnect()

	if err := client.Ping(ctx, nil); err != nil {
		logger.Error("Failed to ping MongoDB", zap.Error(err))
		disconnect()
		os.Exit(1)
	}

	db := client.Database(cfg.DatabaseName)
	logger.Info("Starting seed run",
		zap.String("database", cfg.DatabaseName),
		zap.String("dataDir", *dataDir))

	results, err := seeder.New(db, *dataDir, logger).Run(ctx)
	if err != nil {
		logger.Error("Seed run aborted", zap.Error(err))
		disconnect()
		os.Exit(1)
	}

	var seeded, total int
	for _, r := range results {
		seeded += r.Seeded
		total += r.Total
	}
	logger.Info("Seed run complete",
		zap.Int("collections", len(results)),
		zap.Int("seeded", seeded),
		zap.Int("total", total))
}
