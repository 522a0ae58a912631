package main

import (
	"context"
	"database/sql"
	"fmt"
	"mail-train-service/internal/adapters/repositories"
	"mail-train-service/internal/config"
	"mail-train-service/internal/platform/db"
	"mail-train-service/internal/platform/logging"
	"os"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load(config.Get("TRAINS_CONFIG", ""))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	ctx := context.Background()
	conn, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	if err := initAndSeed(ctx, log, conn, cfg.SeedPath); err != nil {
		log.Fatal(err)
	}
}

func initAndSeed(ctx context.Context, log *zap.SugaredLogger, conn *sql.DB, seedPath string) error {
	log.Info("Initializing database schema...")
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return err
	}
	log.Info("Schema ready.")

	log.Infow("Seeding database...", "seed_path", seedPath)
	if err := repositories.SeedFromJSON(ctx, conn, seedPath); err != nil {
		return err
	}
	log.Info("Seeding complete.")

	return nil
}
