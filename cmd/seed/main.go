package main

import (
	"context"
	"log"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-events-api/internal/seed"
	"github.com/noah-isme/campus-events-api/pkg/config"
	"github.com/noah-isme/campus-events-api/pkg/database"
	"github.com/noah-isme/campus-events-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	var schemaOnly bool
	flag.StringVar(&cfg.Database.Path, "db-path", cfg.Database.Path, "SQLite database file to (re)create")
	flag.BoolVar(&schemaOnly, "schema-only", false, "Recreate empty tables without sample data")
	flag.Parse()

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Database.Driver == config.DriverSQLite && database.StoreExists(cfg.Database) {
		logr.Warn("overwriting existing database", zap.String("path", cfg.Database.Path))
	}

	db, err := database.New(cfg.Database)
	if err != nil {
		logr.Fatal("open database", zap.Error(err))
	}
	defer db.Close()

	ctx := context.Background()
	if schemaOnly {
		if err := seed.Reset(ctx, db); err != nil {
			logr.Fatal("reset schema", zap.Error(err))
		}
		logr.Info("schema created", zap.String("driver", cfg.Database.Driver))
		return
	}

	if _, err := seed.Load(ctx, db, logr); err != nil {
		logr.Fatal("seed database", zap.Error(err))
	}
	logr.Info("database ready", zap.String("path", cfg.Database.Path))
}
