package main

import (
	"context"
	"flag"
	"os"

	"readinglog/internal/config"
	"readinglog/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, status, create")
		name    = flag.String("name", "", "Name for 'create' command")
	)
	flag.Parse()

	config.LoadEnvFiles()
	log := logger.New(os.Getenv("LOG_LEVEL"))
	dir := migrationsDir()

	if *command == "create" {
		if *name == "" {
			log.Fatal("name is required for 'create' command")
		}
		if err := goose.Create(nil, dir, *name, "sql"); err != nil {
			log.WithError(err).Fatal("failed to create migration")
		}
		log.WithField("name", *name).Info("migration created")
		return
	}

	dsn := databaseDSN()

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.WithError(err).Fatal("failed to set goose dialect")
	}

	switch *command {
	case "up":
		if err := goose.UpContext(ctx, db, dir); err != nil {
			log.WithError(err).Fatal("failed to run migrations")
		}
		log.WithField("dir", dir).Info("migrations applied")
	case "down":
		if err := goose.DownContext(ctx, db, dir); err != nil {
			log.WithError(err).Fatal("failed to roll back migration")
		}
		log.Info("last migration rolled back")
	case "status":
		if err := goose.StatusContext(ctx, db, dir); err != nil {
			log.WithError(err).Fatal("failed to check migration status")
		}
	default:
		log.Fatalf("unknown command %q, use: up, down, status, create", *command)
	}
}
