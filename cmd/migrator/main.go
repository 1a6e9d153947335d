package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"authsvc/internal/config"
	"authsvc/internal/storage/migrations"
	"authsvc/internal/storage/mongodb"
)

func main() {
	var configPath string
	var down bool
	flag.StringVar(&configPath, "config", "", "path to config file (or use CONFIG_PATH env)")
	flag.BoolVar(&down, "down", false, "roll back every migration instead of applying them")
	flag.Parse()

	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}

	cfg := config.MustLoadPath(configPath)

	switch cfg.Storage.Driver {
	case config.DriverMongo:
		if down {
			log.Fatal("mongodb has no migrations to roll back")
		}
		ensureMongoIndexes(cfg)
	case config.DriverSQLite:
		migrate(migrations.DriverSQLite, cfg.Storage.Path, down)
	case config.DriverPostgres:
		migrate(migrations.DriverPostgres, cfg.Storage.DSN, down)
	default:
		log.Fatalf("unsupported storage driver %q", cfg.Storage.Driver)
	}
}

func migrate(driver, target string, down bool) {
	run := migrations.Up
	if down {
		run = migrations.Down
	}

	err := run(driver, target)
	if errors.Is(err, migrations.ErrNoChange) {
		fmt.Println("no migrations to apply")
		return
	}
	if err != nil {
		log.Fatalf("failed to run %s migrations: %v", driver, err)
	}

	fmt.Println("migrations applied successfully")
}

func ensureMongoIndexes(cfg *config.Config) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	log.Println("Connecting to MongoDB...")

	// New creates the indexes on connect.
	storage, err := mongodb.New(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer storage.Close()

	fmt.Println("MongoDB connected, indexes created successfully")
}
