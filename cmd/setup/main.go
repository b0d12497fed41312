package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/GachaLab_Go/internal/catalog"
	"github.com/osse101/GachaLab_Go/internal/config"
	"github.com/osse101/GachaLab_Go/internal/database"
	"github.com/osse101/GachaLab_Go/internal/database/postgres"
	"github.com/osse101/GachaLab_Go/internal/logger"
	"github.com/osse101/GachaLab_Go/internal/seed"
	"github.com/osse101/GachaLab_Go/internal/validation"
)

func main() {
	seedPath := flag.String("config", config.ConfigPathSeed, "seed file with gacha types and items")
	schemaPath := flag.String("schema", config.ConfigPathSeedSchema, "JSON schema for the seed file")
	createDB := flag.Bool("create-db", true, "create the database when it does not exist")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger.InitLogger(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, logger.DefaultServiceName, cfg.Version, cfg.Environment, false))

	ctx := context.Background()

	// 1. Create the database when connecting through the DB_* parts
	if *createDB && cfg.DatabaseURL == "" {
		if err := ensureDatabase(ctx, cfg); err != nil {
			log.Fatalf("Failed to prepare database: %v", err)
		}
	}

	// 2. Load and validate the seed before touching the schema
	file, err := seed.Load(*seedPath, *schemaPath, validation.NewSchemaValidator())
	if err != nil {
		log.Fatalf("Failed to load seed: %v", err)
	}

	// 3. Migrate
	pool, err := database.NewPool(ctx, database.PoolConfig{URL: cfg.GetDBConnString(), MaxConns: 2})
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}
	defer pool.Close()

	fmt.Println("Running migrations...")
	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}

	// 4. Seed gacha types and items
	svc := catalog.NewService(postgres.NewGachaRepository(pool), nil)
	summary, err := seed.Apply(ctx, svc, file)
	if err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}

	fmt.Printf("Seed applied: %d gacha types, %d items created, %d items already present.\n",
		summary.GachaTypes, summary.ItemsCreated, summary.ItemsSkipped)
}

// ensureDatabase connects to the maintenance database and creates cfg.DBName if missing
func ensureDatabase(ctx context.Context, cfg *config.Config) error {
	admin := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.DBUser, cfg.DBPassword),
		Host:     cfg.DBHost + ":" + cfg.DBPort,
		Path:     "/postgres",
		RawQuery: "sslmode=disable",
	}

	conn, err := pgx.Connect(ctx, admin.String())
	if err != nil {
		return fmt.Errorf("connect to postgres database: %w", err)
	}
	defer conn.Close(ctx)

	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check database: %w", err)
	}

	if exists {
		fmt.Printf("Database %s already exists.\n", cfg.DBName)
		return nil
	}

	fmt.Printf("Creating database %s...\n", cfg.DBName)
	stmt := "CREATE DATABASE " + pgx.Identifier{strings.TrimSpace(cfg.DBName)}.Sanitize()
	if _, err := conn.Exec(ctx, stmt); err != nil {
		return fmt.Errorf("create database: %w", err)
	}
	fmt.Println("Database created successfully.")
	return nil
}
