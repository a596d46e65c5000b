package main

import (
	"context"
	"flag"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/serenity-space/serenity_api/config"
	"github.com/serenity-space/serenity_api/seed/seeders"
	"github.com/serenity-space/serenity_api/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using system environment variables")
	}

	var (
		driver = flag.String("driver", "", "Database driver: postgres, sqlite or mongo (overrides DB_DRIVER)")
		dbPath = flag.String("db", "", "Database path or URL (overrides DB_DATABASE, DATABASE_URL or MONGO_URL)")
		help   = flag.Bool("help", false, "Show help message")
	)
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if *driver != "" {
		cfg.DBDriver = *driver
		if err := cfg.Validate(); err != nil {
			log.Fatalf("Invalid configuration: %v", err)
		}
	}
	if *dbPath != "" {
		switch cfg.DBDriver {
		case config.DriverSqlite:
			cfg.SqlitePath = *dbPath
		case config.DriverMongo:
			cfg.MongoURL = *dbPath
		default:
			cfg.DatabaseURL = *dbPath
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	store, err := services.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer store.Close(context.Background())

	log.WithField("driver", cfg.DBDriver).Info("Connected to database")

	if err := seeders.NewMainSeeder(store).SeedAll(ctx); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	log.Info("Seeding operation completed successfully!")
}

func showHelp() {
	log.Info(`
Database Seeding Tool for Serenity Space

Usage: go run ./seed [flags]

Flags:
  -driver string
        Database driver: postgres, sqlite or mongo (default from DB_DRIVER)
  -db string
        Sqlite path, Postgres DSN or Mongo URL for the selected driver
  -help
        Show this help message

Examples:
  # Seed the configured database
  go run ./seed

  # Seed a local sqlite file
  go run ./seed -driver=sqlite -db=./serenity.db

Environment Variables:
  DB_DRIVER, DATABASE_URL, DB_DATABASE, MONGO_URL, DB_NAME
`)
}
