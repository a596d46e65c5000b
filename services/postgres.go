package services

import (
	"context"
	"time"

	appContext "github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/serenity-space/serenity_api/config"
	"github.com/serenity-space/serenity_api/services/repositories"
)

type PostgresService struct {
	appContext.DefaultService

	db    *gorm.DB
	store *repositories.Store

	database string
}

const POSTGRES_SVC = "postgres_svc"

func NewPostgresService(dsn string) *PostgresService {
	return &PostgresService{database: dsn}
}

func (ds PostgresService) Id() string {
	return POSTGRES_SVC
}

func (ds *PostgresService) Configure(ctx *appContext.Context) error {
	return ds.DefaultService.Configure(ctx)
}

// Start connects when postgres is the configured driver.
func (ds *PostgresService) Start() error {
	cfg := ds.Service(CONFIG_SVC).(*ConfigService).Config()
	if cfg.DBDriver != config.DriverPostgres {
		return nil
	}
	ds.database = cfg.DatabaseURL
	return ds.open(context.Background())
}

func (ds *PostgresService) Shutdown() {
	if ds.store == nil {
		return
	}
	if err := ds.store.Close(context.Background()); err != nil {
		log.WithError(err).Error("Failed to close postgres connection")
	}
	ds.store = nil
}

// open connects with exponential backoff and migrates the schema.
func (ds *PostgresService) open(ctx context.Context) (err error) {
	maxRetries := 10
	retryDelay := time.Second

	for attempt := 1; attempt <= maxRetries; attempt++ {
		log.Printf("Attempting to connect to database (attempt %d/%d)...", attempt, maxRetries)

		ds.db, err = gorm.Open(postgres.Open(ds.database), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Error),
		})

		if err == nil {
			sqlDB, dbErr := ds.db.DB()
			if dbErr == nil {
				pingErr := sqlDB.PingContext(ctx)
				if pingErr == nil {
					log.Println("Successfully connected to database")
					break
				}
				err = pingErr
			} else {
				err = dbErr
			}
		}

		if attempt == maxRetries {
			log.Printf("Failed to connect to database after %d attempts: %v", maxRetries, err)
			return err
		}

		log.Printf("Database connection failed: %v. Retrying in %v...", err, retryDelay)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryDelay):
		}

		retryDelay *= 2
		if retryDelay > 10*time.Second {
			retryDelay = 10 * time.Second
		}
	}

	if err = repositories.Migrate(ds.db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		return err
	}

	ds.store = repositories.NewGormStore(ds.db)
	log.Println("Database connected and migrated successfully")
	return nil
}

// Store is nil unless postgres is the active backend.
func (ds *PostgresService) Store() *repositories.Store {
	return ds.store
}
