package services

import (
	"context"
	"strings"

	appContext "github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/serenity-space/serenity_api/config"
	"github.com/serenity-space/serenity_api/services/repositories"
)

type SqliteService struct {
	appContext.DefaultService

	db    *gorm.DB
	store *repositories.Store

	database string
}

const SQLITE_SVC = "sqlite_svc"

func NewSqliteService(path string) *SqliteService {
	return &SqliteService{database: path}
}

func (ds SqliteService) Id() string {
	return SQLITE_SVC
}

func (ds *SqliteService) Configure(ctx *appContext.Context) error {
	return ds.DefaultService.Configure(ctx)
}

// Start opens the database file when sqlite is the configured driver.
func (ds *SqliteService) Start() error {
	cfg := ds.Service(CONFIG_SVC).(*ConfigService).Config()
	if cfg.DBDriver != config.DriverSqlite {
		return nil
	}
	ds.database = cfg.SqlitePath
	return ds.open(context.Background())
}

func (ds *SqliteService) Shutdown() {
	if ds.store == nil {
		return
	}
	if err := ds.store.Close(context.Background()); err != nil {
		log.WithError(err).Error("Failed to close sqlite database")
	}
	ds.store = nil
}

// open connects and migrates any tables that changed
func (ds *SqliteService) open(ctx context.Context) (err error) {
	ds.db, err = gorm.Open(sqlite.Open(ds.database), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return err
	}

	sqlDB, err := ds.db.DB()
	if err != nil {
		return err
	}
	// Every connection to :memory: is its own database.
	if strings.Contains(ds.database, ":memory:") {
		sqlDB.SetMaxOpenConns(1)
	}
	if err = sqlDB.PingContext(ctx); err != nil {
		return err
	}

	if err = repositories.Migrate(ds.db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		return err
	}

	ds.store = repositories.NewGormStore(ds.db)
	log.WithField("database", ds.database).Info("Database connected and migrated successfully")
	return nil
}

// Store is nil unless sqlite is the active backend.
func (ds *SqliteService) Store() *repositories.Store {
	return ds.store
}
