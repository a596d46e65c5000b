package services

import (
	"context"
	"fmt"

	"github.com/serenity-space/serenity_api/config"
	"github.com/serenity-space/serenity_api/services/repositories"
)

// OpenStore connects to the backend selected by cfg.DBDriver outside the
// service container.
func OpenStore(ctx context.Context, cfg *config.Config) (*repositories.Store, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		svc := NewPostgresService(cfg.DatabaseURL)
		if err := svc.open(ctx); err != nil {
			return nil, err
		}
		return svc.Store(), nil
	case config.DriverSqlite:
		svc := NewSqliteService(cfg.SqlitePath)
		if err := svc.open(ctx); err != nil {
			return nil, err
		}
		return svc.Store(), nil
	case config.DriverMongo:
		svc := NewMongoService(cfg.MongoURL, cfg.DBName)
		if err := svc.open(ctx); err != nil {
			return nil, err
		}
		return svc.Store(), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}
}
