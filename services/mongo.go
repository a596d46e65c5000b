package services

import (
	"context"
	"time"

	appContext "github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/serenity-space/serenity_api/config"
	"github.com/serenity-space/serenity_api/services/repositories"
)

type MongoService struct {
	appContext.DefaultService

	store *repositories.Store

	url      string
	database string
}

const MONGO_SVC = "mongo_svc"

func NewMongoService(url, database string) *MongoService {
	return &MongoService{url: url, database: database}
}

func (ms MongoService) Id() string {
	return MONGO_SVC
}

func (ms *MongoService) Configure(ctx *appContext.Context) error {
	return ms.DefaultService.Configure(ctx)
}

// Start connects when mongo is the configured driver.
func (ms *MongoService) Start() error {
	cfg := ms.Service(CONFIG_SVC).(*ConfigService).Config()
	if cfg.DBDriver != config.DriverMongo {
		return nil
	}
	ms.url = cfg.MongoURL
	ms.database = cfg.DBName
	return ms.open(context.Background())
}

func (ms *MongoService) Shutdown() {
	if ms.store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := ms.store.Close(ctx); err != nil {
		log.WithError(err).Error("Failed to disconnect from MongoDB")
	}
	ms.store = nil
}

func (ms *MongoService) open(ctx context.Context) error {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(ms.url))
	if err != nil {
		return err
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return err
	}

	store, err := repositories.NewMongoStore(ctx, client, client.Database(ms.database))
	if err != nil {
		_ = client.Disconnect(context.Background())
		return err
	}
	ms.store = store

	log.WithFields(log.Fields{"database": ms.database}).Info("Connected to MongoDB")
	return nil
}

// Store is nil unless mongo is the active backend.
func (ms *MongoService) Store() *repositories.Store {
	return ms.store
}
