package main

import (
	"strings"

	"github.com/alphabatem/common/context"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sirupsen/logrus"

	"github.com/serenity-space/serenity_api/config"
	"github.com/serenity-space/serenity_api/services"
)

// @title Serenity Space API
// @version 1.0
// @description Wellness backend: preferences, CBT and zen sessions, articles, favorites and usage analytics.
// @BasePath /
func main() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	setLogLevel(cfg.LogLevel)

	postgresSvc := &services.PostgresService{}
	sqliteSvc := &services.SqliteService{}
	mongoSvc := &services.MongoService{}
	redisSvc := &services.RedisService{}
	monitoringSvc := &services.MonitoringService{}

	ctx, err := context.NewCtx(
		services.NewConfigService(cfg),

		postgresSvc,
		sqliteSvc,
		mongoSvc,
		redisSvc,
		monitoringSvc,
		&services.RateLimitService{},
		&services.DomainService{},

		&services.HttpService{},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build service context")
		return
	}

	err = ctx.Run()

	monitoringSvc.Shutdown()
	postgresSvc.Shutdown()
	sqliteSvc.Shutdown()
	mongoSvc.Shutdown()
	redisSvc.Shutdown()

	if err != nil {
		log.Fatal().Err(err).Msg("Service stopped")
	}
}

func setLogLevel(level string) {
	zl, err := zerolog.ParseLevel(lowerLevel(level))
	if err != nil {
		zl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(zl)

	ll, err := logrus.ParseLevel(lowerLevel(level))
	if err != nil {
		ll = logrus.InfoLevel
	}
	logrus.SetLevel(ll)
	logrus.SetFormatter(&logrus.JSONFormatter{})
}

func lowerLevel(level string) string {
	if level == "WARNING" {
		return "warn"
	}
	return strings.ToLower(level)
}
