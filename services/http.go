package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	appContext "github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	log "github.com/sirupsen/logrus"

	"github.com/serenity-space/serenity_api/config"
	"github.com/serenity-space/serenity_api/docs"
	"github.com/serenity-space/serenity_api/dto"
	"github.com/serenity-space/serenity_api/middleware"
	"github.com/serenity-space/serenity_api/services/handlers"
	"github.com/serenity-space/serenity_api/shared"
)

type HttpService struct {
	appContext.DefaultService

	cfg *config.Config
	app *fiber.App
}

const (
	HTTP_SVC = "http_svc"

	shutdownTimeout = 10 * time.Second
)

// NewHttpService builds the API app outside the service container.
// monitoring and limiter may be nil.
func NewHttpService(cfg *config.Config, svcs *Services, monitoring *MonitoringService, limiter middleware.RateLimiter) *HttpService {
	svc := &HttpService{cfg: cfg}
	svc.build(svcs, monitoring, limiter)
	return svc
}

func (svc HttpService) Id() string {
	return HTTP_SVC
}

func (svc *HttpService) Configure(ctx *appContext.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *HttpService) build(svcs *Services, monitoring *MonitoringService, limiter middleware.RateLimiter) {
	cfg := svc.cfg

	fiberCfg := fiber.Config{
		AppName:               SERVICE_NAME,
		DisableStartupMessage: true,
		ErrorHandler:          svc.HandleError,
		JSONEncoder:           shared.MarshalJSON,
		JSONDecoder:           shared.UnmarshalJSON,
	}
	if len(cfg.TrustedProxies) > 0 {
		fiberCfg.ProxyHeader = fiber.HeaderXForwardedFor
		fiberCfg.EnableTrustedProxyCheck = true
		fiberCfg.TrustedProxies = cfg.TrustedProxies
		fiberCfg.EnableIPValidation = true
	}

	app := fiber.New(fiberCfg)
	docs.SwaggerInfo.BasePath = "/"

	app.Use(recover.New())
	if cfg.LogLevel == "TRACE" {
		app.Use(logger.New())
	}
	app.Use(middleware.CORS(cfg.CORSOrigins))
	if monitoring != nil {
		app.Use(MonitoringMiddleware(monitoring))
	}

	health := handlers.NewHealthHandler()

	//Validation endpoints
	app.Get("/ping", health.Ping)
	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group(cfg.APIPrefix)
	if limiter != nil {
		api.Use(middleware.WriteRateLimit(limiter, EndpointTypeWrite))
	}
	registerRoutes(api, health, svcs)

	svc.app = app
}

func registerRoutes(api fiber.Router, health *handlers.HealthHandler, svcs *Services) {
	preferences := handlers.NewPreferenceHandler(svcs.Preferences)
	cbt := handlers.NewCBTHandler(svcs.CBT)
	questions := handlers.NewQuestionHandler(svcs.Questions)
	zen := handlers.NewZenHandler(svcs.Zen)
	articles := handlers.NewArticleHandler(svcs.Articles)
	favorites := handlers.NewFavoriteHandler(svcs.Favorites)
	analytics := handlers.NewAnalyticsHandler(svcs.Analytics)

	api.Get("/", health.Root)

	api.Post("/preferences", preferences.CreatePreferences)
	api.Get("/preferences", preferences.ListPreferences)

	api.Post("/cbt-sessions/sync", cbt.SyncSessions)
	api.Post("/cbt-sessions", cbt.CreateSession)
	api.Get("/cbt-sessions", cbt.ListSessions)
	api.Delete("/cbt-sessions/:sessionId", cbt.DeleteSession)

	api.Get("/cbt-questions", questions.GetQuestions)
	api.Post("/cbt-questions/dynamic", questions.GenerateQuestions)

	api.Post("/zen-sessions", zen.CreateSession)
	api.Get("/zen-sessions", zen.ListSessions)

	api.Get("/articles", articles.ListArticles)
	api.Get("/articles/:articleId", articles.GetArticle)

	api.Post("/favorites", favorites.AddFavorite)
	api.Get("/favorites", favorites.ListFavorites)
	api.Delete("/favorites/:articleId", favorites.RemoveFavorite)

	api.Post("/analytics", analytics.TrackUsage)
	api.Get("/analytics/summary", analytics.GetUsageSummary)
}

func (svc *HttpService) App() *fiber.App {
	return svc.app
}

// Start listens on the configured port. It blocks until SIGINT, SIGTERM
// or Shutdown, then drains in-flight requests.
func (svc *HttpService) Start() error {
	if svc.app == nil {
		svc.cfg = svc.Service(CONFIG_SVC).(*ConfigService).Config()
		svcs := svc.Service(DOMAIN_SVC).(*DomainService).Services()

		var monitoring *MonitoringService
		if m := svc.Service(MONITORING_SVC).(*MonitoringService); m.Enabled() {
			monitoring = m
		}
		var limiter middleware.RateLimiter
		if l := svc.Service(RATE_LIMIT_SVC).(*RateLimitService); l.Enabled() {
			limiter = l
		}
		svc.build(svcs, monitoring, limiter)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-sigCh:
			log.Info("Shutting down HTTP server")
			svc.Shutdown()
		case <-done:
		}
	}()

	log.WithField("port", svc.cfg.HTTPPort).Info("HTTP server started")
	return svc.app.Listen(fmt.Sprintf(":%v", svc.cfg.HTTPPort))
}

func (svc *HttpService) Shutdown() {
	if svc.app == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := svc.app.ShutdownWithContext(ctx); err != nil {
		log.WithError(err).Error("HTTP shutdown failed")
	}
}

// HandleError renders handler errors. AppErrors keep their status and
// message; anything else is a 500.
func (svc *HttpService) HandleError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	if appErr, ok := shared.GetAppError(err); ok {
		logEntry := log.WithFields(log.Fields{
			"status_code": appErr.StatusCode,
			"path":        c.Path(),
			"method":      c.Method(),
		})
		if appErr.Err != nil {
			logEntry = logEntry.WithField("error", appErr.Err.Error())
		}
		if appErr.StatusCode >= fiber.StatusInternalServerError {
			logEntry.Error(appErr.Message)
		} else {
			logEntry.Debug(appErr.Message)
		}

		if details, ok := appErr.Data.([]dto.ValidationError); ok {
			return c.Status(appErr.StatusCode).JSON(dto.ValidationErrorResponse{
				Code:    appErr.StatusCode,
				Message: appErr.Message,
				Errors:  details,
			})
		}
		return shared.ResponseJSON(c, appErr.StatusCode, appErr.Message, appErr.Data)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return shared.ResponseJSON(c, fiberErr.Code, fiberErr.Message, nil)
	}

	log.WithFields(log.Fields{
		"path":   c.Path(),
		"method": c.Method(),
		"error":  err.Error(),
	}).Error("Unhandled request error")
	return shared.ResponseInternalError(c)
}
