package services

import (
	"context"
	"errors"
	"time"

	appContext "github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/serenity-space/serenity_api/seed/seeders"
	"github.com/serenity-space/serenity_api/services/repositories"
)

// Services holds the domain services built over one Store.
type Services struct {
	Preferences *PreferenceService
	CBT         *CBTService
	Questions   *QuestionService
	Zen         *ZenService
	Articles    *ArticleService
	Favorites   *FavoriteService
	Analytics   *AnalyticsService
}

// NewServices wires every domain service. cache and recorder may be nil.
func NewServices(store *repositories.Store, cache *RedisService, cacheTTL time.Duration, recorder AnalyticsRecorder) *Services {
	return &Services{
		Preferences: NewPreferenceService(store.Preferences),
		CBT:         NewCBTService(store.CBTSessions),
		Questions:   NewQuestionService(),
		Zen:         NewZenService(store.ZenSessions),
		Articles:    NewArticleService(store.Articles, seeders.NewArticleSeeder(store.Articles), cache, cacheTTL),
		Favorites:   NewFavoriteService(store.Favorites),
		Analytics:   NewAnalyticsService(store.Analytics, recorder),
	}
}

type storeProvider interface {
	Store() *repositories.Store
}

var errNoStore = errors.New("no storage backend started")

// DomainService builds Services over the storage backend that connected
// and seeds the article catalogue when SEED_ON_STARTUP is set.
type DomainService struct {
	appContext.DefaultService

	services *Services
}

const DOMAIN_SVC = "domain_svc"

func (svc DomainService) Id() string {
	return DOMAIN_SVC
}

func (svc *DomainService) Configure(ctx *appContext.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *DomainService) Start() error {
	cfg := svc.Service(CONFIG_SVC).(*ConfigService).Config()

	store, err := svc.store()
	if err != nil {
		return err
	}

	var cache *RedisService
	if redisSvc := svc.Service(REDIS_SVC).(*RedisService); redisSvc.Enabled() {
		cache = redisSvc
	}

	var recorder AnalyticsRecorder
	if monitoring := svc.Service(MONITORING_SVC).(*MonitoringService); monitoring.Enabled() {
		recorder = monitoring
	}

	svc.services = NewServices(store, cache, cfg.ArticleCacheTTL, recorder)

	if cfg.SeedOnStartup {
		inserted, err := svc.services.Articles.Seed(context.Background())
		if err != nil {
			return err
		}
		log.WithField("inserted", inserted).Info("Articles seeded")
	}
	return nil
}

func (svc *DomainService) Shutdown() {}

func (svc *DomainService) Services() *Services {
	return svc.services
}

func (svc *DomainService) store() (*repositories.Store, error) {
	for _, id := range []string{POSTGRES_SVC, SQLITE_SVC, MONGO_SVC} {
		if provider, ok := svc.Service(id).(storeProvider); ok && provider.Store() != nil {
			return provider.Store(), nil
		}
	}
	return nil, errNoStore
}
