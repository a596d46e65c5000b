package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	appContext "github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/serenity-space/serenity_api/dto"
)

const (
	EndpointTypeWrite = "api_write"

	rateLimitKeyPrefix = "ratelimit"
)

// RateLimitConfig represents rate limiting configuration
type RateLimitConfig struct {
	EndpointType string
	MaxRequests  int
	WindowSize   time.Duration
	Description  string
}

// RateLimitService counts requests per identifier in fixed Redis windows.
type RateLimitService struct {
	appContext.DefaultService

	redis *RedisService

	configs map[string]*RateLimitConfig
	mutex   sync.RWMutex
}

const RATE_LIMIT_SVC = "rate_limit_svc"

func NewRateLimitService(redis *RedisService, writesPerMinute int) *RateLimitService {
	svc := &RateLimitService{redis: redis}
	svc.initDefaultConfigs(writesPerMinute)
	return svc
}

func (svc RateLimitService) Id() string {
	return RATE_LIMIT_SVC
}

func (svc *RateLimitService) Configure(ctx *appContext.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *RateLimitService) Start() error {
	if svc.redis != nil {
		return nil
	}
	cfg := svc.Service(CONFIG_SVC).(*ConfigService).Config()
	redisSvc := svc.Service(REDIS_SVC).(*RedisService)
	if !redisSvc.Enabled() {
		return nil
	}
	svc.redis = redisSvc
	svc.initDefaultConfigs(cfg.RateLimitPerMinute)
	return nil
}

func (svc *RateLimitService) Shutdown() {}

func (svc *RateLimitService) initDefaultConfigs(writesPerMinute int) {
	if writesPerMinute <= 0 {
		return
	}
	svc.SetConfig(&RateLimitConfig{
		EndpointType: EndpointTypeWrite,
		MaxRequests:  writesPerMinute,
		WindowSize:   time.Minute,
		Description:  "Write requests per client IP",
	})
}

// Enabled reports whether any endpoint type is limited.
func (svc *RateLimitService) Enabled() bool {
	svc.mutex.RLock()
	defer svc.mutex.RUnlock()
	return svc.redis.Enabled() && len(svc.configs) > 0
}

func (svc *RateLimitService) SetConfig(config *RateLimitConfig) {
	svc.mutex.Lock()
	defer svc.mutex.Unlock()
	if svc.configs == nil {
		svc.configs = make(map[string]*RateLimitConfig)
	}
	svc.configs[config.EndpointType] = config
}

func (svc *RateLimitService) GetConfig(endpointType string) (*RateLimitConfig, bool) {
	svc.mutex.RLock()
	defer svc.mutex.RUnlock()
	config, ok := svc.configs[endpointType]
	return config, ok
}

// IsAllowed records one request from identifier. Endpoint types without a
// config are always allowed.
func (svc *RateLimitService) IsAllowed(ctx context.Context, identifier, endpointType string) (bool, *dto.RateLimitInfo, error) {
	config, exists := svc.GetConfig(endpointType)
	if !exists || !svc.redis.Enabled() {
		return true, &dto.RateLimitInfo{Allowed: true, Remaining: -1}, nil
	}

	key := fmt.Sprintf("%s:%s:%s", rateLimitKeyPrefix, endpointType, identifier)
	count, ttl, err := svc.redis.IncrementWindow(ctx, key, config.WindowSize)
	if err != nil {
		log.WithFields(log.Fields{
			"identifier":    identifier,
			"endpoint_type": endpointType,
			"error":         err.Error(),
		}).Warn("Rate limit check failed")
		return false, nil, err
	}

	resetTime := time.Now().Add(ttl)
	remaining := config.MaxRequests - int(count)
	if remaining < 0 {
		remaining = 0
	}

	info := &dto.RateLimitInfo{
		Allowed:   int(count) <= config.MaxRequests,
		Limit:     config.MaxRequests,
		Remaining: remaining,
		ResetTime: &resetTime,
	}
	return info.Allowed, info, nil
}
