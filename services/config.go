package services

import (
	appContext "github.com/alphabatem/common/context"

	"github.com/serenity-space/serenity_api/config"
)

type ConfigService struct {
	appContext.DefaultService

	cfg *config.Config
}

const CONFIG_SVC = "config_svc"

// NewConfigService wraps an already loaded config. The zero value loads
// from the environment on Configure.
func NewConfigService(cfg *config.Config) *ConfigService {
	return &ConfigService{cfg: cfg}
}

func (svc ConfigService) Id() string {
	return CONFIG_SVC
}

func (svc *ConfigService) Configure(ctx *appContext.Context) error {
	if svc.cfg == nil {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		svc.cfg = cfg
	}
	return svc.DefaultService.Configure(ctx)
}

func (svc *ConfigService) Start() error {
	return nil
}

func (svc *ConfigService) Config() *config.Config {
	return svc.cfg
}

func (svc *ConfigService) Shutdown() {}
