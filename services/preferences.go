package services

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/serenity-space/serenity_api/dto"
	"github.com/serenity-space/serenity_api/model"
	"github.com/serenity-space/serenity_api/services/repositories"
	"github.com/serenity-space/serenity_api/shared"
)

type PreferenceService struct {
	repo repositories.PreferenceRepository
}

func NewPreferenceService(repo repositories.PreferenceRepository) *PreferenceService {
	return &PreferenceService{repo: repo}
}

func (svc *PreferenceService) CreatePreferences(ctx context.Context, req dto.CreatePreferencesRequest) (*model.UserPreferences, error) {
	prefs := &model.UserPreferences{
		Identity:      req.GetIdentity(),
		CurrentMood:   req.GetCurrentMood(),
		MoodFrequency: req.GetMoodFrequency(),
		ThemeColors:   GenerateThemeColors(req.GetCurrentMood(), req.GetIdentity()),
	}

	if err := svc.repo.Create(ctx, prefs); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"preferences_id": prefs.ID,
		"mood":           prefs.CurrentMood,
	}).Info("Preferences created")
	return prefs, nil
}

func (svc *PreferenceService) ListPreferences(ctx context.Context) ([]model.UserPreferences, error) {
	prefs, err := svc.repo.List(ctx, shared.MaxListSize)
	if err != nil {
		return nil, err
	}
	if prefs == nil {
		prefs = []model.UserPreferences{}
	}
	return prefs, nil
}
