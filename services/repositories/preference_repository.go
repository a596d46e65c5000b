package repositories

import (
	"context"
	"time"

	"github.com/serenity-space/serenity_api/model"
	"gorm.io/gorm"
)

type PreferenceGormRepository struct {
	BaseRepository
}

func NewPreferenceRepository(db *gorm.DB) *PreferenceGormRepository {
	return &PreferenceGormRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (r *PreferenceGormRepository) Create(ctx context.Context, prefs *model.UserPreferences) error {
	if prefs.ID == "" {
		prefs.ID = newID()
	}
	if prefs.CreatedAt.IsZero() {
		prefs.CreatedAt = time.Now().UTC()
	}
	return r.HandleError(r.conn(ctx).Create(prefs).Error)
}

func (r *PreferenceGormRepository) List(ctx context.Context, limit int) ([]model.UserPreferences, error) {
	var prefs []model.UserPreferences
	err := r.conn(ctx).Order("created_at ASC, id ASC").Limit(limit).Find(&prefs).Error
	if err != nil {
		return nil, r.HandleError(err)
	}
	return prefs, nil
}
