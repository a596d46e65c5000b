package repositories

import (
	"context"
	"time"

	"github.com/serenity-space/serenity_api/model"
	"gorm.io/gorm"
)

type AnalyticGormRepository struct {
	BaseRepository
}

func NewAnalyticRepository(db *gorm.DB) *AnalyticGormRepository {
	return &AnalyticGormRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (r *AnalyticGormRepository) Create(ctx context.Context, event *model.UsageAnalytics) error {
	if event.ID == "" {
		event.ID = newID()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}
	return r.HandleError(r.conn(ctx).Create(event).Error)
}

func (r *AnalyticGormRepository) FeatureStats(ctx context.Context, userID string) ([]model.FeatureStat, error) {
	var stats []model.FeatureStat
	err := r.conn(ctx).
		Model(&model.UsageAnalytics{}).
		Select("feature, COUNT(*) AS total_sessions, COALESCE(SUM(duration), 0) AS total_duration").
		Where("user_id = ?", userID).
		Group("feature").
		Order("feature").
		Scan(&stats).Error
	if err != nil {
		return nil, r.HandleError(err)
	}
	return stats, nil
}

func (r *AnalyticGormRepository) Recent(ctx context.Context, userID string, since time.Time, limit int) ([]model.UsageAnalytics, error) {
	var events []model.UsageAnalytics
	err := r.conn(ctx).
		Where("user_id = ? AND created_at >= ?", userID, since.UTC()).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, r.HandleError(err)
	}
	return events, nil
}
