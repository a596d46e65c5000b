package repositories

import (
	"context"
	"time"

	"github.com/serenity-space/serenity_api/model"
	"gorm.io/gorm"
)

type ZenSessionGormRepository struct {
	BaseRepository
}

func NewZenSessionRepository(db *gorm.DB) *ZenSessionGormRepository {
	return &ZenSessionGormRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (r *ZenSessionGormRepository) Create(ctx context.Context, session *model.ZenSession) error {
	if session.ID == "" {
		session.ID = newID()
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now().UTC()
	}
	return r.HandleError(r.conn(ctx).Create(session).Error)
}

func (r *ZenSessionGormRepository) ListByUser(ctx context.Context, userID string, limit int) ([]model.ZenSession, error) {
	var sessions []model.ZenSession
	err := r.conn(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Limit(limit).
		Find(&sessions).Error
	if err != nil {
		return nil, r.HandleError(err)
	}
	return sessions, nil
}
