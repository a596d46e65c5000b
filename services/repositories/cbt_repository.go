package repositories

import (
	"context"
	"time"

	"github.com/serenity-space/serenity_api/model"
	"gorm.io/gorm"
)

type CBTSessionGormRepository struct {
	BaseRepository
}

func NewCBTSessionRepository(db *gorm.DB) *CBTSessionGormRepository {
	return &CBTSessionGormRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (r *CBTSessionGormRepository) Create(ctx context.Context, session *model.CBTSession) error {
	if session.ID == "" {
		session.ID = newID()
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now().UTC()
	}
	return r.HandleError(r.conn(ctx).Create(session).Error)
}

func (r *CBTSessionGormRepository) ListByUser(ctx context.Context, userID string, limit int) ([]model.CBTSession, error) {
	var sessions []model.CBTSession
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

func (r *CBTSessionGormRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.conn(ctx).Model(&model.CBTSession{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, r.HandleError(err)
	}
	return count > 0, nil
}

func (r *CBTSessionGormRepository) Delete(ctx context.Context, id, userID string) error {
	result := r.conn(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&model.CBTSession{})
	if result.Error != nil {
		return r.HandleError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
