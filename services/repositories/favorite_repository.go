package repositories

import (
	"context"
	"time"

	"github.com/serenity-space/serenity_api/model"
	"gorm.io/gorm"
)

type FavoriteGormRepository struct {
	BaseRepository
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteGormRepository {
	return &FavoriteGormRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (r *FavoriteGormRepository) Find(ctx context.Context, userID, articleID string) (*model.FavoriteArticle, error) {
	var favorite model.FavoriteArticle
	err := r.conn(ctx).
		Where("user_id = ? AND article_id = ?", userID, articleID).
		First(&favorite).Error
	if err != nil {
		return nil, r.HandleError(err)
	}
	return &favorite, nil
}

func (r *FavoriteGormRepository) Create(ctx context.Context, favorite *model.FavoriteArticle) error {
	if favorite.ID == "" {
		favorite.ID = newID()
	}
	if favorite.CreatedAt.IsZero() {
		favorite.CreatedAt = time.Now().UTC()
	}
	return r.HandleError(r.conn(ctx).Create(favorite).Error)
}

func (r *FavoriteGormRepository) ListByUser(ctx context.Context, userID string, limit int) ([]model.FavoriteArticle, error) {
	var favorites []model.FavoriteArticle
	err := r.conn(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Limit(limit).
		Find(&favorites).Error
	if err != nil {
		return nil, r.HandleError(err)
	}
	return favorites, nil
}

func (r *FavoriteGormRepository) Delete(ctx context.Context, userID, articleID string) error {
	result := r.conn(ctx).
		Where("user_id = ? AND article_id = ?", userID, articleID).
		Delete(&model.FavoriteArticle{})
	if result.Error != nil {
		return r.HandleError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
