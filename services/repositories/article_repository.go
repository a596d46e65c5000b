package repositories

import (
	"context"
	"time"

	"github.com/serenity-space/serenity_api/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ArticleGormRepository struct {
	BaseRepository
}

func NewArticleRepository(db *gorm.DB) *ArticleGormRepository {
	return &ArticleGormRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (r *ArticleGormRepository) List(ctx context.Context, limit int) ([]model.Article, error) {
	var articles []model.Article
	if err := r.conn(ctx).Order("created_at ASC, id ASC").Limit(limit).Find(&articles).Error; err != nil {
		return nil, r.HandleError(err)
	}
	return articles, nil
}

func (r *ArticleGormRepository) Get(ctx context.Context, id string) (*model.Article, error) {
	var article model.Article
	if err := r.conn(ctx).Where("id = ?", id).First(&article).Error; err != nil {
		return nil, r.HandleError(err)
	}
	return &article, nil
}

func (r *ArticleGormRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.conn(ctx).Model(&model.Article{}).Count(&count).Error; err != nil {
		return 0, r.HandleError(err)
	}
	return count, nil
}

func (r *ArticleGormRepository) UpsertBySlug(ctx context.Context, article *model.Article) (bool, error) {
	if article.ID == "" {
		article.ID = newID()
	}
	if article.CreatedAt.IsZero() {
		article.CreatedAt = time.Now().UTC()
	}

	result := r.conn(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoNothing: true,
		}).
		Create(article)
	if result.Error != nil {
		return false, r.HandleError(result.Error)
	}
	return result.RowsAffected > 0, nil
}
